package service

import (
	"io"

	"gardenplan/entities"
)

type SeedService interface {
	// ImportXLSX reads a seed-packet spreadsheet and stores one seed per
	// row for the given user. Returns the stored seeds.
	ImportXLSX(uid string, r io.Reader) ([]entities.Seed, error)
}
