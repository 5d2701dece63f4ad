package repository

import "gardenplan/entities"

type SeedRepository interface {
	Create(s *entities.Seed) error
	BulkInsert(ss []entities.Seed) error
	FindByID(id uint, uid string) (*entities.Seed, error)
	// FindAny skips the user scope; for internal lookups from records
	// that already carry an ownership check.
	FindAny(id uint) (*entities.Seed, error)
	ListByUser(uid string) ([]entities.Seed, error)
	Update(s *entities.Seed) error
	Delete(id uint, uid string) error
}
