package repository

import "gardenplan/entities"

type BedRepository interface {
	Create(b *entities.GardenBed) error
	FindByID(id uint) (*entities.GardenBed, error)
	ListByGarden(gardenID uint) ([]entities.GardenBed, error)
	Update(b *entities.GardenBed) error
	Delete(id uint) error
}
