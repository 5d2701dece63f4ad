package repository

import "gardenplan/entities"

type PlantingRepository interface {
	Create(p *entities.Planting) error
	FindByID(id uint) (*entities.Planting, error)
	ListByGarden(gardenID uint) ([]entities.Planting, error)
	Update(p *entities.Planting) error
	Delete(id uint) error
}
