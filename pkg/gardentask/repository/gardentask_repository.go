package repository

import "gardenplan/entities"

type GardenTaskRepository interface {
	Create(t *entities.GardenTask) error
	FindByID(id uint) (*entities.GardenTask, error)
	ListByGarden(gardenID uint) ([]entities.GardenTask, error)
	Update(t *entities.GardenTask) error
	Delete(id uint) error
}
