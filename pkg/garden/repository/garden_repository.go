package repository

import "gardenplan/entities"

type GardenRepository interface {
	Create(g *entities.Garden) error
	FindByID(id uint, uid string) (*entities.Garden, error)
	ListByUser(uid string) ([]entities.Garden, error)
	Delete(id uint, uid string) error
}
