package repository

import "gardenplan/entities"

type WishlistRepository interface {
	Create(w *entities.WishlistItem) error
	FindByID(id uint, uid string) (*entities.WishlistItem, error)
	ListByUser(uid string) ([]entities.WishlistItem, error)
	Update(w *entities.WishlistItem) error
	Delete(id uint, uid string) error
}
