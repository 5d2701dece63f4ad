package repositoryImp

import (
	"gardenplan/entities"
	"gardenplan/pkg/wishlist/repository"

	"gorm.io/gorm"
)

type wishRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.WishlistRepository { return &wishRepo{db} }

func (r *wishRepo) Create(w *entities.WishlistItem) error { return r.db.Create(w).Error }

func (r *wishRepo) FindByID(id uint, uid string) (*entities.WishlistItem, error) {
	var w entities.WishlistItem
	if err := r.db.Where("item_id = ? AND user_id = ?", id, uid).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *wishRepo) ListByUser(uid string) ([]entities.WishlistItem, error) {
	var ws []entities.WishlistItem
	return ws, r.db.Where("user_id = ?", uid).Order("priority DESC, item_id ASC").Find(&ws).Error
}

func (r *wishRepo) Update(w *entities.WishlistItem) error { return r.db.Save(w).Error }

func (r *wishRepo) Delete(id uint, uid string) error {
	return r.db.Where("item_id = ? AND user_id = ?", id, uid).Delete(&entities.WishlistItem{}).Error
}
