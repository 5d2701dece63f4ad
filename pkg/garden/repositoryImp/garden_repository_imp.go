package repositoryImp

import (
	"gardenplan/entities"
	"gardenplan/pkg/garden/repository"

	"gorm.io/gorm"
)

type gardenRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GardenRepository { return &gardenRepo{db} }

func (r *gardenRepo) Create(g *entities.Garden) error { return r.db.Create(g).Error }

func (r *gardenRepo) FindByID(id uint, uid string) (*entities.Garden, error) {
	var g entities.Garden
	if err := r.db.Where("garden_id = ? AND user_id = ?", id, uid).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gardenRepo) ListByUser(uid string) ([]entities.Garden, error) {
	var gs []entities.Garden
	return gs, r.db.Where("user_id = ?", uid).Order("garden_id ASC").Find(&gs).Error
}

func (r *gardenRepo) Delete(id uint, uid string) error {
	return r.db.Where("garden_id = ? AND user_id = ?", id, uid).Delete(&entities.Garden{}).Error
}
