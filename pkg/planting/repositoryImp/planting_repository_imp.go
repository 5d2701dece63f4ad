package repositoryImp

import (
	"gardenplan/entities"
	"gardenplan/pkg/planting/repository"

	"gorm.io/gorm"
)

type plantingRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantingRepository { return &plantingRepo{db} }

func (r *plantingRepo) Create(p *entities.Planting) error { return r.db.Create(p).Error }

func (r *plantingRepo) FindByID(id uint) (*entities.Planting, error) {
	var p entities.Planting
	if err := r.db.Where("planting_id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantingRepo) ListByGarden(gardenID uint) ([]entities.Planting, error) {
	var ps []entities.Planting
	return ps, r.db.Where("garden_id = ?", gardenID).Order("planting_id ASC").Find(&ps).Error
}

func (r *plantingRepo) Update(p *entities.Planting) error { return r.db.Save(p).Error }

func (r *plantingRepo) Delete(id uint) error {
	return r.db.Where("planting_id = ?", id).Delete(&entities.Planting{}).Error
}
