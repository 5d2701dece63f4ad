package repositoryImp

import (
	"gardenplan/entities"
	"gardenplan/pkg/bed/repository"

	"gorm.io/gorm"
)

type bedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BedRepository { return &bedRepo{db} }

func (r *bedRepo) Create(b *entities.GardenBed) error { return r.db.Create(b).Error }

func (r *bedRepo) FindByID(id uint) (*entities.GardenBed, error) {
	var b entities.GardenBed
	if err := r.db.Where("bed_id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bedRepo) ListByGarden(gardenID uint) ([]entities.GardenBed, error) {
	var bs []entities.GardenBed
	return bs, r.db.Where("garden_id = ?", gardenID).Order("bed_id ASC").Find(&bs).Error
}

func (r *bedRepo) Update(b *entities.GardenBed) error { return r.db.Save(b).Error }

func (r *bedRepo) Delete(id uint) error {
	return r.db.Where("bed_id = ?", id).Delete(&entities.GardenBed{}).Error
}
