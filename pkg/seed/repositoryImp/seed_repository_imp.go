package repositoryImp

import (
	"gardenplan/entities"
	"gardenplan/pkg/seed/repository"

	"gorm.io/gorm"
)

type seedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SeedRepository { return &seedRepo{db} }

func (r *seedRepo) Create(s *entities.Seed) error { return r.db.Create(s).Error }

func (r *seedRepo) BulkInsert(ss []entities.Seed) error { return r.db.Create(&ss).Error }

func (r *seedRepo) FindByID(id uint, uid string) (*entities.Seed, error) {
	var s entities.Seed
	if err := r.db.Where("seed_id = ? AND user_id = ?", id, uid).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *seedRepo) FindAny(id uint) (*entities.Seed, error) {
	var s entities.Seed
	if err := r.db.Where("seed_id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *seedRepo) ListByUser(uid string) ([]entities.Seed, error) {
	var ss []entities.Seed
	return ss, r.db.Where("user_id = ?", uid).Order("name ASC").Find(&ss).Error
}

func (r *seedRepo) Update(s *entities.Seed) error { return r.db.Save(s).Error }

func (r *seedRepo) Delete(id uint, uid string) error {
	return r.db.Where("seed_id = ? AND user_id = ?", id, uid).Delete(&entities.Seed{}).Error
}
