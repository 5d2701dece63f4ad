package repositoryImp

import (
	"gardenplan/entities"
	"gardenplan/pkg/gardentask/repository"

	"gorm.io/gorm"
)

type gtRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GardenTaskRepository { return &gtRepo{db} }

func (r *gtRepo) Create(t *entities.GardenTask) error { return r.db.Create(t).Error }

func (r *gtRepo) FindByID(id uint) (*entities.GardenTask, error) {
	var t entities.GardenTask
	if err := r.db.Where("garden_task_id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *gtRepo) ListByGarden(gardenID uint) ([]entities.GardenTask, error) {
	var ts []entities.GardenTask
	return ts, r.db.Where("garden_id = ?", gardenID).Order("due_date ASC, garden_task_id ASC").Find(&ts).Error
}

func (r *gtRepo) Update(t *entities.GardenTask) error { return r.db.Save(t).Error }

func (r *gtRepo) Delete(id uint) error {
	return r.db.Where("garden_task_id = ?", id).Delete(&entities.GardenTask{}).Error
}
