package repositoryImp

import (
	"gardenplan/entities"
	"gardenplan/pkg/task/repository"

	"gorm.io/gorm"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func (r *taskRepo) BulkInsert(ts []entities.Task) error {
	if len(ts) == 0 {
		return nil
	}
	return r.db.Create(&ts).Error
}

func (r *taskRepo) FindByID(id uint) (*entities.Task, error) {
	var t entities.Task
	if err := r.db.Where("task_id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) ListByGarden(gardenID uint, from, to string) ([]entities.Task, error) {
	q := r.db.Where("garden_id = ?", gardenID)
	if from != "" {
		q = q.Where("due_date >= ?", from)
	}
	if to != "" {
		q = q.Where("due_date <= ?", to)
	}
	var out []entities.Task
	return out, q.Order("due_date ASC, task_id ASC").Find(&out).Error
}

func (r *taskRepo) ListByPlanting(plantingID uint) ([]entities.Task, error) {
	var out []entities.Task
	return out, r.db.Where("planting_id = ?", plantingID).Order("task_id ASC").Find(&out).Error
}

func (r *taskRepo) ListPendingByUser(uid, from, to string) ([]entities.Task, error) {
	q := r.db.Model(&entities.Task{}).
		Joins("JOIN gardens ON gardens.garden_id = tasks.garden_id").
		Where("gardens.user_id = ? AND tasks.status = ?", uid, "pending")
	if from != "" {
		q = q.Where("tasks.due_date >= ?", from)
	}
	if to != "" {
		q = q.Where("tasks.due_date <= ?", to)
	}
	var out []entities.Task
	return out, q.Order("tasks.due_date ASC, tasks.task_id ASC").Find(&out).Error
}

func (r *taskRepo) Update(t *entities.Task) error { return r.db.Save(t).Error }

func (r *taskRepo) PatchStatus(taskID uint, status string) error {
	return r.db.Model(&entities.Task{}).Where("task_id = ?", taskID).Update("status", status).Error
}

func (r *taskRepo) DeleteByPlanting(plantingID uint) error {
	return r.db.Where("planting_id = ?", plantingID).Delete(&entities.Task{}).Error
}
