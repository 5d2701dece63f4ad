package repository

import "gardenplan/entities"

type TaskRepository interface {
	BulkInsert(ts []entities.Task) error
	FindByID(id uint) (*entities.Task, error)
	ListByGarden(gardenID uint, from, to string) ([]entities.Task, error)
	ListByPlanting(plantingID uint) ([]entities.Task, error)
	// ListPendingByUser spans all of a user's gardens, due-date window
	// inclusive. Used by the digest mailer.
	ListPendingByUser(uid, from, to string) ([]entities.Task, error)
	Update(t *entities.Task) error
	PatchStatus(taskID uint, status string) error
	DeleteByPlanting(plantingID uint) error
}
