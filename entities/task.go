package entities

import "time"

// Task is one milestone reminder row per planting.
type Task struct {
	TaskID     uint    `gorm:"primaryKey" json:"task_id"`
	GardenID   uint    `gorm:"index" json:"garden_id"`
	PlantingID uint    `gorm:"index" json:"planting_id"`
	Type       string  `json:"type"` // sow|plant_out|harvest_start|harvest_end
	DueDate    *string `json:"due_date"`
	Status     string  `json:"status"` // pending|done|skipped

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GardenTask is a free-form to-do not tied to a planting milestone.
type GardenTask struct {
	GardenTaskID uint    `gorm:"primaryKey" json:"garden_task_id"`
	GardenID     uint    `gorm:"index" json:"garden_id"`
	Title        string  `json:"title"`
	DueDate      *string `json:"due_date"`
	Status       string  `json:"status"` // pending|done|skipped
	Notes        string  `json:"notes"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
