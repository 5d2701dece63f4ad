package entities

import "time"

type Garden struct {
	GardenID uint   `gorm:"primaryKey" json:"garden_id"`
	UserID   string `json:"user_id" gorm:"index"`
	Name     string `json:"name"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
