package entities

import "time"

type GardenBed struct {
	BedID        uint    `gorm:"primaryKey" json:"bed_id"`
	GardenID     uint    `json:"garden_id" gorm:"index"`
	Name         string  `json:"name"`
	WidthCM      float64 `json:"width_cm"`
	LengthCM     float64 `json:"length_cm"`
	Segments     int     `json:"segments"` // plantable slots, >= 1
	IsGreenhouse bool    `json:"is_greenhouse"`

	// Layout-editor position only; scheduling never reads these.
	LocationX float64 `json:"location_x"`
	LocationY float64 `json:"location_y"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
