package entities

import "time"

type Seed struct {
	SeedID     uint   `gorm:"primaryKey" json:"seed_id"`
	UserID     string `json:"user_id" gorm:"index"`
	Name       string `json:"name"`
	Variety    string `json:"variety"`
	SowingType string `json:"sowing_type"` // direct|presow

	// Week-granularity durations; nil means unknown and the planner
	// leaves the dependent milestone dates empty.
	PresowDurationWeeks  *int `json:"presow_duration_weeks"`
	GrowDurationWeeks    *int `json:"grow_duration_weeks"`
	HarvestDurationWeeks *int `json:"harvest_duration_weeks"`

	// Month numbers (1-12) for UI filtering; not used by date math.
	PlantingMonths []int `gorm:"serializer:json" json:"planting_months,omitempty"`
	HarvestMonths  []int `gorm:"serializer:json" json:"harvest_months,omitempty"`

	Notes string `json:"notes"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
