package entities

import "time"

// Planting occupies segments [StartSegment, StartSegment+SegmentsUsed-1]
// of one bed for its planned date range. All date columns are calendar
// dates stored as YYYY-MM-DD; nil means not (yet) known.
type Planting struct {
	PlantingID uint   `gorm:"primaryKey" json:"planting_id"`
	GardenID   uint   `json:"garden_id" gorm:"index"`
	BedID      uint   `json:"bed_id" gorm:"index"`
	SeedID     uint   `json:"seed_id" gorm:"index"`
	Method     string `json:"method"` // direct|presow

	StartSegment int `json:"start_segment"` // 0-based
	SegmentsUsed int `json:"segments_used"` // >= 1

	PlannedPresowDate   *string `json:"planned_presow_date"`
	PlannedDate         *string `json:"planned_date"` // ground/sow date
	PlannedHarvestStart *string `json:"planned_harvest_start"`
	PlannedHarvestEnd   *string `json:"planned_harvest_end"`

	ActualPresowDate   *string `json:"actual_presow_date"`
	ActualDate         *string `json:"actual_date"`
	ActualHarvestStart *string `json:"actual_harvest_start"`
	ActualHarvestEnd   *string `json:"actual_harvest_end"`

	Notes string `json:"notes"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
