package service

import (
	"gardenplan/entities"
	"gardenplan/pkg/planner"
)

// PlacementRequest creates a planting from a bed, segment range, seed
// and one anchored milestone date.
type PlacementRequest struct {
	GardenID     uint           `json:"garden_id"`
	BedID        uint           `json:"bed_id"`
	SeedID       uint           `json:"seed_id"`
	StartSegment int            `json:"start_segment"`
	SegmentsUsed int            `json:"segments_used"`
	Method       string         `json:"method"` // defaults to the seed's sowing type
	Anchor       planner.Anchor `json:"anchor"`
	AnchorDate   string         `json:"anchor_date"`
	Notes        string         `json:"notes"`
}

// PlacementResult is a persisted planting plus the plantings it now
// conflicts with. Conflicted writes go through; the caller decides how
// to surface them.
type PlacementResult struct {
	Planting  *entities.Planting `json:"planting"`
	Conflicts []uint             `json:"conflicts"`
}

type PlantingService interface {
	Place(uid string, req PlacementRequest) (*PlacementResult, error)
	// RecordActual stores an actual milestone date and replans the whole
	// chain anchored on it, then re-syncs the planting's task rows.
	RecordActual(plantingID uint, milestone planner.Anchor, date string) (*PlacementResult, error)
	// Move re-places a planting on a bed/segment without touching dates.
	Move(plantingID, bedID uint, startSegment int) (*PlacementResult, error)
	Slots(plantingID, bedID uint) ([]int, error)
	Conflicts(gardenID uint) (map[uint][]uint, int, error)
	EarliestFit(plantingID uint, fromDate string) (*planner.Slot, error)
	Delete(plantingID uint) error
}
