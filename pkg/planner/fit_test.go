package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gardenplan/entities"
)

func day(s string) *string { return &s }

func planted(id, bedID uint, startSeg, used int, from, to string) entities.Planting {
	return entities.Planting{
		PlantingID:        id,
		BedID:             bedID,
		StartSegment:      startSeg,
		SegmentsUsed:      used,
		PlannedDate:       day(from),
		PlannedHarvestEnd: day(to),
	}
}

func TestIntervalsOverlap(t *testing.T) {
	assert.True(t, IntervalsOverlap("2024-04-01", "2024-04-30", "2024-04-30", "2024-05-15"), "shared boundary day overlaps")
	assert.True(t, IntervalsOverlap("2024-04-01", "2024-04-30", "2024-04-10", "2024-04-12"))
	assert.False(t, IntervalsOverlap("2024-04-01", "2024-04-30", "2024-05-01", "2024-05-02"))
	assert.False(t, IntervalsOverlap("2024-04-01", "2024-04-30", "bad", "2024-05-02"))
}

func TestIntervalsOverlapIsSymmetric(t *testing.T) {
	cases := [][4]string{
		{"2024-04-01", "2024-04-30", "2024-04-15", "2024-05-15"},
		{"2024-04-01", "2024-04-30", "2024-05-01", "2024-05-15"},
		{"2024-01-01", "2024-01-01", "2024-01-01", "2024-01-01"},
	}
	for _, c := range cases {
		assert.Equal(t,
			IntervalsOverlap(c[0], c[1], c[2], c[3]),
			IntervalsOverlap(c[2], c[3], c[0], c[1]))
	}
}

func TestSegmentsOverlap(t *testing.T) {
	assert.True(t, SegmentsOverlap(0, 2, 1, 2))
	assert.False(t, SegmentsOverlap(0, 2, 2, 2), "adjacent ranges do not overlap")
	assert.True(t, SegmentsOverlap(3, 1, 0, 4))
	assert.False(t, SegmentsOverlap(0, 0, 0, 3), "empty range overlaps nothing")

	for _, c := range [][4]int{{0, 2, 1, 2}, {0, 2, 2, 1}, {1, 3, 0, 1}} {
		assert.Equal(t,
			SegmentsOverlap(c[0], c[1], c[2], c[3]),
			SegmentsOverlap(c[2], c[3], c[0], c[1]))
	}
}

func TestAllFittingSegmentsAroundOccupiedRange(t *testing.T) {
	bed := &entities.GardenBed{BedID: 1, Segments: 4}
	existing := []entities.Planting{planted(10, 1, 0, 2, "2024-04-01", "2024-04-30")}
	cand := planted(0, 1, 0, 2, "2024-04-01", "2024-04-30")

	// Segments 0 and 1 are taken; starting at 1 would still touch segment 1.
	assert.Equal(t, []int{2}, AllFittingSegmentsInBed(bed, existing, &cand))
}

func TestAllFittingSegmentsEmptyBed(t *testing.T) {
	bed := &entities.GardenBed{BedID: 1, Segments: 3}
	cand := planted(0, 1, 0, 1, "2024-04-01", "2024-04-30")
	assert.Equal(t, []int{0, 1, 2}, AllFittingSegmentsInBed(bed, nil, &cand))
}

func TestAllFittingSegmentsStayInBounds(t *testing.T) {
	bed := &entities.GardenBed{BedID: 1, Segments: 5}
	cand := planted(0, 1, 0, 3, "2024-04-01", "2024-04-30")
	for _, s := range AllFittingSegmentsInBed(bed, nil, &cand) {
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, bed.Segments-cand.SegmentsUsed)
	}
}

func TestFitRequiresCompleteDateRange(t *testing.T) {
	bed := &entities.GardenBed{BedID: 1, Segments: 3}
	cand := entities.Planting{BedID: 1, SegmentsUsed: 1, PlannedDate: day("2024-04-01")}

	assert.False(t, FitsInBedAtSegment(bed, nil, &cand, 0))
	assert.Empty(t, AllFittingSegmentsInBed(bed, nil, &cand))
	assert.Nil(t, FindEarliestFitAcrossBeds([]entities.GardenBed{*bed}, nil, &cand, "2024-04-01"))
}

func TestFitIgnoresOtherBedsAndSelf(t *testing.T) {
	bed := &entities.GardenBed{BedID: 1, Segments: 2}
	others := []entities.Planting{
		planted(20, 2, 0, 2, "2024-04-01", "2024-04-30"), // other bed
		planted(30, 1, 0, 2, "2024-04-01", "2024-04-30"), // same spot, same id as cand
	}
	cand := planted(30, 1, 0, 2, "2024-04-01", "2024-04-30")
	assert.True(t, FitsInBedAtSegment(bed, others, &cand, 0))
}

func TestFitRejectsOutOfBoundsSegment(t *testing.T) {
	bed := &entities.GardenBed{BedID: 1, Segments: 3}
	cand := planted(0, 1, 0, 2, "2024-04-01", "2024-04-30")
	assert.False(t, FitsInBedAtSegment(bed, nil, &cand, -1))
	assert.False(t, FitsInBedAtSegment(bed, nil, &cand, 2))
}

func TestBuildConflictsMapIsSymmetric(t *testing.T) {
	all := []entities.Planting{
		planted(1, 1, 0, 2, "2024-04-01", "2024-04-30"),
		planted(2, 1, 1, 2, "2024-04-15", "2024-05-15"),
		planted(3, 1, 3, 1, "2024-04-01", "2024-04-30"), // clear of both
		planted(4, 2, 0, 2, "2024-04-01", "2024-04-30"), // other bed
	}
	m := BuildConflictsMap(all)

	assert.ElementsMatch(t, []uint{2}, m[1])
	assert.ElementsMatch(t, []uint{1}, m[2])
	assert.NotContains(t, m, uint(3))
	assert.NotContains(t, m, uint(4))
	assert.Equal(t, 2, CountUniqueConflicts(m))

	for id, peers := range m {
		for _, peer := range peers {
			assert.Contains(t, m[peer], id, "conflict map must be symmetric")
		}
	}
}

func TestConflictsSkipPlantingsWithoutDates(t *testing.T) {
	undated := entities.Planting{PlantingID: 9, BedID: 1, StartSegment: 0, SegmentsUsed: 2}
	all := []entities.Planting{undated, planted(1, 1, 0, 2, "2024-04-01", "2024-04-30")}
	assert.Empty(t, BuildConflictsMap(all))
}

func TestEarliestFitWaitsForBedToFree(t *testing.T) {
	bed := entities.GardenBed{BedID: 1, Segments: 1}
	occupied := []entities.Planting{planted(1, 1, 0, 1, "2024-04-01", "2024-04-10")}
	cand := planted(0, 1, 0, 1, "2024-04-01", "2024-04-05")

	slot := FindEarliestFitAcrossBeds([]entities.GardenBed{bed}, occupied, &cand, "2024-04-01")
	if assert.NotNil(t, slot) {
		assert.Equal(t, uint(1), slot.BedID)
		assert.Equal(t, 0, slot.StartSegment)
		assert.Equal(t, "2024-04-11", slot.Date, "first free day after the occupant")
		assert.Equal(t, "2024-04-15", slot.EndDate, "original 4-day span preserved")
	}
}

func TestEarliestFitPrefersEarlierBedOrder(t *testing.T) {
	beds := []entities.GardenBed{{BedID: 5, Segments: 2}, {BedID: 6, Segments: 2}}
	cand := planted(0, 5, 0, 1, "2024-04-01", "2024-04-05")

	slot := FindEarliestFitAcrossBeds(beds, nil, &cand, "2024-04-01")
	if assert.NotNil(t, slot) {
		assert.Equal(t, uint(5), slot.BedID)
		assert.Equal(t, "2024-04-01", slot.Date)
	}
}

func TestEarliestFitGivesUpAtHorizon(t *testing.T) {
	bed := entities.GardenBed{BedID: 1, Segments: 1}
	blocked := []entities.Planting{planted(1, 1, 0, 1, "2024-01-01", "2026-12-31")}
	cand := planted(0, 1, 0, 1, "2024-02-01", "2024-02-05")

	assert.Nil(t, FindEarliestFitAcrossBeds([]entities.GardenBed{bed}, blocked, &cand, "2024-02-01"))
}
