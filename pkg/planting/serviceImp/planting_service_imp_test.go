package serviceImp

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gardenplan/entities"
	bedRepoImp "gardenplan/pkg/bed/repositoryImp"
	"gardenplan/pkg/planner"
	plantingRepoImp "gardenplan/pkg/planting/repositoryImp"
	"gardenplan/pkg/planting/service"
	seedRepoImp "gardenplan/pkg/seed/repositoryImp"
	taskRepoImp "gardenplan/pkg/task/repositoryImp"
)

func intp(n int) *int { return &n }

func setup(t *testing.T) (*PlantingSvc, *gorm.DB, *entities.Seed, *entities.GardenBed) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Garden{}, &entities.GardenBed{}, &entities.Seed{},
		&entities.Planting{}, &entities.Task{},
	))

	seed := &entities.Seed{
		UserID: "u1", Name: "Tomato", Variety: "Coeur de Boeuf", SowingType: "presow",
		PresowDurationWeeks: intp(4), GrowDurationWeeks: intp(6), HarvestDurationWeeks: intp(3),
	}
	require.NoError(t, db.Create(seed).Error)
	bed := &entities.GardenBed{GardenID: 1, Name: "North bed", Segments: 4}
	require.NoError(t, db.Create(bed).Error)

	svc := New(
		plantingRepoImp.New(db),
		bedRepoImp.New(db),
		seedRepoImp.New(db),
		taskRepoImp.New(db),
	)
	return svc, db, seed, bed
}

func placeReq(seed *entities.Seed, bed *entities.GardenBed) service.PlacementRequest {
	return service.PlacementRequest{
		GardenID: 1, BedID: bed.BedID, SeedID: seed.SeedID,
		StartSegment: 0, SegmentsUsed: 2,
		Anchor: planner.AnchorPresow, AnchorDate: "2024-03-01",
	}
}

func TestPlaceDerivesScheduleAndSpawnsTasks(t *testing.T) {
	svc, db, seed, bed := setup(t)

	res, err := svc.Place("u1", placeReq(seed, bed))
	require.NoError(t, err)
	require.NotNil(t, res.Planting)
	assert.Empty(t, res.Conflicts)

	p := res.Planting
	assert.Equal(t, "presow", p.Method)
	assert.Equal(t, "2024-03-01", *p.PlannedPresowDate)
	assert.Equal(t, "2024-03-29", *p.PlannedDate)
	assert.Equal(t, "2024-05-10", *p.PlannedHarvestStart)
	assert.Equal(t, "2024-05-31", *p.PlannedHarvestEnd)

	var tasks []entities.Task
	require.NoError(t, db.Where("planting_id = ?", p.PlantingID).Order("task_id").Find(&tasks).Error)
	require.Len(t, tasks, 4)
	byType := map[string]string{}
	for _, tk := range tasks {
		assert.Equal(t, "pending", tk.Status)
		byType[tk.Type] = *tk.DueDate
	}
	assert.Equal(t, "2024-03-01", byType["sow"])
	assert.Equal(t, "2024-03-29", byType["plant_out"])
	assert.Equal(t, "2024-05-10", byType["harvest_start"])
	assert.Equal(t, "2024-05-31", byType["harvest_end"])
}

func TestPlaceDirectSeedSkipsPresow(t *testing.T) {
	svc, db, _, bed := setup(t)
	direct := &entities.Seed{
		UserID: "u1", Name: "Carrot", SowingType: "direct",
		GrowDurationWeeks: intp(10), HarvestDurationWeeks: intp(4),
	}
	require.NoError(t, db.Create(direct).Error)

	req := placeReq(direct, bed)
	req.Anchor = planner.AnchorGround
	req.AnchorDate = "2024-04-01"
	res, err := svc.Place("u1", req)
	require.NoError(t, err)

	assert.Nil(t, res.Planting.PlannedPresowDate)

	var tasks []entities.Task
	require.NoError(t, db.Where("planting_id = ?", res.Planting.PlantingID).Find(&tasks).Error)
	types := map[string]bool{}
	for _, tk := range tasks {
		types[tk.Type] = true
	}
	assert.True(t, types["sow"], "direct sowing gets a sow task on the ground date")
	assert.False(t, types["plant_out"])
}

func TestPlaceRejectsOutOfBoundsSegment(t *testing.T) {
	svc, _, seed, bed := setup(t)
	req := placeReq(seed, bed)
	req.StartSegment = 3 // 3+2 > 4 segments
	_, err := svc.Place("u1", req)
	assert.ErrorIs(t, err, ErrSegmentOutOfBounds)
}

func TestPlaceReportsConflictsButPersists(t *testing.T) {
	svc, _, seed, bed := setup(t)
	first, err := svc.Place("u1", placeReq(seed, bed))
	require.NoError(t, err)

	req := placeReq(seed, bed)
	req.StartSegment = 1 // overlaps segment 1 of the first planting
	second, err := svc.Place("u1", req)
	require.NoError(t, err, "conflicting placements persist; conflicts are data")

	assert.Contains(t, second.Conflicts, first.Planting.PlantingID)
}

func TestRecordActualReplansAndSyncsTasks(t *testing.T) {
	svc, db, seed, bed := setup(t)
	placed, err := svc.Place("u1", placeReq(seed, bed))
	require.NoError(t, err)

	// Planted out a week later than planned: whole chain shifts.
	res, err := svc.RecordActual(placed.Planting.PlantingID, planner.AnchorGround, "2024-04-05")
	require.NoError(t, err)

	p := res.Planting
	assert.Equal(t, "2024-04-05", *p.ActualDate)
	assert.Equal(t, "2024-04-05", *p.PlannedDate)
	assert.Equal(t, "2024-03-08", *p.PlannedPresowDate)
	assert.Equal(t, "2024-05-17", *p.PlannedHarvestStart)
	assert.Equal(t, "2024-06-07", *p.PlannedHarvestEnd)

	var tasks []entities.Task
	require.NoError(t, db.Where("planting_id = ?", p.PlantingID).Find(&tasks).Error)
	for _, tk := range tasks {
		switch tk.Type {
		case "plant_out":
			assert.Equal(t, "done", tk.Status, "recorded milestone flips its task to done")
		case "harvest_start":
			assert.Equal(t, "pending", tk.Status)
			assert.Equal(t, "2024-05-17", *tk.DueDate, "pending tasks follow the replanned dates")
		case "harvest_end":
			assert.Equal(t, "2024-06-07", *tk.DueDate)
		}
	}
}

func TestMoveChecksBoundsAndReportsConflicts(t *testing.T) {
	svc, db, seed, bed := setup(t)
	first, err := svc.Place("u1", placeReq(seed, bed))
	require.NoError(t, err)

	req := placeReq(seed, bed)
	req.StartSegment = 2
	second, err := svc.Place("u1", req)
	require.NoError(t, err)
	require.Empty(t, second.Conflicts)

	_, err = svc.Move(second.Planting.PlantingID, bed.BedID, 3)
	assert.ErrorIs(t, err, ErrSegmentOutOfBounds)

	moved, err := svc.Move(second.Planting.PlantingID, bed.BedID, 1)
	require.NoError(t, err)
	assert.Contains(t, moved.Conflicts, first.Planting.PlantingID)

	// Dates are untouched by a move.
	var stored entities.Planting
	require.NoError(t, db.First(&stored, second.Planting.PlantingID).Error)
	assert.Equal(t, *second.Planting.PlannedDate, *stored.PlannedDate)
}

func TestSlotsAndEarliestFit(t *testing.T) {
	svc, _, seed, bed := setup(t)
	first, err := svc.Place("u1", placeReq(seed, bed))
	require.NoError(t, err)

	req := placeReq(seed, bed)
	req.StartSegment = 2
	second, err := svc.Place("u1", req)
	require.NoError(t, err)

	slots, err := svc.Slots(second.Planting.PlantingID, bed.BedID)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, slots, "only the range clear of the first planting")

	slot, err := svc.EarliestFit(first.Planting.PlantingID, "2024-03-29")
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, bed.BedID, slot.BedID)
	assert.Equal(t, "2024-03-29", slot.Date, "its own slot still fits on the original date")
}

func TestDeleteCascadesTasks(t *testing.T) {
	svc, db, seed, bed := setup(t)
	placed, err := svc.Place("u1", placeReq(seed, bed))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(placed.Planting.PlantingID))

	var n int64
	require.NoError(t, db.Model(&entities.Task{}).Where("planting_id = ?", placed.Planting.PlantingID).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&entities.Planting{}).Where("planting_id = ?", placed.Planting.PlantingID).Count(&n).Error)
	assert.Zero(t, n)
}
