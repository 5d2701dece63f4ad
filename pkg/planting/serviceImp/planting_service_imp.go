package serviceImp

import (
	"errors"

	"gardenplan/entities"
	bedrepo "gardenplan/pkg/bed/repository"
	"gardenplan/pkg/planner"
	plantrepo "gardenplan/pkg/planting/repository"
	"gardenplan/pkg/planting/service"
	seedrepo "gardenplan/pkg/seed/repository"
	taskrepo "gardenplan/pkg/task/repository"
)

// ErrSegmentOutOfBounds rejects placements whose segment range does not
// lie inside the bed. Temporal conflicts are NOT errors: they persist
// and come back in PlacementResult.Conflicts.
var ErrSegmentOutOfBounds = errors.New("segment range out of bed bounds")

type PlantingSvc struct {
	plantings plantrepo.PlantingRepository
	beds      bedrepo.BedRepository
	seeds     seedrepo.SeedRepository
	tasks     taskrepo.TaskRepository
}

func New(p plantrepo.PlantingRepository, b bedrepo.BedRepository, s seedrepo.SeedRepository, t taskrepo.TaskRepository) *PlantingSvc {
	return &PlantingSvc{plantings: p, beds: b, seeds: s, tasks: t}
}

func (s *PlantingSvc) Place(uid string, req service.PlacementRequest) (*service.PlacementResult, error) {
	seed, err := s.seeds.FindByID(req.SeedID, uid)
	if err != nil {
		return nil, err
	}
	bed, err := s.beds.FindByID(req.BedID)
	if err != nil {
		return nil, err
	}

	method := req.Method
	if method != "direct" && method != "presow" {
		method = seed.SowingType
	}
	used := req.SegmentsUsed
	if used < 1 {
		used = 1
	}
	if req.StartSegment < 0 || req.StartSegment+used > bed.Segments {
		return nil, ErrSegmentOutOfBounds
	}

	sched := planner.DeriveSchedule(planner.Method(method), planner.DurationsOf(seed), req.Anchor, req.AnchorDate)
	p := &entities.Planting{
		GardenID: req.GardenID, BedID: req.BedID, SeedID: req.SeedID,
		Method: method, StartSegment: req.StartSegment, SegmentsUsed: used,
		Notes: req.Notes,
	}
	applySchedule(p, sched)

	if err := s.plantings.Create(p); err != nil {
		return nil, err
	}
	if err := s.tasks.BulkInsert(milestoneTasks(p)); err != nil {
		return nil, err
	}
	return s.resultWithConflicts(p)
}

func (s *PlantingSvc) RecordActual(plantingID uint, milestone planner.Anchor, date string) (*service.PlacementResult, error) {
	p, err := s.plantings.FindByID(plantingID)
	if err != nil {
		return nil, err
	}
	seed, err := s.seedOf(p)
	if err != nil {
		return nil, err
	}

	setActual(p, milestone, date)
	// The recorded date becomes the anchor: the whole planned chain is
	// rebuilt around what actually happened.
	sched := planner.DeriveSchedule(planner.Method(p.Method), planner.DurationsOf(seed), milestone, date)
	applySchedule(p, sched)

	if err := s.plantings.Update(p); err != nil {
		return nil, err
	}
	if err := s.resyncTasks(p); err != nil {
		return nil, err
	}
	return s.resultWithConflicts(p)
}

func (s *PlantingSvc) Move(plantingID, bedID uint, startSegment int) (*service.PlacementResult, error) {
	p, err := s.plantings.FindByID(plantingID)
	if err != nil {
		return nil, err
	}
	bed, err := s.beds.FindByID(bedID)
	if err != nil {
		return nil, err
	}
	if startSegment < 0 || startSegment+p.SegmentsUsed > bed.Segments {
		return nil, ErrSegmentOutOfBounds
	}
	p.BedID = bedID
	p.StartSegment = startSegment
	if err := s.plantings.Update(p); err != nil {
		return nil, err
	}
	return s.resultWithConflicts(p)
}

func (s *PlantingSvc) Slots(plantingID, bedID uint) ([]int, error) {
	p, err := s.plantings.FindByID(plantingID)
	if err != nil {
		return nil, err
	}
	bed, err := s.beds.FindByID(bedID)
	if err != nil {
		return nil, err
	}
	all, err := s.plantings.ListByGarden(p.GardenID)
	if err != nil {
		return nil, err
	}
	cand := *p
	cand.BedID = bedID
	return planner.AllFittingSegmentsInBed(bed, all, &cand), nil
}

func (s *PlantingSvc) Conflicts(gardenID uint) (map[uint][]uint, int, error) {
	all, err := s.plantings.ListByGarden(gardenID)
	if err != nil {
		return nil, 0, err
	}
	m := planner.BuildConflictsMap(all)
	return m, planner.CountUniqueConflicts(m), nil
}

func (s *PlantingSvc) EarliestFit(plantingID uint, fromDate string) (*planner.Slot, error) {
	p, err := s.plantings.FindByID(plantingID)
	if err != nil {
		return nil, err
	}
	beds, err := s.beds.ListByGarden(p.GardenID)
	if err != nil {
		return nil, err
	}
	all, err := s.plantings.ListByGarden(p.GardenID)
	if err != nil {
		return nil, err
	}
	return planner.FindEarliestFitAcrossBeds(beds, all, p, fromDate), nil
}

func (s *PlantingSvc) Delete(plantingID uint) error {
	if err := s.tasks.DeleteByPlanting(plantingID); err != nil {
		return err
	}
	return s.plantings.Delete(plantingID)
}

func (s *PlantingSvc) seedOf(p *entities.Planting) (*entities.Seed, error) {
	// Seeds are user-scoped but the planting already passed that check
	// at placement time; look up through the owning garden's user via a
	// direct id fetch.
	return s.seeds.FindAny(p.SeedID)
}

func (s *PlantingSvc) resultWithConflicts(p *entities.Planting) (*service.PlacementResult, error) {
	all, err := s.plantings.ListByGarden(p.GardenID)
	if err != nil {
		return nil, err
	}
	m := planner.BuildConflictsMap(all)
	return &service.PlacementResult{Planting: p, Conflicts: m[p.PlantingID]}, nil
}

func applySchedule(p *entities.Planting, sched planner.Schedule) {
	p.PlannedPresowDate = sched.PresowDate
	p.PlannedDate = sched.GroundDate
	p.PlannedHarvestStart = sched.HarvestStart
	p.PlannedHarvestEnd = sched.HarvestEnd
}

func setActual(p *entities.Planting, milestone planner.Anchor, date string) {
	d := date
	switch milestone {
	case planner.AnchorPresow:
		p.ActualPresowDate = &d
	case planner.AnchorGround:
		p.ActualDate = &d
	case planner.AnchorHarvestStart:
		p.ActualHarvestStart = &d
	case planner.AnchorHarvestEnd:
		p.ActualHarvestEnd = &d
	}
}

// taskTypeFor maps a milestone to its task row. The ground milestone is
// "plant_out" for presown plantings and "sow" for direct ones; the
// presow milestone only exists for presown plantings.
func taskTypeFor(method string, m planner.Anchor) string {
	switch m {
	case planner.AnchorPresow:
		if method == "presow" {
			return "sow"
		}
		return ""
	case planner.AnchorGround:
		if method == "presow" {
			return "plant_out"
		}
		return "sow"
	case planner.AnchorHarvestStart:
		return "harvest_start"
	case planner.AnchorHarvestEnd:
		return "harvest_end"
	}
	return ""
}

func plannedFor(p *entities.Planting, m planner.Anchor) *string {
	switch m {
	case planner.AnchorPresow:
		return p.PlannedPresowDate
	case planner.AnchorGround:
		return p.PlannedDate
	case planner.AnchorHarvestStart:
		return p.PlannedHarvestStart
	case planner.AnchorHarvestEnd:
		return p.PlannedHarvestEnd
	}
	return nil
}

func actualFor(p *entities.Planting, m planner.Anchor) *string {
	switch m {
	case planner.AnchorPresow:
		return p.ActualPresowDate
	case planner.AnchorGround:
		return p.ActualDate
	case planner.AnchorHarvestStart:
		return p.ActualHarvestStart
	case planner.AnchorHarvestEnd:
		return p.ActualHarvestEnd
	}
	return nil
}

var milestones = []planner.Anchor{
	planner.AnchorPresow, planner.AnchorGround,
	planner.AnchorHarvestStart, planner.AnchorHarvestEnd,
}

func milestoneTasks(p *entities.Planting) []entities.Task {
	var out []entities.Task
	for _, m := range milestones {
		tt := taskTypeFor(p.Method, m)
		due := plannedFor(p, m)
		if tt == "" || due == nil {
			continue
		}
		out = append(out, entities.Task{
			GardenID: p.GardenID, PlantingID: p.PlantingID,
			Type: tt, DueDate: due, Status: "pending",
		})
	}
	return out
}

// resyncTasks realigns the planting's task rows after a replan: pending
// tasks follow the new planned dates, tasks whose actual date is now set
// flip to done, and milestones that gained a date get their row.
func (s *PlantingSvc) resyncTasks(p *entities.Planting) error {
	existing, err := s.tasks.ListByPlanting(p.PlantingID)
	if err != nil {
		return err
	}
	byType := map[string]*entities.Task{}
	for i := range existing {
		byType[existing[i].Type] = &existing[i]
	}

	var missing []entities.Task
	for _, m := range milestones {
		tt := taskTypeFor(p.Method, m)
		due := plannedFor(p, m)
		if tt == "" {
			continue
		}
		t, ok := byType[tt]
		if !ok {
			if due != nil {
				status := "pending"
				if actualFor(p, m) != nil {
					status = "done"
				}
				missing = append(missing, entities.Task{
					GardenID: p.GardenID, PlantingID: p.PlantingID,
					Type: tt, DueDate: due, Status: status,
				})
			}
			continue
		}
		changed := false
		if t.Status == "pending" && due != nil {
			t.DueDate = due
			changed = true
		}
		if actualFor(p, m) != nil && t.Status != "done" {
			t.Status = "done"
			changed = true
		}
		if changed {
			if err := s.tasks.Update(t); err != nil {
				return err
			}
		}
	}
	return s.tasks.BulkInsert(missing)
}
