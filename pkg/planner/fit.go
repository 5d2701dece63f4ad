package planner

import (
	"gardenplan/entities"
)

// searchHorizonDays bounds FindEarliestFitAcrossBeds.
const searchHorizonDays = 365

// IntervalsOverlap reports whether the inclusive day ranges [aStart,aEnd]
// and [bStart,bEnd] share at least one calendar day. Same-day boundaries
// count as overlapping. Unparseable dates never overlap.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd string) bool {
	as, ok1 := parseDay(aStart)
	ae, ok2 := parseDay(aEnd)
	bs, ok3 := parseDay(bStart)
	be, ok4 := parseDay(bEnd)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return !as.After(be) && !bs.After(ae)
}

// SegmentsOverlap reports whether the closed segment ranges
// [aStart, aStart+aUsed-1] and [bStart, bStart+bUsed-1] intersect.
func SegmentsOverlap(aStart, aUsed, bStart, bUsed int) bool {
	if aUsed <= 0 || bUsed <= 0 {
		return false
	}
	return aStart <= bStart+bUsed-1 && bStart <= aStart+aUsed-1
}

// dateRange returns a planting's occupied day range [planned ground date,
// planned harvest end]. ok is false when either end is missing: such a
// planting cannot be fit-checked and never conflicts.
func dateRange(p *entities.Planting) (start, end string, ok bool) {
	if p.PlannedDate == nil || p.PlannedHarvestEnd == nil {
		return "", "", false
	}
	return *p.PlannedDate, *p.PlannedHarvestEnd, true
}

// FitsInBedAtSegment reports whether cand can occupy startSegment in bed
// without colliding with any other planting in the same bed that shares
// part of its date range. A candidate without a complete date range, or a
// segment range outside the bed, simply does not fit.
func FitsInBedAtSegment(bed *entities.GardenBed, all []entities.Planting, cand *entities.Planting, startSegment int) bool {
	if bed == nil || cand == nil || cand.SegmentsUsed < 1 {
		return false
	}
	if startSegment < 0 || startSegment+cand.SegmentsUsed > bed.Segments {
		return false
	}
	cs, ce, ok := dateRange(cand)
	if !ok {
		return false
	}
	for i := range all {
		o := &all[i]
		if o.PlantingID == cand.PlantingID || o.BedID != bed.BedID {
			continue
		}
		os, oe, ok := dateRange(o)
		if !ok {
			continue
		}
		if !IntervalsOverlap(cs, ce, os, oe) {
			continue
		}
		if SegmentsOverlap(startSegment, cand.SegmentsUsed, o.StartSegment, o.SegmentsUsed) {
			return false
		}
	}
	return true
}

// AllFittingSegmentsInBed lists every start segment at which cand fits,
// ascending. Empty when nothing fits or the candidate has no date range.
func AllFittingSegmentsInBed(bed *entities.GardenBed, all []entities.Planting, cand *entities.Planting) []int {
	out := []int{}
	if bed == nil || cand == nil || cand.SegmentsUsed < 1 {
		return out
	}
	for s := 0; s+cand.SegmentsUsed <= bed.Segments; s++ {
		if FitsInBedAtSegment(bed, all, cand, s) {
			out = append(out, s)
		}
	}
	return out
}

// BuildConflictsMap maps each planting id to the other plantings it
// overlaps in both time and segments within the same bed. The map is
// symmetric; a planting with no conflicts is absent.
func BuildConflictsMap(all []entities.Planting) map[uint][]uint {
	m := map[uint][]uint{}
	for i := range all {
		a := &all[i]
		as, ae, ok := dateRange(a)
		if !ok {
			continue
		}
		for j := i + 1; j < len(all); j++ {
			b := &all[j]
			if b.BedID != a.BedID {
				continue
			}
			bs, be, ok := dateRange(b)
			if !ok {
				continue
			}
			if !IntervalsOverlap(as, ae, bs, be) {
				continue
			}
			if !SegmentsOverlap(a.StartSegment, a.SegmentsUsed, b.StartSegment, b.SegmentsUsed) {
				continue
			}
			m[a.PlantingID] = append(m[a.PlantingID], b.PlantingID)
			m[b.PlantingID] = append(m[b.PlantingID], a.PlantingID)
		}
	}
	return m
}

// CountUniqueConflicts counts plantings with at least one conflict, not
// conflict pairs.
func CountUniqueConflicts(m map[uint][]uint) int { return len(m) }

// Slot is a placement found by FindEarliestFitAcrossBeds.
type Slot struct {
	BedID        uint   `json:"bed_id"`
	StartSegment int    `json:"start_segment"`
	Date         string `json:"date"`
	EndDate      string `json:"end_date"`
}

// FindEarliestFitAcrossBeds slides cand's date range forward one day at a
// time from startDate, keeping its length, and returns the first
// (bed, segment) that fits within a 365-day horizon. Beds are tried in
// the order given; nil means nothing fits inside the horizon. The search
// is greedy and deterministic, not globally optimal.
func FindEarliestFitAcrossBeds(beds []entities.GardenBed, all []entities.Planting, cand *entities.Planting, startDate string) *Slot {
	if cand == nil {
		return nil
	}
	cs, ce, ok := dateRange(cand)
	if !ok {
		return nil
	}
	s0, ok1 := parseDay(cs)
	e0, ok2 := parseDay(ce)
	base, ok3 := parseDay(startDate)
	if !ok1 || !ok2 || !ok3 || e0.Before(s0) {
		return nil
	}
	spanDays := int(e0.Sub(s0).Hours() / 24)

	shifted := *cand
	for off := 0; off < searchHorizonDays; off++ {
		day := base.AddDate(0, 0, off)
		start := day.Format(dayLayout)
		end := day.AddDate(0, 0, spanDays).Format(dayLayout)
		shifted.PlannedDate = &start
		shifted.PlannedHarvestEnd = &end
		for i := range beds {
			bed := &beds[i]
			shifted.BedID = bed.BedID
			for seg := 0; seg+cand.SegmentsUsed <= bed.Segments; seg++ {
				if FitsInBedAtSegment(bed, all, &shifted, seg) {
					return &Slot{BedID: bed.BedID, StartSegment: seg, Date: start, EndDate: end}
				}
			}
		}
	}
	return nil
}
