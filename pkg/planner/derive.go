package planner

import (
	"time"

	"gardenplan/entities"
)

const dayLayout = "2006-01-02"

type Method string

const (
	MethodDirect Method = "direct"
	MethodPresow Method = "presow"
)

type Anchor string

const (
	AnchorPresow       Anchor = "presow"
	AnchorGround       Anchor = "ground"
	AnchorHarvestStart Anchor = "harvest_start"
	AnchorHarvestEnd   Anchor = "harvest_end"
)

// Durations carries a seed's week-granularity timings. A nil field means
// unknown, and every milestone that depends on it stays nil.
type Durations struct {
	PresowWeeks  *int
	GrowWeeks    *int
	HarvestWeeks *int
}

// Schedule is the derived milestone set. Dates are YYYY-MM-DD.
type Schedule struct {
	PresowDate   *string `json:"planned_presow_date"`
	GroundDate   *string `json:"planned_date"`
	HarvestStart *string `json:"planned_harvest_start"`
	HarvestEnd   *string `json:"planned_harvest_end"`
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func addWeeks(t time.Time, weeks int) time.Time { return t.AddDate(0, 0, weeks*7) }

func dayPtr(t time.Time) *string {
	s := t.Format(dayLayout)
	return &s
}

// DeriveSchedule pins one milestone to anchorDate and walks the chain
// outward: presow -> ground (presow weeks) -> harvest start (grow weeks)
// -> harvest end (harvest weeks). A missing presow duration counts as 0;
// missing grow/harvest durations leave the dependent dates nil. The
// function is pure and total: an unparseable anchor yields an empty
// schedule, never an error.
func DeriveSchedule(method Method, d Durations, anchor Anchor, anchorDate string) Schedule {
	at, ok := parseDay(anchorDate)
	if !ok {
		return Schedule{}
	}

	presowWeeks := 0
	if d.PresowWeeks != nil {
		presowWeeks = *d.PresowWeeks
	}

	var presow, ground, hStart, hEnd *time.Time

	switch anchor {
	case AnchorPresow:
		presow = &at
		g := addWeeks(at, presowWeeks)
		ground = &g
	case AnchorGround:
		ground = &at
	case AnchorHarvestStart:
		hStart = &at
		if d.GrowWeeks != nil {
			g := addWeeks(at, -*d.GrowWeeks)
			ground = &g
		}
	case AnchorHarvestEnd:
		hEnd = &at
		if d.HarvestWeeks != nil {
			hs := addWeeks(at, -*d.HarvestWeeks)
			hStart = &hs
			if d.GrowWeeks != nil {
				g := addWeeks(hs, -*d.GrowWeeks)
				ground = &g
			}
		}
	default:
		return Schedule{}
	}

	// Forward fill whatever the anchor did not pin yet.
	if ground != nil && hStart == nil && d.GrowWeeks != nil {
		hs := addWeeks(*ground, *d.GrowWeeks)
		hStart = &hs
	}
	if hStart != nil && hEnd == nil && d.HarvestWeeks != nil {
		he := addWeeks(*hStart, *d.HarvestWeeks)
		hEnd = &he
	}
	if ground != nil && presow == nil && method == MethodPresow {
		p := addWeeks(*ground, -presowWeeks)
		presow = &p
	}

	var out Schedule
	if presow != nil && method == MethodPresow {
		out.PresowDate = dayPtr(*presow)
	}
	if ground != nil {
		out.GroundDate = dayPtr(*ground)
	}
	if hStart != nil {
		out.HarvestStart = dayPtr(*hStart)
	}
	if hEnd != nil {
		out.HarvestEnd = dayPtr(*hEnd)
	}
	return out
}

// DurationsOf adapts a seed record's nullable week fields.
func DurationsOf(s *entities.Seed) Durations {
	if s == nil {
		return Durations{}
	}
	return Durations{
		PresowWeeks:  s.PresowDurationWeeks,
		GrowWeeks:    s.GrowDurationWeeks,
		HarvestWeeks: s.HarvestDurationWeeks,
	}
}
