package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func wk(n int) *int { return &n }

func fullDurations() Durations {
	return Durations{PresowWeeks: wk(4), GrowWeeks: wk(6), HarvestWeeks: wk(3)}
}

func TestDeriveFromPresowAnchor(t *testing.T) {
	s := DeriveSchedule(MethodPresow, fullDurations(), AnchorPresow, "2024-03-01")

	assert.Equal(t, "2024-03-01", *s.PresowDate)
	assert.Equal(t, "2024-03-29", *s.GroundDate)
	assert.Equal(t, "2024-05-10", *s.HarvestStart)
	assert.Equal(t, "2024-05-31", *s.HarvestEnd)
}

func TestDeriveDirectFromGroundAnchor(t *testing.T) {
	s := DeriveSchedule(MethodDirect, fullDurations(), AnchorGround, "2024-03-29")

	assert.Nil(t, s.PresowDate)
	assert.Equal(t, "2024-03-29", *s.GroundDate)
	assert.Equal(t, "2024-05-10", *s.HarvestStart)
	assert.Equal(t, "2024-05-31", *s.HarvestEnd)
}

func TestDeriveBackwardFromHarvestEnd(t *testing.T) {
	s := DeriveSchedule(MethodPresow, fullDurations(), AnchorHarvestEnd, "2024-05-31")

	assert.Equal(t, "2024-05-31", *s.HarvestEnd)
	assert.Equal(t, "2024-05-10", *s.HarvestStart)
	assert.Equal(t, "2024-03-29", *s.GroundDate)
	assert.Equal(t, "2024-03-01", *s.PresowDate)
}

func TestDeriveBackwardFromHarvestStart(t *testing.T) {
	s := DeriveSchedule(MethodPresow, fullDurations(), AnchorHarvestStart, "2024-05-10")

	assert.Equal(t, "2024-05-10", *s.HarvestStart)
	assert.Equal(t, "2024-05-31", *s.HarvestEnd)
	assert.Equal(t, "2024-03-29", *s.GroundDate)
	assert.Equal(t, "2024-03-01", *s.PresowDate)
}

func TestDeriveIsIdempotent(t *testing.T) {
	a := DeriveSchedule(MethodPresow, fullDurations(), AnchorPresow, "2024-03-01")
	b := DeriveSchedule(MethodPresow, fullDurations(), AnchorPresow, "2024-03-01")
	assert.Equal(t, a, b)
}

func TestReanchoringOnDerivedGroundIsStable(t *testing.T) {
	d := fullDurations()
	first := DeriveSchedule(MethodPresow, d, AnchorPresow, "2024-03-01")
	second := DeriveSchedule(MethodPresow, d, AnchorGround, *first.GroundDate)

	assert.Equal(t, *first.PresowDate, *second.PresowDate)
	assert.Equal(t, *first.HarvestStart, *second.HarvestStart)
	assert.Equal(t, *first.HarvestEnd, *second.HarvestEnd)
}

func TestDirectMethodNeverHasPresowDate(t *testing.T) {
	for _, anchor := range []Anchor{AnchorPresow, AnchorGround, AnchorHarvestStart, AnchorHarvestEnd} {
		s := DeriveSchedule(MethodDirect, fullDurations(), anchor, "2024-06-01")
		assert.Nil(t, s.PresowDate, "anchor %s", anchor)
	}
}

func TestUnknownDurationsStayNil(t *testing.T) {
	// No grow duration: harvest dates cannot be reached from a ground anchor.
	s := DeriveSchedule(MethodPresow, Durations{PresowWeeks: wk(2)}, AnchorGround, "2024-04-15")
	assert.Equal(t, "2024-04-15", *s.GroundDate)
	assert.Equal(t, "2024-04-01", *s.PresowDate)
	assert.Nil(t, s.HarvestStart)
	assert.Nil(t, s.HarvestEnd)

	// Harvest-end anchor without a harvest duration pins nothing else.
	s = DeriveSchedule(MethodPresow, Durations{GrowWeeks: wk(6)}, AnchorHarvestEnd, "2024-09-01")
	assert.Equal(t, "2024-09-01", *s.HarvestEnd)
	assert.Nil(t, s.HarvestStart)
	assert.Nil(t, s.GroundDate)
	assert.Nil(t, s.PresowDate)
}

func TestMissingPresowDurationCountsAsZero(t *testing.T) {
	s := DeriveSchedule(MethodPresow, Durations{GrowWeeks: wk(1)}, AnchorPresow, "2024-05-01")
	assert.Equal(t, "2024-05-01", *s.PresowDate)
	assert.Equal(t, "2024-05-01", *s.GroundDate)
	assert.Equal(t, "2024-05-08", *s.HarvestStart)
}

func TestBadAnchorDateYieldsEmptySchedule(t *testing.T) {
	s := DeriveSchedule(MethodPresow, fullDurations(), AnchorGround, "not-a-date")
	assert.Equal(t, Schedule{}, s)
}
