package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/coworking-space-booking/internal/catalog"
)

var fixedNow = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

func newTestWizard(t *testing.T) *Wizard {
	t.Helper()
	return NewWizard(catalog.DefaultSeatCatalog(), WithClock(func() time.Time { return fixedNow }))
}

func TestWizard_InitialDraft(t *testing.T) {
	w := newTestWizard(t)
	d := w.Draft()
	assert.False(t, d.Active)
	assert.Equal(t, StepPlan, d.Step)
	assert.Equal(t, "", d.PlanName)
	assert.Equal(t, "", d.TimeSlot)
	assert.Empty(t, d.Seats)
	assert.Equal(t, time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC), d.Date)
}

func TestWizard_UnitPriceForEveryPlan(t *testing.T) {
	for _, p := range catalog.Plans() {
		w := newTestWizard(t)
		w.SelectPlan(p.Name)
		assert.Equal(t, catalog.ParsePrice(p.Price), w.UnitPrice(), p.Name)
	}
	w := newTestWizard(t)
	w.SelectPlan("HOT DESK")
	assert.Equal(t, int64(110000), w.UnitPrice())
	w.SelectPlan("FIXED DESK")
	assert.Equal(t, int64(2300000), w.UnitPrice())
}

func TestWizard_UnknownPlanPricesAtZero(t *testing.T) {
	w := newTestWizard(t)
	assert.Equal(t, int64(0), w.UnitPrice())
	d := w.SelectPlan("DAY PASS")
	assert.Equal(t, "DAY PASS", d.PlanName)
	w.ToggleSeat("C9")
	assert.Equal(t, int64(0), w.UnitPrice())
	assert.Equal(t, int64(0), w.Total())
}

func TestWizard_CanAdvance(t *testing.T) {
	w := newTestWizard(t)
	assert.False(t, w.CanAdvance())
	w.SelectPlan("HOT DESK")
	assert.True(t, w.CanAdvance())

	w.AdvanceStep()
	require.Equal(t, StepSchedule, w.Step())
	assert.False(t, w.CanAdvance())
	w.SelectDate(fixedNow.AddDate(0, 0, 2))
	assert.False(t, w.CanAdvance())
	w.SelectTimeSlot("9:00 AM")
	assert.True(t, w.CanAdvance())

	w.AdvanceStep()
	require.Equal(t, StepSeats, w.Step())
	assert.False(t, w.CanAdvance())
	w.ToggleSeat("B1")
	assert.True(t, w.CanAdvance())
	w.ToggleSeat("B1")
	assert.False(t, w.CanAdvance())
}

func TestWizard_AdvanceIsPermissiveAndClamped(t *testing.T) {
	w := newTestWizard(t)
	w.AdvanceStep()
	assert.Equal(t, StepSchedule, w.Step())
	assert.True(t, w.Active())
	w.AdvanceStep()
	w.AdvanceStep()
	w.AdvanceStep()
	assert.Equal(t, StepSeats, w.Step())
}

func TestWizard_RetreatStep(t *testing.T) {
	w := newTestWizard(t)
	w.SelectPlan("HOT DESK")
	w.AdvanceStep()
	w.AdvanceStep()

	d, exit := w.RetreatStep()
	assert.False(t, exit)
	assert.Equal(t, StepSchedule, d.Step)
	assert.Equal(t, "HOT DESK", d.PlanName)

	d, exit = w.RetreatStep()
	assert.False(t, exit)
	assert.Equal(t, StepPlan, d.Step)

	d, exit = w.RetreatStep()
	assert.True(t, exit)
	assert.False(t, d.Active)
	assert.Equal(t, "", d.PlanName)
	assert.Equal(t, StepPlan, d.Step)
}

func TestWizard_ToggleSeatRoundTrip(t *testing.T) {
	w := newTestWizard(t)
	w.ToggleSeat("A1")
	w.ToggleSeat("D4")
	before := w.Draft().Seats

	for _, id := range []string{"C9", "H10", "E5"} {
		w.ToggleSeat(id)
		after := w.ToggleSeat(id)
		assert.ElementsMatch(t, before, after.Seats, id)
	}
}

func TestWizard_ToggleOccupiedSeatIsNoop(t *testing.T) {
	sc := catalog.DefaultSeatCatalog()
	for _, id := range sc.OccupiedIDs() {
		w := newTestWizard(t)
		w.ToggleSeat("C9")
		d := w.ToggleSeat(id)
		assert.Equal(t, []string{"C9"}, d.Seats, id)
	}
}

func TestWizard_SnapshotsAreIndependent(t *testing.T) {
	w := newTestWizard(t)
	d := w.ToggleSeat("C9")
	d.Seats[0] = "Z1"
	d.PlanName = "mutated"
	assert.Equal(t, []string{"C9"}, w.Draft().Seats)
	assert.Equal(t, "", w.Draft().PlanName)
}

func TestWizard_SelectDateDropsTimeOfDay(t *testing.T) {
	w := newTestWizard(t)
	d := w.SelectDate(time.Date(2026, time.October, 18, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC), d.Date)
}

func TestWizard_Reset(t *testing.T) {
	w := newTestWizard(t)
	w.SelectPlan("PRIVATE OFFICE")
	w.AdvanceStep()
	w.SelectTimeSlot("1:00 PM")
	w.SelectDate(fixedNow.AddDate(0, 0, 3))
	w.AdvanceStep()
	w.ToggleSeat("F1")

	d := w.Reset()
	assert.Equal(t, StepPlan, d.Step)
	assert.Empty(t, d.Seats)
	assert.Equal(t, "", d.PlanName)
	assert.Equal(t, "", d.TimeSlot)
	assert.Equal(t, catalog.StartOfDay(fixedNow), d.Date)
	assert.False(t, w.Active())
}

func TestWizard_HotDeskScenario(t *testing.T) {
	w := newTestWizard(t)
	w.SelectPlan("HOT DESK")
	require.True(t, w.CanAdvance())
	w.AdvanceStep()
	require.Equal(t, StepSchedule, w.Step())
	w.SelectTimeSlot("10:00 AM")
	require.True(t, w.CanAdvance())
	w.AdvanceStep()
	require.Equal(t, StepSeats, w.Step())
	w.ToggleSeat("C9")
	assert.Equal(t, int64(110000), w.Total())

	c := w.Confirm()
	assert.Equal(t, "HOT DESK", c.Plan)
	assert.Equal(t, []string{"C9"}, c.Seats)
	assert.Equal(t, "10:00 AM", c.TimeSlot)
	assert.Equal(t, int64(110000), c.Total)
	assert.Equal(t, int64(110000), c.UnitPrice)

	// confirming does not clear the draft
	assert.Equal(t, []string{"C9"}, w.Draft().Seats)
	assert.Equal(t, StepSeats, w.Step())
}

func TestWizard_OccupiedSeatScenario(t *testing.T) {
	w := newTestWizard(t)
	d := w.ToggleSeat("A3")
	assert.Empty(t, d.Seats)
	assert.False(t, w.Inventory().IsSelectable("A3"))
}

func TestWizard_FixedDeskTwoSeats(t *testing.T) {
	w := newTestWizard(t)
	w.SelectPlan("FIXED DESK")
	w.ToggleSeat("C9")
	w.ToggleSeat("D4")
	assert.Equal(t, int64(4600000), w.Total())
}

func TestRestore_SanitisesDraft(t *testing.T) {
	saved := Draft{
		PlanName: "HOT DESK",
		TimeSlot: "8:00 AM",
		Seats:    []string{"C9", "A3", "C9", "D4"},
		Step:     7,
		Active:   true,
	}
	w := Restore(catalog.DefaultSeatCatalog(), saved, WithClock(func() time.Time { return fixedNow }))
	d := w.Draft()
	assert.Equal(t, StepSeats, d.Step)
	assert.Equal(t, []string{"C9", "D4"}, d.Seats)
	assert.Equal(t, catalog.StartOfDay(fixedNow), d.Date)
	assert.True(t, d.Active)
	assert.Equal(t, []string{"C9", "A3", "C9", "D4"}, saved.Seats)
}

func TestWithPlans(t *testing.T) {
	lookup := func(name string) (catalog.Plan, bool) {
		return catalog.Plan{Name: name, Price: "1,500"}, true
	}
	w := NewWizard(catalog.DefaultSeatCatalog(), WithPlans(lookup))
	w.SelectPlan("anything")
	w.ToggleSeat("A1")
	w.ToggleSeat("A2")
	assert.Equal(t, int64(3000), w.Total())
}
