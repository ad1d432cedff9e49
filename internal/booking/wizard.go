package booking

import (
	"time"

	"github.com/iliyamo/coworking-space-booking/internal/catalog"
)

// PlanLookup resolves a plan name against a plan catalog.
type PlanLookup func(name string) (catalog.Plan, bool)

// Wizard drives a Draft through the plan, schedule and seat steps.  It never
// returns errors: unknown plans price at zero, toggling an occupied seat is a
// no-op, and step gating is exposed through CanAdvance rather than enforced.
type Wizard struct {
	seats *catalog.SeatCatalog
	plans PlanLookup
	now   func() time.Time
	draft Draft
}

// Option customises a Wizard.
type Option func(*Wizard)

// WithClock sets the clock used to default the draft date.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) { w.now = now }
}

// WithPlans replaces the plan catalog lookup.
func WithPlans(lookup PlanLookup) Option {
	return func(w *Wizard) { w.plans = lookup }
}

// NewWizard returns an inactive wizard with an empty draft.
func NewWizard(seats *catalog.SeatCatalog, opts ...Option) *Wizard {
	w := &Wizard{seats: seats, plans: catalog.FindPlan, now: time.Now}
	for _, o := range opts {
		o(w)
	}
	w.draft = w.initial()
	return w
}

// Restore rebuilds a wizard around a previously saved draft.  The step is
// clamped into range and seats that are occupied in the current catalog are
// dropped, so a restored draft always satisfies the wizard invariants.
func Restore(seats *catalog.SeatCatalog, d Draft, opts ...Option) *Wizard {
	w := NewWizard(seats, opts...)
	d = d.clone()
	d.Step = clampStep(d.Step)
	if d.Date.IsZero() {
		d.Date = catalog.StartOfDay(w.now())
	}
	kept := d.Seats[:0]
	for _, id := range d.Seats {
		if !seats.IsOccupied(id) && !containsSeat(kept, id) {
			kept = append(kept, id)
		}
	}
	d.Seats = kept
	w.draft = d
	return w
}

func (w *Wizard) initial() Draft {
	return Draft{
		Date:  catalog.StartOfDay(w.now()),
		Seats: []string{},
		Step:  StepPlan,
	}
}

// Draft returns a snapshot of the current draft.
func (w *Wizard) Draft() Draft { return w.draft.clone() }

// Active reports whether the wizard has left the inactive state.
func (w *Wizard) Active() bool { return w.draft.Active }

// Step returns the current step.
func (w *Wizard) Step() Step { return w.draft.Step }

// SelectPlan sets the plan name.  Unknown names are accepted as-is.
func (w *Wizard) SelectPlan(name string) Draft {
	w.draft.Active = true
	w.draft.PlanName = name
	return w.Draft()
}

// SelectDate sets the booking day; the time of day is discarded.
func (w *Wizard) SelectDate(date time.Time) Draft {
	w.draft.Active = true
	w.draft.Date = catalog.StartOfDay(date)
	return w.Draft()
}

// SelectTimeSlot sets the time slot label.
func (w *Wizard) SelectTimeSlot(slot string) Draft {
	w.draft.Active = true
	w.draft.TimeSlot = slot
	return w.Draft()
}

// ToggleSeat deselects id when it is selected and selects it otherwise.
// Occupied seats can never be selected; toggling one leaves the draft as is.
func (w *Wizard) ToggleSeat(id string) Draft {
	w.draft.Active = true
	for i, s := range w.draft.Seats {
		if s == id {
			w.draft.Seats = append(w.draft.Seats[:i], w.draft.Seats[i+1:]...)
			return w.Draft()
		}
	}
	if w.seats.IsOccupied(id) {
		return w.Draft()
	}
	w.draft.Seats = append(w.draft.Seats, id)
	return w.Draft()
}

// CanAdvance reports whether the required field of the current step is set.
func (w *Wizard) CanAdvance() bool {
	switch w.draft.Step {
	case StepPlan:
		return w.draft.PlanName != ""
	case StepSchedule:
		return w.draft.TimeSlot != ""
	case StepSeats:
		return len(w.draft.Seats) > 0
	}
	return false
}

// AdvanceStep moves to the next step, stopping at StepSeats.  It does not
// consult CanAdvance; callers gate on it first.
func (w *Wizard) AdvanceStep() Draft {
	w.draft.Active = true
	if w.draft.Step < StepSeats {
		w.draft.Step++
	}
	return w.Draft()
}

// RetreatStep moves back one step.  From StepPlan it resets the draft and
// reports exit=true; where to go next is up to the caller.
func (w *Wizard) RetreatStep() (d Draft, exit bool) {
	if w.draft.Step <= StepPlan {
		return w.Reset(), true
	}
	w.draft.Step--
	return w.Draft(), false
}

// UnitPrice is the parsed price of the selected plan, or 0 when no known
// plan is selected.
func (w *Wizard) UnitPrice() int64 {
	if w.draft.PlanName == "" {
		return 0
	}
	p, ok := w.plans(w.draft.PlanName)
	if !ok {
		return 0
	}
	return catalog.ParsePrice(p.Price)
}

// Total is UnitPrice multiplied by the number of selected seats.
func (w *Wizard) Total() int64 {
	return w.UnitPrice() * int64(len(w.draft.Seats))
}

// Confirm returns a snapshot of the finished booking.  The draft is left
// untouched so the caller can render the confirmation before calling Reset.
func (w *Wizard) Confirm() Confirmation {
	d := w.Draft()
	return Confirmation{
		Plan:      d.PlanName,
		Seats:     d.Seats,
		Date:      d.Date,
		TimeSlot:  d.TimeSlot,
		UnitPrice: w.UnitPrice(),
		Total:     w.Total(),
	}
}

// Reset restores the initial draft and returns the wizard to inactive.
func (w *Wizard) Reset() Draft {
	w.draft = w.initial()
	return w.Draft()
}

// Inventory projects the seat catalog against the current selection.
func (w *Wizard) Inventory() Inventory {
	return NewInventory(w.seats, w.draft.Seats)
}

func clampStep(s Step) Step {
	if s < StepPlan {
		return StepPlan
	}
	if s > StepSeats {
		return StepSeats
	}
	return s
}

func containsSeat(ids []string, id string) bool {
	for _, s := range ids {
		if s == id {
			return true
		}
	}
	return false
}
