// Package booking implements the three step reservation wizard
// (plan, date and time, seats) and the seat status projection used to
// render the floor plan.  Everything here is synchronous and in-process;
// a Wizard is owned by exactly one booking session and is not safe for
// concurrent use.
package booking

import (
	"time"
)

// Step is a wizard stage.
type Step int

const (
	StepPlan     Step = 1
	StepSchedule Step = 2
	StepSeats    Step = 3
)

// Draft is the in-progress reservation.  Values returned by Wizard methods
// are snapshots: mutating them does not affect the wizard.
type Draft struct {
	PlanName string    `json:"planName"`
	Date     time.Time `json:"date"`
	TimeSlot string    `json:"timeSlot"`
	Seats    []string  `json:"seats"`
	Step     Step      `json:"step"`
	// Active is false before the first selection and after a reset.
	Active bool `json:"active"`
}

// HasSeat reports whether id is part of the selection.
func (d Draft) HasSeat(id string) bool {
	for _, s := range d.Seats {
		if s == id {
			return true
		}
	}
	return false
}

func (d Draft) clone() Draft {
	out := d
	out.Seats = make([]string, len(d.Seats))
	copy(out.Seats, d.Seats)
	return out
}

// Confirmation is the snapshot handed to the caller by Wizard.Confirm.
type Confirmation struct {
	Plan      string    `json:"plan"`
	Seats     []string  `json:"seats"`
	Date      time.Time `json:"date"`
	TimeSlot  string    `json:"timeSlot"`
	UnitPrice int64     `json:"unitPrice"`
	Total     int64     `json:"total"`
}
