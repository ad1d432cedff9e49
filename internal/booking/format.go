package booking

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatVND renders an amount with thousands separators, e.g. 4,600,000.
func FormatVND(amount int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", amount)
}

// FormatDate renders a day as "Wed, Oct 15".
func FormatDate(d time.Time) string {
	return d.Format("Mon, Jan 2")
}

// SeatsLabel joins seat ids in selection order.
func SeatsLabel(seats []string) string {
	return strings.Join(seats, ", ")
}

// StepTitle is the heading shown for a step.
func StepTitle(s Step) string {
	switch s {
	case StepPlan:
		return "Choose Your Plan"
	case StepSchedule:
		return "Select Date & Time"
	case StepSeats:
		return "Choose Your Seats"
	}
	return "Book Your Space"
}
