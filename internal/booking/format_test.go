package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0", FormatVND(0))
	assert.Equal(t, "110,000", FormatVND(110000))
	assert.Equal(t, "4,600,000", FormatVND(4600000))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Thu, Oct 15", FormatDate(time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)))
}

func TestSeatsLabelAndStepTitle(t *testing.T) {
	assert.Equal(t, "C9, D4", SeatsLabel([]string{"C9", "D4"}))
	assert.Equal(t, "", SeatsLabel(nil))
	assert.Equal(t, "Choose Your Plan", StepTitle(StepPlan))
	assert.Equal(t, "Select Date & Time", StepTitle(StepSchedule))
	assert.Equal(t, "Choose Your Seats", StepTitle(StepSeats))
	assert.Equal(t, "Book Your Space", StepTitle(0))
}
