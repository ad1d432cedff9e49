// Package catalog holds the static reference data of the coworking space:
// service plans, bookable time slots and the seat grid.  Nothing in this
// package is mutated at runtime.
package catalog

import (
	"math"
	"strconv"
	"strings"
)

// Plan is one entry of the service plan catalog.  Price keeps the text form
// shown to visitors; use ParsePrice to obtain the numeric VND amount.
type Plan struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	IconName    string   `json:"iconName"`
	Popular     bool     `json:"popular"`
}

// Amount returns the numeric price of the plan.
func (p Plan) Amount() int64 { return ParsePrice(p.Price) }

var plans = []Plan{
	{
		Name:        "HOT DESK",
		Price:       "110,000",
		Period:      "/ day",
		Description: "Flexible workspace solution",
		Features: []string{
			"Daily access to shared workspace",
			"No fixed seating arrangement",
			"High-speed WiFi included",
			"Complimentary coffee & tea",
			"Business hours support",
		},
		IconName: "Briefcase",
	},
	{
		Name:        "FIXED DESK",
		Price:       "2.3m",
		Period:      "/ month",
		Description: "Your dedicated workspace",
		Features: []string{
			"Reserved desk space",
			"24/7 access to workspace",
			"Personal storage locker",
			"All basic amenities included",
			"Priority booking for meeting rooms",
		},
		IconName: "Monitor",
		Popular:  true,
	},
	{
		Name:        "PRIVATE OFFICE",
		Price:       "7.3m",
		Period:      "/ month",
		Description: "Complete privacy & control",
		Features: []string{
			"Fully enclosed private office",
			"Customizable workspace layout",
			"Dedicated meeting room access",
			"24/7 premium support",
			"VIP concierge services",
		},
		IconName: "Building2",
	},
	{
		Name:        "MEETING ROOM",
		Price:       "150,000",
		Period:      "/ hours",
		Description: "Flexible workspace solution",
		Features: []string{
			"Equipped with a projector, whiteboard, and screen.",
			"Premium amenities",
			"High-speed WiFi included",
			"Quiet space, high concentration",
			"Available for 2-15 people",
		},
		IconName: "Home",
	},
	{
		Name:        "NETWORKING SPACE",
		Price:       "250,000",
		Period:      "/ hour",
		Description: "Connect & collaborate",
		Features: []string{
			"Large networking event space",
			"Professional AV equipment",
			"Catering services available",
			"Event planning support",
			"Flexible booking options",
		},
		IconName: "Network",
	},
	{
		Name:        "VIRTUAL OFFICE",
		Price:       "1m",
		Period:      "/ month",
		Description: "Professional business address",
		Features: []string{
			"Premium business address",
			"Mail handling & forwarding",
			"Professional receptionist service",
			"Meeting room access on demand",
			"Call forwarding services",
		},
		IconName: "UserCheck",
	},
}

// Plans returns a copy of the plan catalog in display order.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// FindPlan looks a plan up by its exact name.
func FindPlan(name string) (Plan, bool) {
	for _, p := range plans {
		if p.Name == name {
			return p, true
		}
	}
	return Plan{}, false
}

// ParsePrice converts catalog price text into VND.  Two notations are in use:
// thousands-separated integers ("110,000") and an abbreviated million form
// ("2.3m").  Text that cannot be parsed yields 0.
func ParsePrice(text string) int64 {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	mult := 1.0
	if strings.HasSuffix(strings.ToLower(s), "m") {
		mult = 1_000_000
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return int64(math.Round(v * mult))
}
