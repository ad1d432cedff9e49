package config

import (
    "strings"

    "github.com/iliyamo/coworking-space-booking/internal/catalog"
)

// SeatConfig describes the floor plan.  Occupied and Premium replace the
// random reservation draw of earlier prototypes with an explicit list so
// seat availability is deterministic.
type SeatConfig struct {
    Rows     []string
    PerRow   int
    Occupied []string
    Premium  []string
}

// LoadSeatConfig reads SEAT_ROWS, SEATS_PER_ROW, SEATS_OCCUPIED and
// SEATS_PREMIUM.  Unset variables keep the built-in floor plan; setting a
// list variable to "-" empties it.
func LoadSeatConfig() SeatConfig {
    cfg := SeatConfig{
        Rows:     catalog.DefaultSeatRows,
        PerRow:   envInt("SEATS_PER_ROW", catalog.DefaultSeatsPerRow),
        Occupied: catalog.DefaultOccupiedSeat,
        Premium:  catalog.DefaultPremiumSeat,
    }
    if v := strings.TrimSpace(envStr("SEAT_ROWS", "")); v != "" {
        cfg.Rows = cfg.Rows[:0:0]
        for _, r := range v {
            if r != ',' && r != ' ' {
                cfg.Rows = append(cfg.Rows, strings.ToUpper(string(r)))
            }
        }
    }
    if v, ok := seatList("SEATS_OCCUPIED"); ok {
        cfg.Occupied = v
    }
    if v, ok := seatList("SEATS_PREMIUM"); ok {
        cfg.Premium = v
    }
    return cfg
}

// Catalog validates the configuration and builds the seat catalog.
func (s SeatConfig) Catalog() (*catalog.SeatCatalog, error) {
    return catalog.NewSeatCatalog(s.Rows, s.PerRow, s.Occupied, s.Premium)
}

func seatList(key string) ([]string, bool) {
    v := strings.TrimSpace(envStr(key, ""))
    if v == "" {
        return nil, false
    }
    if v == "-" {
        return []string{}, true
    }
    return catalog.ParseSeatList(v), true
}
