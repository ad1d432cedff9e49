package booking

import "github.com/iliyamo/coworking-space-booking/internal/catalog"

// SeatStatus is the display classification of a seat.
type SeatStatus string

const (
	SeatSelected  SeatStatus = "selected"
	SeatOccupied  SeatStatus = "occupied"
	SeatPremium   SeatStatus = "premium"
	SeatAvailable SeatStatus = "available"
)

// Inventory classifies catalog seats against a selection.  It holds no state
// of its own beyond the selection it was built from.
type Inventory struct {
	catalog  *catalog.SeatCatalog
	selected map[string]struct{}
}

// NewInventory builds an inventory view over sc for the given selection.
func NewInventory(sc *catalog.SeatCatalog, selected []string) Inventory {
	set := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		set[id] = struct{}{}
	}
	return Inventory{catalog: sc, selected: set}
}

// StatusOf classifies id with precedence selected > occupied > premium > available.
func (inv Inventory) StatusOf(id string) SeatStatus {
	if _, ok := inv.selected[id]; ok {
		return SeatSelected
	}
	if inv.catalog.IsOccupied(id) {
		return SeatOccupied
	}
	if inv.catalog.IsPremium(id) {
		return SeatPremium
	}
	return SeatAvailable
}

// IsSelectable reports whether id may be clicked.
func (inv Inventory) IsSelectable(id string) bool {
	return inv.StatusOf(id) != SeatOccupied
}

// AllSeats lists every seat id row-major: rows ascending, then columns.
func (inv Inventory) AllSeats() []string { return inv.catalog.IDs() }

// SeatCell is one rendered seat.
type SeatCell struct {
	ID         string     `json:"id"`
	Column     int        `json:"column"`
	Status     SeatStatus `json:"status"`
	Selectable bool       `json:"selectable"`
}

// SeatRow is one rendered row of the floor plan.
type SeatRow struct {
	Row   string     `json:"row"`
	Seats []SeatCell `json:"seats"`
}

// Grid returns the floor plan grouped by row, in AllSeats order.
func (inv Inventory) Grid() []SeatRow {
	rows := inv.catalog.Rows()
	out := make([]SeatRow, 0, len(rows))
	for _, r := range rows {
		sr := SeatRow{Row: r, Seats: make([]SeatCell, 0, inv.catalog.SeatsPerRow())}
		for c := 1; c <= inv.catalog.SeatsPerRow(); c++ {
			id := catalog.SeatID(r, c)
			st := inv.StatusOf(id)
			sr.Seats = append(sr.Seats, SeatCell{ID: id, Column: c, Status: st, Selectable: st != SeatOccupied})
		}
		out = append(out, sr)
	}
	return out
}

// Counts tallies seats per status.
func (inv Inventory) Counts() map[SeatStatus]int {
	out := map[SeatStatus]int{SeatSelected: 0, SeatOccupied: 0, SeatPremium: 0, SeatAvailable: 0}
	for _, id := range inv.AllSeats() {
		out[inv.StatusOf(id)]++
	}
	return out
}
