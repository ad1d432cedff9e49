package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/coworking-space-booking/internal/catalog"
)

func TestInventory_StatusOf(t *testing.T) {
	inv := NewInventory(catalog.DefaultSeatCatalog(), []string{"D5", "C9"})
	assert.Equal(t, SeatSelected, inv.StatusOf("C9"))
	assert.Equal(t, SeatSelected, inv.StatusOf("D5"), "selection wins over premium")
	assert.Equal(t, SeatPremium, inv.StatusOf("D4"))
	assert.Equal(t, SeatOccupied, inv.StatusOf("B5"))
	assert.Equal(t, SeatAvailable, inv.StatusOf("A1"))
}

func TestInventory_SelectedAlwaysWins(t *testing.T) {
	sc := catalog.DefaultSeatCatalog()
	w := NewWizard(sc)
	for _, id := range sc.PremiumIDs() {
		w.ToggleSeat(id)
	}
	inv := w.Inventory()
	for _, id := range w.Draft().Seats {
		assert.Equal(t, SeatSelected, inv.StatusOf(id), id)
	}
}

func TestInventory_IsSelectable(t *testing.T) {
	inv := NewInventory(catalog.DefaultSeatCatalog(), nil)
	assert.False(t, inv.IsSelectable("A3"))
	assert.False(t, inv.IsSelectable("H3"))
	assert.True(t, inv.IsSelectable("E4"))
	assert.True(t, inv.IsSelectable("A1"))
}

func TestInventory_AllSeatsStableOrder(t *testing.T) {
	inv := NewInventory(catalog.DefaultSeatCatalog(), []string{"C9"})
	first := inv.AllSeats()
	require.Len(t, first, 80)
	assert.Equal(t, first, inv.AllSeats())
	assert.Equal(t, []string{"A1", "A2", "A3"}, first[:3])
}

func TestInventory_Grid(t *testing.T) {
	inv := NewInventory(catalog.DefaultSeatCatalog(), []string{"C9"})
	grid := inv.Grid()
	require.Len(t, grid, 8)
	assert.Equal(t, "C", grid[2].Row)
	require.Len(t, grid[2].Seats, 10)
	c9 := grid[2].Seats[8]
	assert.Equal(t, SeatCell{ID: "C9", Column: 9, Status: SeatSelected, Selectable: true}, c9)
	assert.False(t, grid[0].Seats[2].Selectable)

	var flat []string
	for _, r := range grid {
		for _, s := range r.Seats {
			flat = append(flat, s.ID)
		}
	}
	assert.Equal(t, inv.AllSeats(), flat)
}

func TestInventory_Counts(t *testing.T) {
	counts := NewInventory(catalog.DefaultSeatCatalog(), []string{"C9", "D4"}).Counts()
	assert.Equal(t, 2, counts[SeatSelected])
	assert.Equal(t, 10, counts[SeatOccupied])
	assert.Equal(t, 7, counts[SeatPremium])
	assert.Equal(t, 61, counts[SeatAvailable])
}
