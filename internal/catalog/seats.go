package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Default seat grid of the shared floor.  Seat ids are "{Row}{Column}" with
// one-based columns, e.g. "C9".
var (
	DefaultSeatRows     = []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	DefaultSeatsPerRow  = 10
	DefaultOccupiedSeat = []string{"A3", "A4", "B5", "B6", "C2", "D8", "E1", "F7", "G9", "H3"}
	DefaultPremiumSeat  = []string{"D4", "D5", "D6", "D7", "E4", "E5", "E6", "E7"}
)

// SeatCatalog is the static seat grid together with its occupied and premium
// partitions.  Any seat in neither partition is available.  A SeatCatalog is
// read-only once built and safe for concurrent use.
type SeatCatalog struct {
	rows     []string
	perRow   int
	occupied map[string]struct{}
	premium  map[string]struct{}
}

// NewSeatCatalog validates and builds a seat catalog.  Rows are ordered
// ascending regardless of input order.  Occupied and premium ids must belong
// to the grid and must not overlap.
func NewSeatCatalog(rows []string, perRow int, occupied, premium []string) (*SeatCatalog, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("seat catalog: no rows")
	}
	if perRow <= 0 {
		return nil, fmt.Errorf("seat catalog: seats per row must be positive, got %d", perRow)
	}
	sc := &SeatCatalog{
		perRow:   perRow,
		occupied: make(map[string]struct{}, len(occupied)),
		premium:  make(map[string]struct{}, len(premium)),
	}
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		r = strings.ToUpper(strings.TrimSpace(r))
		if r == "" {
			continue
		}
		if _, dup := seen[r]; dup {
			return nil, fmt.Errorf("seat catalog: duplicate row %q", r)
		}
		seen[r] = struct{}{}
		sc.rows = append(sc.rows, r)
	}
	if len(sc.rows) == 0 {
		return nil, fmt.Errorf("seat catalog: no rows")
	}
	sort.Slice(sc.rows, func(i, j int) bool {
		if len(sc.rows[i]) != len(sc.rows[j]) {
			return len(sc.rows[i]) < len(sc.rows[j])
		}
		return sc.rows[i] < sc.rows[j]
	})

	for _, id := range occupied {
		id = NormalizeSeatID(id)
		if !sc.Contains(id) {
			return nil, fmt.Errorf("seat catalog: occupied seat %q is outside the grid", id)
		}
		sc.occupied[id] = struct{}{}
	}
	for _, id := range premium {
		id = NormalizeSeatID(id)
		if !sc.Contains(id) {
			return nil, fmt.Errorf("seat catalog: premium seat %q is outside the grid", id)
		}
		if _, clash := sc.occupied[id]; clash {
			return nil, fmt.Errorf("seat catalog: seat %q is both occupied and premium", id)
		}
		sc.premium[id] = struct{}{}
	}
	return sc, nil
}

// DefaultSeatCatalog returns the built-in 8x10 floor plan.
func DefaultSeatCatalog() *SeatCatalog {
	sc, err := NewSeatCatalog(DefaultSeatRows, DefaultSeatsPerRow, DefaultOccupiedSeat, DefaultPremiumSeat)
	if err != nil {
		panic(err)
	}
	return sc
}

// Rows returns the row labels in ascending order.
func (sc *SeatCatalog) Rows() []string {
	out := make([]string, len(sc.rows))
	copy(out, sc.rows)
	return out
}

// SeatsPerRow returns the number of columns in every row.
func (sc *SeatCatalog) SeatsPerRow() int { return sc.perRow }

// SeatID builds the id of the seat at row and one-based column.
func SeatID(row string, column int) string { return row + strconv.Itoa(column) }

// IDs returns every seat id in row-major order: rows ascending, then columns
// ascending.  Each call returns a fresh slice.
func (sc *SeatCatalog) IDs() []string {
	out := make([]string, 0, len(sc.rows)*sc.perRow)
	for _, r := range sc.rows {
		for c := 1; c <= sc.perRow; c++ {
			out = append(out, SeatID(r, c))
		}
	}
	return out
}

// Contains reports whether id names a seat of the grid.
func (sc *SeatCatalog) Contains(id string) bool {
	row, col, ok := SplitSeatID(id)
	if !ok || col < 1 || col > sc.perRow {
		return false
	}
	for _, r := range sc.rows {
		if r == row {
			return true
		}
	}
	return false
}

// IsOccupied reports whether id is in the occupied partition.
func (sc *SeatCatalog) IsOccupied(id string) bool {
	_, ok := sc.occupied[id]
	return ok
}

// IsPremium reports whether id is in the premium partition.
func (sc *SeatCatalog) IsPremium(id string) bool {
	_, ok := sc.premium[id]
	return ok
}

// OccupiedIDs lists the occupied partition in row-major order.
func (sc *SeatCatalog) OccupiedIDs() []string { return sc.filter(sc.occupied) }

// PremiumIDs lists the premium partition in row-major order.
func (sc *SeatCatalog) PremiumIDs() []string { return sc.filter(sc.premium) }

func (sc *SeatCatalog) filter(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for _, id := range sc.IDs() {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// SplitSeatID separates a seat id into its row letters and column number.
func SplitSeatID(id string) (row string, column int, ok bool) {
	i := 0
	for i < len(id) && id[i] >= 'A' && id[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(id) {
		return "", 0, false
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil || id[i] == '0' || id[i] == '+' || id[i] == '-' {
		return "", 0, false
	}
	return id[:i], n, true
}

// NormalizeSeatID trims and upper-cases a user supplied seat id.
func NormalizeSeatID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// ParseSeatList splits a comma separated list of seat ids, dropping blanks.
func ParseSeatList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = NormalizeSeatID(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
