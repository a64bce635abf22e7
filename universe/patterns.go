package universe

import (
	"math/rand"

	"go.uber.org/zap"
)

// Randomize fills the grid with random living cells at the given density
func (u *Universe) Randomize(density float64) {
	for i := range u.cells {
		if rand.Float64() < density {
			u.cells[i] = Alive
		} else {
			u.cells[i] = Dead
		}
	}
	u.history = nil
}

// InjectRandomLife marks count random cells Alive to break stagnation
func (u *Universe) InjectRandomLife(count int) {
	for i := 0; i < count; i++ {
		u.cells[u.index(rand.Intn(u.height), rand.Intn(u.width))] = Alive
	}
	Logger().Debug("injected random life", zap.Int("count", count))
}

// AddGlider stamps a glider with its top-left corner at (row, column),
// wrapping around the grid edges
func (u *Universe) AddGlider(row, column int) {
	pattern := []Coord{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	u.stamp(row, column, pattern)
}

// AddBlinker stamps a horizontal three-cell blinker starting at (row, column),
// wrapping around the grid edges
func (u *Universe) AddBlinker(row, column int) {
	pattern := []Coord{{0, 0}, {0, 1}, {0, 2}}
	u.stamp(row, column, pattern)
}

// stamp marks each pattern offset Alive relative to (row, column), toroidally
func (u *Universe) stamp(row, column int, pattern []Coord) {
	for _, c := range pattern {
		wrappedRow := ((row+c.Row)%u.height + u.height) % u.height
		wrappedCol := ((column+c.Column)%u.width + u.width) % u.width
		u.cells[u.index(wrappedRow, wrappedCol)] = Alive
	}
}
