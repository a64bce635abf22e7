package universe

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"toruslife/rules"
)

// Cell is the binary state of a single grid position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Coord addresses a single cell by grid position.
type Coord struct {
	Row    int
	Column int
}

const (
	// DefWidth and DefHeight are the dimensions New constructs with.
	DefWidth  = 64
	DefHeight = 64

	glyphAlive = '◼'
	glyphDead  = '◻'
)

// Universe owns a toroidal grid of cells and advances it one generation at a
// time. The grid has no edges: row 0's upper neighbours live on the last row
// and column 0's left neighbours on the last column. All state lives in a
// single row-major buffer of width*height cells.
//
// A Universe is not safe for concurrent use; callers must serialize access.
type Universe struct {
	width  int
	height int
	cells  []Cell

	pool    *BufferPool
	history []string // recent grid fingerprints for stagnation detection
}

// New creates a Universe of the default size with the demonstrative seed
// pattern: the cell at linear index i is Alive when i is a multiple of 2
// or 7. Construction is fully deterministic.
func New() *Universe {
	u := &Universe{
		width:  DefWidth,
		height: DefHeight,
		pool:   NewBufferPool(),
	}
	u.cells = make([]Cell, u.width*u.height)
	for i := range u.cells {
		if i%2 == 0 || i%7 == 0 {
			u.cells[i] = Alive
		}
	}
	return u
}

// NewSized creates an all-Dead Universe with the given dimensions.
// Both dimensions must be at least 1 for neighbour wraparound to be defined.
func NewSized(width, height int) (*Universe, error) {
	if width < 1 {
		return nil, errors.Errorf("[NewSized] width must be >= 1, got: %d", width)
	}
	if height < 1 {
		return nil, errors.Errorf("[NewSized] height must be >= 1, got: %d", height)
	}
	return &Universe{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		pool:   NewBufferPool(),
	}, nil
}

// Width returns the number of grid columns
func (u *Universe) Width() int {
	return u.width
}

// Height returns the number of grid rows
func (u *Universe) Height() int {
	return u.height
}

// SetWidth resizes the grid to the new width and clears every cell to Dead.
// Prior cell state is never preserved across a resize.
func (u *Universe) SetWidth(width int) error {
	if width < 1 {
		return errors.Errorf("[SetWidth] width must be >= 1, got: %d", width)
	}
	u.width = width
	u.resetCells()
	Logger().Debug("grid resized", zap.Int("width", u.width), zap.Int("height", u.height))
	return nil
}

// SetHeight resizes the grid to the new height and clears every cell to Dead.
// Prior cell state is never preserved across a resize.
func (u *Universe) SetHeight(height int) error {
	if height < 1 {
		return errors.Errorf("[SetHeight] height must be >= 1, got: %d", height)
	}
	u.height = height
	u.resetCells()
	Logger().Debug("grid resized", zap.Int("width", u.width), zap.Int("height", u.height))
	return nil
}

// resetCells swaps in a fresh all-Dead buffer sized to the current dimensions
func (u *Universe) resetCells() {
	old := u.cells
	u.cells = u.pool.Get(u.width * u.height)
	u.pool.Put(old)
	u.history = nil
}

// Index maps a grid coordinate to its row-major linear offset,
// failing fast on out-of-range input.
func (u *Universe) Index(row, column int) (int, error) {
	if row < 0 || row >= u.height {
		return 0, errors.Errorf("[Index] row %d out of range [0, %d)", row, u.height)
	}
	if column < 0 || column >= u.width {
		return 0, errors.Errorf("[Index] column %d out of range [0, %d)", column, u.width)
	}
	return row*u.width + column, nil
}

// index is the unchecked fast path used once coordinates are known valid
func (u *Universe) index(row, column int) int {
	return row*u.width + column
}

// LiveNeighbourCount returns how many of the 8 cells surrounding
// (row, column) are Alive, wrapping toroidally at every edge. Offsets are
// drawn from {height-1, 0, 1} x {width-1, 0, 1} and reduced modulo the grid
// dimensions; a pair that reduces to (0, 0) is the cell itself and is
// skipped, so a 1x1 grid always counts zero. The result is in [0, 8].
func (u *Universe) LiveNeighbourCount(row, column int) int {
	count := 0
	for _, deltaRow := range [3]int{u.height - 1, 0, 1} {
		for _, deltaCol := range [3]int{u.width - 1, 0, 1} {
			if deltaRow%u.height == 0 && deltaCol%u.width == 0 {
				continue
			}
			neighbourRow := (row + deltaRow) % u.height
			neighbourCol := (column + deltaCol) % u.width
			count += int(u.cells[u.index(neighbourRow, neighbourCol)])
		}
	}
	return count
}

// Tick advances the universe one generation. The next generation is computed
// into a scratch buffer so every cell's new state is derived from the fully
// intact old generation, then the buffers are swapped in one step.
func (u *Universe) Tick() {
	next := u.pool.Get(len(u.cells))
	u.tickRows(0, u.height, next)
	u.swapCells(next)
}

// TickParallel advances one generation like Tick, sharding rows across one
// worker per CPU. The result is identical to Tick for the same input state.
func (u *Universe) TickParallel() {
	next := u.pool.Get(len(u.cells))

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (u.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, u.height)
		)
		if startRow >= u.height {
			break
		}

		eg.Go(func() error {
			u.tickRows(startRow, endRow, next)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		Logger().Error("parallel tick failed", zap.Error(err))
	}
	u.swapCells(next)
}

// tickRows computes the next state of rows [startRow, endRow) into next,
// reading only the current generation
func (u *Universe) tickRows(startRow, endRow int, next []Cell) {
	for row := startRow; row < endRow; row++ {
		for col := 0; col < u.width; col++ {
			var (
				idx        = u.index(row, col)
				alive      = u.cells[idx] == Alive
				neighbours = u.LiveNeighbourCount(row, col)
			)
			if rules.ApplyConwayRules(neighbours, alive) {
				next[idx] = Alive
			} else {
				next[idx] = Dead
			}
		}
	}
}

// swapCells installs the computed generation and recycles the old buffer
func (u *Universe) swapCells(next []Cell) {
	old := u.cells
	u.cells = next
	u.pool.Put(old)
}

// SetCells marks every named coordinate Alive, leaving all other cells
// untouched. Every coordinate is validated before any cell is written, so an
// out-of-range pair fails the whole call without partial mutation.
func (u *Universe) SetCells(coords []Coord) error {
	for _, c := range coords {
		if _, err := u.Index(c.Row, c.Column); err != nil {
			return errors.Wrap(err, "[SetCells] coordinate out of range")
		}
	}
	for _, c := range coords {
		u.cells[u.index(c.Row, c.Column)] = Alive
	}
	return nil
}

// Cells exposes the full cell buffer in row-major order for pixel-level
// consumers. The slice aliases live state: callers must treat it as
// read-only and must not retain it across a Tick or resize.
func (u *Universe) Cells() []Cell {
	return u.cells
}

// String renders the grid as text, one line per row in top-to-bottom order,
// one glyph per cell.
func (u *Universe) String() string {
	var b strings.Builder
	b.Grow(len(u.cells)*3 + u.height) // both glyphs are 3 bytes in UTF-8
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			if u.cells[u.index(row, col)] == Alive {
				b.WriteRune(glyphAlive)
			} else {
				b.WriteRune(glyphDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render returns the text projection of the current generation
func (u *Universe) Render() string {
	return u.String()
}
