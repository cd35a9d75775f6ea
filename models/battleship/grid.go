package battleship

import (
	"bytes"
	"strings"

	cerr "github.com/saeidalz13/battleship-http/internal/error"
)

const (
	GridSize        int = 10
	ValidLowerBound int = 0
	ValidUpperBound int = GridSize - 1
)

type PositionState byte

const (
	PositionStateEmpty PositionState = '_'
	PositionStateMiss  PositionState = 'o'
	PositionStateHit   PositionState = 'x'
)

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) InBounds() bool {
	return c.X >= ValidLowerBound && c.X <= ValidUpperBound &&
		c.Y >= ValidLowerBound && c.Y <= ValidUpperBound
}

// Grid is indexed grid[x][y]; x is the column and y the row.
type Grid [GridSize][GridSize]PositionState

// Creates a new default grid
// All positions are PositionStateEmpty
func NewGrid() Grid {
	var grid Grid
	for x := range grid {
		for y := range grid[x] {
			grid[x][y] = PositionStateEmpty
		}
	}
	return grid
}

func (g Grid) At(c Coordinates) PositionState {
	return g[c.X][c.Y]
}

// MarshalText writes the grid as 10 lines of 10 glyphs. The first
// line is y = 9 and columns run x = 0..9 left to right.
func (g Grid) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(GridSize * (GridSize + 1))

	for y := ValidUpperBound; y >= ValidLowerBound; y-- {
		for x := 0; x < GridSize; x++ {
			buf.WriteByte(byte(g[x][y]))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func (g *Grid) UnmarshalText(text []byte) error {
	parsed, err := ParseGrid(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

func (g Grid) String() string {
	text, _ := g.MarshalText()
	return string(text)
}

func ParseGrid(text string) (Grid, error) {
	var grid Grid

	lines := strings.Split(strings.TrimRight(text, "\r\n"), "\n")
	if len(lines) != GridSize {
		return grid, cerr.ErrGridRows(len(lines))
	}

	for i, line := range lines {
		line = strings.TrimRight(line, "\r ")
		if len(line) != GridSize {
			return grid, cerr.ErrGridColumns(i, len(line))
		}

		y := ValidUpperBound - i
		for x := 0; x < GridSize; x++ {
			state := PositionState(line[x])
			if !isKnownState(state) {
				return grid, cerr.ErrUnknownGlyph(line[x], x, y)
			}
			grid[x][y] = state
		}
	}
	return grid, nil
}

func isKnownState(state PositionState) bool {
	switch state {
	case PositionStateEmpty, PositionStateMiss, PositionStateHit:
		return true
	}
	return IsShip(state)
}
