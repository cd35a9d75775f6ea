package battleship

import (
	"context"
	"errors"

	cerr "github.com/saeidalz13/battleship-http/internal/error"
)

var errDiskFull = errors.New("disk full")

type memoryStore struct {
	grids   map[string]Grid
	saves   int
	failing bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{grids: make(map[string]Grid)}
}

func (m *memoryStore) Load(ctx context.Context, name string) (Grid, error) {
	grid, prs := m.grids[name]
	if !prs {
		return Grid{}, cerr.ErrBoardNotExist(name)
	}
	return grid, nil
}

func (m *memoryStore) Save(ctx context.Context, name string, grid Grid) error {
	if m.failing {
		return errDiskFull
	}
	m.saves++
	m.grids[name] = grid
	return nil
}

// place puts ship markers on cells of an empty grid.
func place(code PositionState, cells ...Coordinates) func(*Grid) {
	return func(g *Grid) {
		for _, c := range cells {
			g[c.X][c.Y] = code
		}
	}
}

func newTestBoard(store Store, placements ...func(*Grid)) *Board {
	grid := NewGrid()
	for _, p := range placements {
		p(&grid)
	}
	return NewBoard("own_board.txt", grid, store)
}
