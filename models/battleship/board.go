package battleship

import (
	"context"
	"errors"
	"sync"

	cerr "github.com/saeidalz13/battleship-http/internal/error"
)

// Board is one side's 10x10 grid. The server's own board holds ship
// placements; an opponent board only records observed hits and misses.
// Every mutation is written through to the store before it returns.
type Board struct {
	name  string
	grid  Grid
	store Store
	mu    sync.Mutex
}

// A nil store disables persistence.
func NewBoard(name string, grid Grid, store Store) *Board {
	return &Board{
		name:  name,
		grid:  grid,
		store: store,
	}
}

// LoadBoard reads the named board from store, creating and saving an
// empty one if it has never been saved.
func LoadBoard(ctx context.Context, store Store, name string) (*Board, error) {
	grid, err := store.Load(ctx, name)
	if err == nil {
		return NewBoard(name, grid, store), nil
	}
	if !errors.Is(err, cerr.ErrBoardNotFound) {
		return nil, err
	}
	return ResetBoard(ctx, store, name)
}

// ResetBoard overwrites the named board with an empty grid.
func ResetBoard(ctx context.Context, store Store, name string) (*Board, error) {
	grid := NewGrid()
	if err := store.Save(ctx, name, grid); err != nil {
		return nil, cerr.ErrSaveBoard(name, err)
	}
	return NewBoard(name, grid, store), nil
}

func (b *Board) Name() string {
	return b.name
}

func (b *Board) Snapshot() Grid {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid
}

// Refresh replaces the in-memory grid with the stored one. Used for
// boards another process writes to.
func (b *Board) Refresh(ctx context.Context) error {
	if b.store == nil {
		return nil
	}

	grid, err := b.store.Load(ctx, b.name)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.grid = grid
	b.mu.Unlock()
	return nil
}

func (b *Board) IsAlreadyTargeted(x, y int) (bool, error) {
	if !NewCoordinates(x, y).InBounds() {
		return false, cerr.ErrXorYOutOfGridBound(x, y)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.isAlreadyTargeted(x, y), nil
}

// ResolveShot fires at (x, y). Bounds and duplicate checks run under the
// same lock as the mutation, so two shots can never resolve the same cell.
// Rejections leave the board untouched.
func (b *Board) ResolveShot(ctx context.Context, x, y int) (Outcome, error) {
	if !NewCoordinates(x, y).InBounds() {
		return OutcomeMiss, cerr.ErrXorYOutOfGridBound(x, y)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.isAlreadyTargeted(x, y) {
		return OutcomeMiss, cerr.ErrPositionAlreadyTargeted(x, y)
	}

	previous := b.grid[x][y]
	if previous == PositionStateEmpty {
		b.grid[x][y] = PositionStateMiss
		if err := b.persist(ctx, x, y, previous); err != nil {
			return OutcomeMiss, err
		}
		return OutcomeMiss, nil
	}

	// Passed this line means that the position holds a ship code
	b.grid[x][y] = PositionStateHit
	if err := b.persist(ctx, x, y, previous); err != nil {
		return OutcomeMiss, err
	}

	if b.isSunk(previous, x, y) {
		return OutcomeSunk(previous), nil
	}
	return OutcomeHit, nil
}

// ApplyObservedOutcome records what the remote board reported for (x, y).
// Ship identity is not tracked on an observed board.
func (b *Board) ApplyObservedOutcome(ctx context.Context, outcome Outcome, x, y int) error {
	if !NewCoordinates(x, y).InBounds() {
		return cerr.ErrXorYOutOfGridBound(x, y)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	previous := b.grid[x][y]
	if outcome.Hit {
		b.grid[x][y] = PositionStateHit
	} else {
		b.grid[x][y] = PositionStateMiss
	}
	return b.persist(ctx, x, y, previous)
}

// Remaining counts the un-hit cells of every ship still on the board.
func (b *Board) Remaining() map[PositionState]int {
	b.mu.Lock()
	defer b.mu.Unlock()

	remaining := make(map[PositionState]int, len(Fleet))
	for x := range b.grid {
		for y := range b.grid[x] {
			if IsShip(b.grid[x][y]) {
				remaining[b.grid[x][y]]++
			}
		}
	}
	return remaining
}

func (b *Board) IsFleetSunk() bool {
	return len(b.Remaining()) == 0
}

func (b *Board) isAlreadyTargeted(x, y int) bool {
	state := b.grid[x][y]
	return state == PositionStateMiss || state == PositionStateHit
}

// Ships are straight runs of a known length, so a window of that
// radius around any of its cells covers the whole ship on either axis.
// Windows are clamped to the grid.
func (b *Board) isSunk(code PositionState, x, y int) bool {
	radius := ShipLength(code)

	for i := max(ValidLowerBound, x-radius); i <= min(ValidUpperBound, x+radius); i++ {
		if b.grid[i][y] == code {
			return false
		}
	}

	for j := max(ValidLowerBound, y-radius); j <= min(ValidUpperBound, y+radius); j++ {
		if b.grid[x][j] == code {
			return false
		}
	}
	return true
}

// Must be called with mu held. On failure the cell is rolled back so
// the in-memory grid never runs ahead of what was last saved.
func (b *Board) persist(ctx context.Context, x, y int, previous PositionState) error {
	if b.store == nil {
		return nil
	}
	if err := b.store.Save(ctx, b.name, b.grid); err != nil {
		b.grid[x][y] = previous
		return cerr.ErrSaveBoard(b.name, err)
	}
	return nil
}
