package battleship

import "context"

// Store persists boards by name. Load returns an error wrapping
// cerr.ErrBoardNotFound when nothing has been saved under name.
type Store interface {
	Load(ctx context.Context, name string) (Grid, error)
	Save(ctx context.Context, name string, grid Grid) error
}
