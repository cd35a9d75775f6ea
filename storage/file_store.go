package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	cerr "github.com/saeidalz13/battleship-http/internal/error"
	mb "github.com/saeidalz13/battleship-http/models/battleship"
)

// FileStore keeps each board in its own text file under dir.
type FileStore struct {
	dir string
}

var _ mb.Store = (*FileStore)(nil)

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) pathFor(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}

func (s *FileStore) Load(ctx context.Context, name string) (mb.Grid, error) {
	data, err := os.ReadFile(s.pathFor(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return mb.Grid{}, cerr.ErrBoardNotExist(name)
		}
		return mb.Grid{}, err
	}
	return mb.ParseGrid(string(data))
}

// Save writes to a temporary sibling and renames it over the target,
// so a reader never sees a half written board.
func (s *FileStore) Save(ctx context.Context, name string, grid mb.Grid) error {
	target := s.pathFor(name)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	text, err := grid.MarshalText()
	if err != nil {
		return err
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, text, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
