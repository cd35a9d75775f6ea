package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/saeidalz13/battleship-http/db/sqlc"
	cerr "github.com/saeidalz13/battleship-http/internal/error"
	mb "github.com/saeidalz13/battleship-http/models/battleship"
)

// PostgresStore keeps boards in the boards table using the same text
// layout as FileStore.
type PostgresStore struct {
	q sqlc.Querier
}

var _ mb.Store = (*PostgresStore)(nil)

func NewPostgresStore(q sqlc.Querier) *PostgresStore {
	return &PostgresStore{q: q}
}

func (s *PostgresStore) Load(ctx context.Context, name string) (mb.Grid, error) {
	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()

	cells, err := s.q.GetBoardCells(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mb.Grid{}, cerr.ErrBoardNotExist(name)
		}
		return mb.Grid{}, err
	}
	return mb.ParseGrid(cells)
}

func (s *PostgresStore) Save(ctx context.Context, name string, grid mb.Grid) error {
	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()

	return s.q.UpsertBoard(ctx, sqlc.UpsertBoardParams{Name: name, Cells: grid.String()})
}
