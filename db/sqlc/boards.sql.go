package sqlc

import (
	"context"
)

const getBoardCells = `-- name: GetBoardCells :one
SELECT cells FROM boards WHERE name = $1
`

func (q *Queries) GetBoardCells(ctx context.Context, name string) (string, error) {
	row := q.db.QueryRowContext(ctx, getBoardCells, name)
	var cells string
	err := row.Scan(&cells)
	return cells, err
}

const upsertBoard = `-- name: UpsertBoard :exec
INSERT INTO boards (name, cells, updated_at) VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET cells = EXCLUDED.cells, updated_at = now()
`

type UpsertBoardParams struct {
	Name  string
	Cells string
}

func (q *Queries) UpsertBoard(ctx context.Context, arg UpsertBoardParams) error {
	_, err := q.db.ExecContext(ctx, upsertBoard, arg.Name, arg.Cells)
	return err
}
