package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type Querier interface {
	GetBoardCells(ctx context.Context, name string) (string, error)
	UpsertBoard(ctx context.Context, arg UpsertBoardParams) error

	IncrementShotsFired(ctx context.Context, serverIp pqtype.Inet) error
	IncrementHits(ctx context.Context, serverIp pqtype.Inet) error
	IncrementSinks(ctx context.Context, serverIp pqtype.Inet) error
	GetShotsFiredCount(ctx context.Context, serverIp pqtype.Inet) (int64, error)
}

var _ Querier = (*Queries)(nil)
