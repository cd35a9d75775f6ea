package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"

	mb "github.com/saeidalz13/battleship-http/models/battleship"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

// RecordShot counts one resolved shot against the server it landed on.
func (a *AnalyticsManager) RecordShot(ctx context.Context, serverIpNet pqtype.Inet, outcome mb.Outcome) error {
	if err := a.queries.IncrementShotsFired(ctx, serverIpNet); err != nil {
		return err
	}
	if !outcome.Hit {
		return nil
	}
	if err := a.queries.IncrementHits(ctx, serverIpNet); err != nil {
		return err
	}
	if outcome.IsSunk() {
		return a.queries.IncrementSinks(ctx, serverIpNet)
	}
	return nil
}

func (a *AnalyticsManager) GetShotsFiredCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetShotsFiredCount(ctx, serverIpNet)
}
