package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

const incrementShotsFired = `-- name: IncrementShotsFired :exec
INSERT INTO shot_analytics (server_ip, shots_fired) VALUES ($1, 1)
ON CONFLICT (server_ip) DO UPDATE SET shots_fired = shot_analytics.shots_fired + 1
`

func (q *Queries) IncrementShotsFired(ctx context.Context, serverIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, incrementShotsFired, serverIp)
	return err
}

const incrementHits = `-- name: IncrementHits :exec
INSERT INTO shot_analytics (server_ip, hits) VALUES ($1, 1)
ON CONFLICT (server_ip) DO UPDATE SET hits = shot_analytics.hits + 1
`

func (q *Queries) IncrementHits(ctx context.Context, serverIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, incrementHits, serverIp)
	return err
}

const incrementSinks = `-- name: IncrementSinks :exec
INSERT INTO shot_analytics (server_ip, sinks) VALUES ($1, 1)
ON CONFLICT (server_ip) DO UPDATE SET sinks = shot_analytics.sinks + 1
`

func (q *Queries) IncrementSinks(ctx context.Context, serverIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, incrementSinks, serverIp)
	return err
}

const getShotsFiredCount = `-- name: GetShotsFiredCount :one
SELECT shots_fired FROM shot_analytics WHERE server_ip = $1
`

func (q *Queries) GetShotsFiredCount(ctx context.Context, serverIp pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, getShotsFiredCount, serverIp)
	var shots_fired int64
	err := row.Scan(&shots_fired)
	return shots_fired, err
}
