package storage

import (
	"github.com/saeidalz13/battleship-http/db/sqlc"
	"github.com/saeidalz13/battleship-http/internal/config"
	mb "github.com/saeidalz13/battleship-http/models/battleship"
)

// NewBoardStore returns the store named by cfg. The server and the
// client must both build their boards from it, since the server reads
// back the opponent board the client writes. queries is only used for
// the postgres store.
func NewBoardStore(cfg config.Config, queries sqlc.Querier) mb.Store {
	if cfg.BoardStore == config.BoardStorePostgres {
		return NewPostgresStore(queries)
	}
	return NewFileStore(cfg.BoardDir)
}
