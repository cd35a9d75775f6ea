package battleship

import (
	"context"

	"github.com/google/uuid"
)

// Game ties the server's own board to the view of the opponent's board
// that the client process keeps up to date.
type Game struct {
	Uuid     string
	Own      *Board
	Opponent *Board
}

// NewGame loads (or creates) the own board and starts a fresh opponent
// view, since a new server run means a new game.
func NewGame(ctx context.Context, store Store, ownName, opponentName string) (*Game, error) {
	own, err := LoadBoard(ctx, store, ownName)
	if err != nil {
		return nil, err
	}

	opponent, err := ResetBoard(ctx, store, opponentName)
	if err != nil {
		return nil, err
	}

	return &Game{
		Uuid:     uuid.NewString()[:6],
		Own:      own,
		Opponent: opponent,
	}, nil
}
