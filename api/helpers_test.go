package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	mb "github.com/saeidalz13/battleship-http/models/battleship"
	"github.com/saeidalz13/battleship-http/storage"
)

const testOwnBoard = `__________
__________
__________
__________
__________
___D______
__________
__________
__________
CCCC______
`

// switchableStore fails every save while failing is set.
type switchableStore struct {
	mb.Store
	mu      sync.Mutex
	failing bool
}

func (s *switchableStore) setFailing(failing bool) {
	s.mu.Lock()
	s.failing = failing
	s.mu.Unlock()
}

func (s *switchableStore) Save(ctx context.Context, name string, grid mb.Grid) error {
	s.mu.Lock()
	failing := s.failing
	s.mu.Unlock()

	if failing {
		return errors.New("read-only file system")
	}
	return s.Store.Save(ctx, name, grid)
}

func newTestGame(t *testing.T) (*mb.Game, *switchableStore) {
	t.Helper()

	store := &switchableStore{Store: storage.NewFileStore(t.TempDir())}
	grid, err := mb.ParseGrid(testOwnBoard)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(context.Background(), "own_board.txt", grid); err != nil {
		t.Fatal(err)
	}

	game, err := mb.NewGame(context.Background(), store, "own_board.txt", "opponent_board.txt")
	if err != nil {
		t.Fatal(err)
	}
	return game, store
}

func postShot(t *testing.T, serverUrl string, form url.Values) *http.Response {
	t.Helper()

	resp, err := http.PostForm(serverUrl, form)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func shotForm(x, y int) url.Values {
	return url.Values{"x": {strconv.Itoa(x)}, "y": {strconv.Itoa(y)}}
}

func newTestServer(t *testing.T, rp *RequestProcessor) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(rp)
	t.Cleanup(server.Close)
	return server
}
