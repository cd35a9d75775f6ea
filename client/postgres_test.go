package client

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/saeidalz13/battleship-http/api"
	"github.com/saeidalz13/battleship-http/db/sqlc"
	"github.com/saeidalz13/battleship-http/internal/config"
	mb "github.com/saeidalz13/battleship-http/models/battleship"
	"github.com/saeidalz13/battleship-http/storage"
)

func cellsRow(cells string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"cells"}).AddRow(cells)
}

// Server and client built from the same postgres config must share the
// opponent board, so the server page shows what the client recorded.
func TestOpponentBoardSharedThroughPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	cfg := config.Config{BoardStore: config.BoardStorePostgres, BoardDir: t.TempDir()}
	selectCells := regexp.QuoteMeta("SELECT cells FROM boards WHERE name = $1")
	upsertBoard := regexp.QuoteMeta("INSERT INTO boards (name, cells, updated_at)")

	observed := mb.NewGrid()
	observed[5][5] = mb.PositionStateMiss

	// server start
	mock.ExpectQuery(selectCells).WithArgs("own_board.txt").WillReturnRows(cellsRow(serverBoard))
	mock.ExpectExec(upsertBoard).WithArgs("opponent_board.txt", mb.NewGrid().String()).WillReturnResult(sqlmock.NewResult(0, 1))
	// client start
	mock.ExpectQuery(selectCells).WithArgs("opponent_board.txt").WillReturnRows(cellsRow(mb.NewGrid().String()))
	// shot resolved on the server, then recorded by the client
	mock.ExpectExec(upsertBoard).WithArgs("own_board.txt", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsertBoard).WithArgs("opponent_board.txt", observed.String()).WillReturnResult(sqlmock.NewResult(0, 1))
	// server page reload
	mock.ExpectQuery(selectCells).WithArgs("opponent_board.txt").WillReturnRows(cellsRow(observed.String()))

	ctx := context.Background()
	game, err := mb.NewGame(ctx, storage.NewBoardStore(cfg, sqlc.New(db)), "own_board.txt", "opponent_board.txt")
	if err != nil {
		t.Fatal(err)
	}
	server := httptest.NewServer(api.NewRequestProcessor(game, nil, nil, nil))
	defer server.Close()

	board, err := mb.LoadBoard(ctx, storage.NewBoardStore(cfg, sqlc.New(db)), "opponent_board.txt")
	if err != nil {
		t.Fatal(err)
	}

	u, _ := url.Parse(server.URL)
	host, port, _ := net.SplitHostPort(u.Host)
	result, err := NewClient(board, nil).FireShot(ctx, host, port, 5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != "200 hit=0" {
		t.Fatalf("expected status: %q\t got: %q", "200 hit=0", result.Status)
	}

	resp, err := http.Get(server.URL + api.PathOpponentBoard)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(body), "5 _ _ _ _ _ o _ _ _ _") {
		t.Fatalf("expected the recorded miss on the page\tgot: %s", body)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}
