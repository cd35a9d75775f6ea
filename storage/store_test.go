package storage

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/saeidalz13/battleship-http/db/sqlc"
	"github.com/saeidalz13/battleship-http/internal/config"
)

func TestNewBoardStore(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	queries := sqlc.New(db)

	tests := []struct {
		name       string
		cfg        config.Config
		expectFile bool
	}{
		{name: "file", cfg: config.Config{BoardStore: config.BoardStoreFile, BoardDir: "boards"}, expectFile: true},
		{name: "postgres", cfg: config.Config{BoardStore: config.BoardStorePostgres, BoardDir: "boards"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := NewBoardStore(test.cfg, queries)

			switch s := store.(type) {
			case *FileStore:
				if !test.expectFile {
					t.Fatalf("expected a postgres store\tgot: %T", store)
				}
				if s.dir != test.cfg.BoardDir {
					t.Fatalf("expected dir: %s\t got: %s", test.cfg.BoardDir, s.dir)
				}
			case *PostgresStore:
				if test.expectFile {
					t.Fatalf("expected a file store\tgot: %T", store)
				}
			default:
				t.Fatalf("unexpected store: %T", store)
			}
		})
	}
}
