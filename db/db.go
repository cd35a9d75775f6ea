package db

import (
	"database/sql"
	"embed"
	"errors"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

const (
	maxOpenConns = 20
	maxIdleConns = 5
	connMaxLife  = time.Minute * 15
)

//go:embed migration/*.sql
var migrationFS embed.FS

// MustMigrate applies the schema. An empty migrationDir uses the
// migrations embedded in the binary; otherwise it is a source URL such
// as file://db/migration.
func MustMigrate(db *sql.DB, migrationDir string) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		panic(err)
	}

	var m *migrate.Migrate
	if migrationDir == "" {
		source, err := iofs.New(migrationFS, "migration")
		if err != nil {
			panic(err)
		}
		m, err = migrate.NewWithInstance("iofs", source, "battleship", driver)
		if err != nil {
			panic(err)
		}
	} else {
		m, err = migrate.NewWithDatabaseInstance(migrationDir, "battleship", driver)
		if err != nil {
			panic(err)
		}
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		panic(err)
	}
	if dirty {
		panic("database is dirty")
	}
	log.Println("migration version:", version)

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return
		}
		panic(err)
	}
	log.Println("migration successful...")
}

func MustConnectToDb(psqlUrl, migrationDir string) *sql.DB {
	// Open may just validate its arguments without creating a connection to the database
	db, err := sql.Open("postgres", psqlUrl)
	if err != nil {
		panic(err)
	}

	// ping db to check connection
	if err := db.Ping(); err != nil {
		panic(err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLife)

	MustMigrate(db, migrationDir)
	return db
}
