package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	BoardStoreFile     = "file"
	BoardStorePostgres = "postgres"

	EncodingReason = "reason"
	EncodingBody   = "body"
)

type Config struct {
	Stage           string
	BoardStore      string
	BoardDir        string
	OpponentBoard   string
	DatabaseUrl     string
	OutcomeEncoding string
	MigrationDir    string
}

// InitConfig loads .env outside of prod. A missing .env is fine; every
// variable has a default except the database url.
func InitConfig() {
	if os.Getenv("STAGE") == StageProd {
		return
	}

	if err := godotenv.Load(".env"); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		log.Fatalln("error loading environment variables:", err)
	}
	log.Println("Successfully loaded environment variables")
}

// FromEnv reads and validates the process environment.
func FromEnv() (Config, error) {
	cfg := Config{
		Stage:           getEnvOrDefault("STAGE", StageDev),
		BoardStore:      getEnvOrDefault("BOARD_STORE", BoardStoreFile),
		BoardDir:        getEnvOrDefault("BOARD_DIR", "."),
		OpponentBoard:   getEnvOrDefault("OPPONENT_BOARD", "opponent_board.txt"),
		DatabaseUrl:     os.Getenv("DATABASE_URL"),
		OutcomeEncoding: getEnvOrDefault("OUTCOME_ENCODING", EncodingReason),
		MigrationDir:    os.Getenv("MIGRATION_DIR"),
	}

	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %s", cfg.Stage)
	}
	if cfg.BoardStore != BoardStoreFile && cfg.BoardStore != BoardStorePostgres {
		return Config{}, fmt.Errorf("board store must be either file or postgres, got: %s", cfg.BoardStore)
	}
	if cfg.BoardStore == BoardStorePostgres && cfg.DatabaseUrl == "" {
		return Config{}, errors.New("DATABASE_URL is required for the postgres board store")
	}
	if cfg.OutcomeEncoding != EncodingReason && cfg.OutcomeEncoding != EncodingBody {
		return Config{}, fmt.Errorf("outcome encoding must be either reason or body, got: %s", cfg.OutcomeEncoding)
	}
	return cfg, nil
}

func MustFromEnv() Config {
	cfg, err := FromEnv()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c Config) UsesDatabase() bool {
	return c.DatabaseUrl != ""
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
