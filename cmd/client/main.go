package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/saeidalz13/battleship-http/client"
	"github.com/saeidalz13/battleship-http/db"
	"github.com/saeidalz13/battleship-http/db/sqlc"
	"github.com/saeidalz13/battleship-http/internal/config"
	cerr "github.com/saeidalz13/battleship-http/internal/error"
	mb "github.com/saeidalz13/battleship-http/models/battleship"
	"github.com/saeidalz13/battleship-http/storage"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s <host> <port> <x> <y>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 4 {
		flag.Usage()
		os.Exit(2)
	}

	host, port := flag.Arg(0), flag.Arg(1)
	x, errX := strconv.Atoi(flag.Arg(2))
	y, errY := strconv.Atoi(flag.Arg(3))
	if errX != nil || errY != nil {
		log.Fatalf("x and y must be integers, got: %s %s\n", flag.Arg(2), flag.Arg(3))
	}

	config.InitConfig()
	cfg := config.MustFromEnv()

	// the server reads the opponent board back from the same store
	var queries sqlc.Querier
	if cfg.BoardStore == config.BoardStorePostgres {
		queries = sqlc.New(db.MustConnectToDb(cfg.DatabaseUrl, cfg.MigrationDir))
	}

	ctx := context.Background()
	board, err := mb.LoadBoard(ctx, storage.NewBoardStore(cfg, queries), cfg.OpponentBoard)
	if err != nil {
		log.Fatalln(err)
	}

	result, err := client.NewClient(board, nil).FireShot(ctx, host, port, x, y)
	os.Exit(report(os.Stdout, result, err))
}

// report prints the status line whenever the server answered, even if
// recording the outcome locally failed afterwards, and returns the exit
// code.
func report(out io.Writer, result client.Result, err error) int {
	if result.StatusCode != 0 {
		fmt.Fprintln(out, result.Status)
	}
	if err == nil {
		return 0
	}

	if errors.Is(err, cerr.ErrTransport) {
		log.Println("server unreachable:", err)
	} else {
		log.Println(err)
	}
	return 1
}
