package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/saeidalz13/battleship-http/api"
	"github.com/saeidalz13/battleship-http/db"
	"github.com/saeidalz13/battleship-http/db/sqlc"
	"github.com/saeidalz13/battleship-http/internal/config"
	mb "github.com/saeidalz13/battleship-http/models/battleship"
	mc "github.com/saeidalz13/battleship-http/models/connection"
	"github.com/saeidalz13/battleship-http/storage"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s <port> <own_board_file>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	port, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		log.Fatalln("port must be an integer:", flag.Arg(0))
	}
	ownBoard := flag.Arg(1)

	config.InitConfig()
	cfg := config.MustFromEnv()

	var queries sqlc.Querier
	var analytics *sqlc.AnalyticsManager
	if cfg.UsesDatabase() {
		dbManager := sqlc.NewDbManager(sqlc.New(db.MustConnectToDb(cfg.DatabaseUrl, cfg.MigrationDir)))
		queries = dbManager.Queries
		analytics = dbManager.Analytics
	}
	store := storage.NewBoardStore(cfg, queries)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game, err := mb.NewGame(ctx, store, ownBoard, cfg.OpponentBoard)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("game %s started with own board %s\n", game.Uuid, ownBoard)

	encoder, err := api.NewOutcomeEncoder(cfg.OutcomeEncoding)
	if err != nil {
		log.Fatalln(err)
	}

	hub := mc.NewShotFeedHub()
	server := api.NewServer(
		api.NewRequestProcessor(game, hub, analytics, encoder),
		api.WithHost(api.ResolveLocalHost()),
		api.WithPort(port),
		api.WithStage(cfg.Stage),
		api.WithEventHub(hub),
	)

	if err := server.Run(ctx); err != nil {
		log.Fatalln(err)
	}
	log.Println("Exiting...")
}
