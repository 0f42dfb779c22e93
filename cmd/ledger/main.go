package main

import (
	"context"
	"database/sql"
	"log"

	"account-ledger/internal/config"
	"account-ledger/internal/store/pg"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	config.Config.Parse()

	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	conn, err := sql.Open("pgx", config.Config.DBConnectionString)
	if err != nil {
		return err
	}

	appInstance := newApp(pg.NewStore(context.Background(), conn))

	go func() {
		if err := appInstance.StartServer(); err != nil {
			log.Println(err)
		}
	}()

	return appInstance.CatchTerminateSignal()
}
