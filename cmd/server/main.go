package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"puzshelf/internal/app"
	"puzshelf/internal/config"
	"puzshelf/internal/db"
	"puzshelf/internal/transport"
	"puzshelf/sql/schema"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"), os.Getenv)
	if err != nil {
		log.Fatal(err)
	}

	dbConn, err := sql.Open("sqlite", cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer dbConn.Close()

	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal(err)
	}

	// Run migrations from embedded FS
	goose.SetBaseFS(schema.Migrations)
	if err := goose.Up(dbConn, "."); err != nil {
		log.Fatal(err)
	}

	queries := db.New(dbConn)
	service := app.NewService(queries, dbConn)
	defer service.Shutdown()
	server := transport.NewServer(service, cfg.IsProd(), cfg.MaxUploadBytes)

	log.Printf("Server starting in %s mode on http://localhost:%s\n", cfg.Env, cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, server.Router); err != nil {
		log.Fatal(err)
	}
}
