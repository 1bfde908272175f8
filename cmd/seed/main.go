package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"puzshelf/internal/app"
	"puzshelf/internal/config"
	"puzshelf/internal/db"
	"puzshelf/sql/schema"
)

// seed imports every .puz file in a directory (default internal/puz/testdata).
func main() {
	dir := "internal/puz/testdata"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

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
	goose.SetBaseFS(schema.Migrations)
	if err := goose.Up(dbConn, "."); err != nil {
		log.Fatal(err)
	}

	queries := db.New(dbConn)
	service := app.NewService(queries, dbConn)
	defer service.Shutdown()
	ctx := context.Background()

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Seeding puzzles from %s...\n", dir)
	var imported, skipped, failed int
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".puz") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", entry.Name(), err)
			failed++
			continue
		}

		p, created, err := service.ImportPuzzle(ctx, entry.Name(), data)
		if err != nil {
			fmt.Printf("Error importing %s: %v\n", entry.Name(), err)
			failed++
			continue
		}
		if !created {
			fmt.Printf("Already stored: %s (ID: %s)\n", entry.Name(), p.ID)
			skipped++
			continue
		}
		fmt.Printf("Imported puzzle: %q (ID: %s) from %s\n", p.Title, p.ID, entry.Name())
		imported++
	}

	fmt.Printf("\nSeeding complete! %d imported, %d already stored, %d failed.\n", imported, skipped, failed)
	fmt.Println("Browse them once the server is running:")
	fmt.Println("- http://localhost:8080/puzzles")
}
