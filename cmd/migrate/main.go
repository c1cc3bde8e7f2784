package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/hourbill/hourbill/internal/config"
	"github.com/hourbill/hourbill/internal/logger"
)

func main() {
	migrationsDir := flag.String("dir", "migrations", "Directory containing migration SQL files")
	dryRun := flag.Bool("dry-run", false, "Print migration SQL without executing it")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	entries, err := os.ReadDir(*migrationsDir)
	if err != nil {
		logger.Fatalw("Failed to read migrations directory", "error", err, "dir", *migrationsDir)
	}

	// os.ReadDir returns entries sorted by name, which is the migration order
	var files []string
	for _, e := range entries {
		if !e.IsDir() && len(e.Name()) > 4 && e.Name()[len(e.Name())-4:] == ".sql" {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		logger.Fatalw("No migration files found", "dir", *migrationsDir)
	}

	if *dryRun {
		logger.Info("Dry run mode - printing migration SQL without executing")
		for _, name := range files {
			sql, err := os.ReadFile(*migrationsDir + "/" + name)
			if err != nil {
				logger.Fatalw("Failed to read migration", "error", err, "file", name)
			}
			fmt.Printf("-- %s\n%s\n", name, sql)
		}
		return
	}

	dsn := cfg.Postgres.GetDSN()
	logger.Infow("Connecting to database", "host", cfg.Postgres.Host)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Info("Running database migrations...")
	for _, name := range files {
		sql, err := os.ReadFile(*migrationsDir + "/" + name)
		if err != nil {
			logger.Fatalw("Failed to read migration", "error", err, "file", name)
		}
		if _, err := db.ExecContext(ctx, string(sql)); err != nil {
			logger.Fatalw("Failed to apply migration", "error", err, "file", name)
		}
		logger.Infow("Applied migration", "file", name)
	}

	fmt.Println("Migration process completed")
}
