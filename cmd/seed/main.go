package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/qc-lab/internal/migrations"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn     = flag.String("dsn", "", "Database connection string")
		all     = flag.Bool("all", false, "Run all seeders")
		only    = flag.String("seeder", "", "Run a single seeder by name")
		file    = flag.String("file", "", "External seed file for -seeder (overrides embedded)")
		migrate = flag.Bool("migrate", false, "Apply migrations before seeding")
		list    = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseDSN)
	}
	if *dsn == "" {
		log.Fatalf("database connection string required: use -dsn flag or %s env var", EnvDatabaseDSN)
	}

	if *migrate {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		if err := migrations.Up(*dsn, logger); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()

	switch {
	case *all:
		if err := runSeeders(ctx, db, listSeeders()...); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")

	case *only != "":
		seeder, ok := getSeeder(*only)
		if !ok {
			log.Fatalf("seeder not found: %s", *only)
		}
		if *file != "" {
			seeder.SetFile(*file)
		}
		if err := runSeeders(ctx, db, seeder); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Printf("%s seeded successfully\n", seeder.Name())

	default:
		fmt.Println("usage: seed -dsn <connection-string> [-all|-seeder <name>] [-file <path>] [-migrate] [-list]")
		flag.PrintDefaults()
	}
}
