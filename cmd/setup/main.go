package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/BroadcasterPro_Go/internal/admin"
	"github.com/osse101/BroadcasterPro_Go/internal/bootstrap"
	"github.com/osse101/BroadcasterPro_Go/internal/config"
)

// setup prepares a fresh install: creates the postgres database if missing,
// applies migrations and seeds the configured admins.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.DBDriver == config.DriverPostgres {
		if err := ensureDatabase(ctx, cfg); err != nil {
			log.Fatalf("Failed to prepare database: %v", err)
		}
	}

	// Migrations run as part of opening the repositories
	repos, err := bootstrap.OpenRepositories(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	defer repos.Pool.Close()
	fmt.Println("Migrations applied.")

	seeded, err := admin.NewService(repos.Admin).Seed(ctx, cfg.AdminDiscordIDs)
	if err != nil {
		log.Fatalf("Failed to seed admins: %v", err)
	}
	fmt.Printf("Seeded %d admin(s).\n", seeded)
}

// ensureDatabase connects to the maintenance database and creates cfg.DBName if needed
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}
