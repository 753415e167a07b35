package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/GroupIronmen_Go/internal/auth"
	"github.com/osse101/GroupIronmen_Go/internal/bootstrap"
	"github.com/osse101/GroupIronmen_Go/internal/config"
	"github.com/osse101/GroupIronmen_Go/internal/validation"
)

func main() {
	groupName := flag.String("group", "", "create a group with this name and print its token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	ctx := context.Background()

	if err := ensureDatabase(ctx, cfg); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Running migrations...")
	pool, err := bootstrap.SetupDatabase(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	fmt.Println("Migrations completed successfully.")

	if *groupName == "" {
		return
	}
	if !validation.ValidName(*groupName) {
		log.Fatalf("Group name %q is not valid", *groupName)
	}

	repos := bootstrap.InitializeRepositories(pool)
	authenticator := auth.NewAuthenticator(repos.Auth, 1, cfg.AuthCacheTTL)
	g, token, err := authenticator.CreateGroup(ctx, *groupName)
	if err != nil {
		log.Fatalf("Failed to create group: %v", err)
	}

	fmt.Printf("Created group %s (id %d)\n", g.Name, g.ID)
	fmt.Printf("Token: %s\n", token)
	fmt.Println("Store the token now; only its hash is kept.")
}

// ensureDatabase connects to the maintenance database and creates cfg.DBName
// when it does not exist yet.
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, defaultConnString)
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
