package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/amparasaude/ampara_backend/config"
	_ "github.com/lib/pq"
)

// InitializeDatabases creates the application and casbin databases if they
// don't exist. It connects to the default 'postgres' database to create the
// others. This should be called once, before migrations.
func InitializeDatabases(cfg *config.Config) error {
	names := databaseNames(cfg)
	if len(names) == 0 {
		return fmt.Errorf("no database names configured")
	}

	// Connect to 'postgres' database
	postgresConfig := Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   "postgres",
		SSLMode:  cfg.Database.SSLMode,
	}

	conn, err := openSQLDB(postgresConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}
	defer conn.Close()

	// Create each database
	for _, dbName := range names {
		if err := createDatabaseIfNotExists(conn, dbName); err != nil {
			return fmt.Errorf("failed to create database %q: %w", dbName, err)
		}
	}

	return nil
}

// databaseNames collects the distinct database names the deployment uses:
// the main application database and the casbin policy database, which may
// share a server-side name in small installs.
func databaseNames(cfg *config.Config) []string {
	seen := make(map[string]bool)
	var names []string
	for _, name := range []string{cfg.Database.DBName, cfg.CasbinDatabase.DBName} {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// createDatabaseIfNotExists creates a database if it doesn't already exist
func createDatabaseIfNotExists(conn *sql.DB, dbName string) error {
	// Check if database exists
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`
	err := conn.QueryRowContext(context.Background(), query, dbName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		return nil // Database already exists
	}

	// Create the database
	createQuery := fmt.Sprintf("CREATE DATABASE %s", dbName)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = conn.ExecContext(ctx, createQuery)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	return nil
}
