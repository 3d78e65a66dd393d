package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL DSNs via DATABASE_URL
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // postgres:// URLs via DATABASE_URL
	_ "github.com/mattn/go-sqlite3" // default embedded store
)

const (
	driverSQLite   = "sqlite3"
	driverPostgres = "postgres"
	driverMySQL    = "mysql"
)

// Open creates a database connection. An empty databaseURL selects the
// embedded SQLite store at sqlitePath (created on first use); otherwise the
// driver is detected from the URL: postgres:// for PostgreSQL, anything else
// is treated as a MySQL DSN.
func Open(databaseURL, sqlitePath string) (*sqlx.DB, error) {
	driver := driverMySQL
	dsn := databaseURL

	if databaseURL == "" {
		if sqlitePath == "" {
			return nil, fmt.Errorf("no DATABASE_URL and no sqlite path configured")
		}
		if dir := filepath.Dir(sqlitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		driver = driverSQLite
		dsn = sqlitePath
	} else if strings.HasPrefix(databaseURL, driverPostgres) {
		driver = driverPostgres
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// InitSchema creates the tables for the embedded SQLite store. Server
// databases (postgres/mysql) are expected to carry an externally managed
// schema, so this is a no-op for them.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	if db.DriverName() != driverSQLite {
		return nil
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS prompts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			type TEXT,
			content TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS emails (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			external_id TEXT,
			sender TEXT,
			subject TEXT,
			timestamp TEXT,
			body TEXT,
			category TEXT,
			actions_json TEXT,
			draft_json TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS drafts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			subject TEXT,
			body TEXT,
			meta_json TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
