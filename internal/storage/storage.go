package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/mattn/go-sqlite3" // required for SQLite
	"github.com/misterclayt0n/wendler/internal/config"
	"github.com/misterclayt0n/wendler/internal/logger"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

type Storage struct {
	DB  *sql.DB
	log *logger.Logger
}

// Open connects to the database named by cfg and makes sure the schema exists.
// libsql:// and http(s):// URLs go to a remote libsql server; anything else
// is treated as a local SQLite DSN.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Storage, error) {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.ConnectionString == "" {
		return nil, fmt.Errorf("database connection string not set")
	}

	driver, dsn := driverFor(cfg)
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if driver == "sqlite3" {
		// SQLite allows one writer; a single connection also keeps
		// in-memory databases alive across calls.
		db.SetMaxOpenConns(1)
	}

	if err := InitializeDB(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log.Debug("database ready", "driver", driver)
	return &Storage{DB: db, log: log.With("component", "storage")}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func driverFor(cfg config.DBConfig) (driver, dsn string) {
	conn := cfg.ConnectionString
	for _, scheme := range []string{"libsql://", "https://", "http://", "wss://", "ws://"} {
		if strings.HasPrefix(conn, scheme) {
			if cfg.AuthToken != "" && !strings.Contains(conn, "authToken=") {
				sep := "?"
				if strings.Contains(conn, "?") {
					sep = "&"
				}
				conn += sep + "authToken=" + url.QueryEscape(cfg.AuthToken)
			}
			return "libsql", conn
		}
	}
	return "sqlite3", conn
}

func InitializeDB(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS profile (
            id TEXT PRIMARY KEY,
            singleton INTEGER NOT NULL DEFAULT 1 UNIQUE CHECK (singleton = 1),
            name TEXT,
            start_date TEXT NOT NULL,
            unit_system TEXT NOT NULL,
            weight_display TEXT NOT NULL,
            schedule TEXT NOT NULL,           -- JSON array of {day, lift}
            one_rep_maxes TEXT NOT NULL,      -- JSON object keyed by lift
            training_maxes TEXT NOT NULL,     -- JSON object keyed by lift
            updated_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS workout_logs (
            id TEXT PRIMARY KEY,
            date TEXT NOT NULL,
            lift TEXT NOT NULL,
            completed_sets TEXT NOT NULL,     -- JSON array of completed sets
            training_max_used REAL NOT NULL,
            logged_at TEXT NOT NULL
        );

        CREATE INDEX IF NOT EXISTS idx_workout_logs_lift_date ON workout_logs (lift, date);
    `)
	return err
}
