package storage

import (
	"database/sql"
	"fmt"
	"time"

	"accident-analyzer/models"
	"accident-analyzer/utils"

	_ "github.com/lib/pq"
)

// PostgresWriter mirrors generated accident records into PostgreSQL
type PostgresWriter struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresWriter creates a new PostgresWriter and pings the DB
func NewPostgresWriter(connStr string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Minute * 5)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.Info("Connected to PostgreSQL successfully")
	return &PostgresWriter{db: db, logger: logger}, nil
}

// CreateTable creates the accidents table if it doesn't exist, with indexes
func (w *PostgresWriter) CreateTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS accidents (
		id          INTEGER PRIMARY KEY,
		car         VARCHAR(100) NOT NULL,
		location    TEXT,
		city        TEXT,
		occurred_at VARCHAR(16)  NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_accidents_city ON accidents (city);
	CREATE INDEX IF NOT EXISTS idx_accidents_car  ON accidents (car);
	`
	_, err := w.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	w.logger.Info("Table 'accidents' is ready")
	return nil
}

// BatchInsert inserts records in a single transaction, skipping duplicates
func (w *PostgresWriter) BatchInsert(accidents []*models.Accident) error {
	if len(accidents) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO accidents (id, car, location, city, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, a := range accidents {
		_, err = stmt.Exec(a.ID, a.Car, a.Location, a.City, a.DateTime)
		if err != nil {
			w.logger.Warn("Skipping insert for record %d: %v", a.ID, err)
			continue
		}
		inserted++
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.logger.Info("Inserted %d/%d accident records into PostgreSQL", inserted, len(accidents))
	return nil
}

// Close closes the database connection
func (w *PostgresWriter) Close() {
	if w.db != nil {
		_ = w.db.Close()
	}
}
