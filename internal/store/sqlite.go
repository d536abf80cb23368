package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists the earnings calendar to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS earnings_calendar (
			symbol     TEXT PRIMARY KEY,
			fetched_at INTEGER NOT NULL,
			dates_json TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// SaveCalendar upserts the earnings dates for a symbol.
func (s *SQLiteStore) SaveCalendar(symbol string, dates []time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unix := make([]int64, len(dates))
	for i, d := range dates {
		unix[i] = d.Unix()
	}
	blob, err := json.Marshal(unix)
	if err != nil {
		return fmt.Errorf("marshal dates: %w", err)
	}

	_, err = s.db.Exec(`INSERT INTO earnings_calendar (symbol, fetched_at, dates_json)
		VALUES (?,?,?)
		ON CONFLICT(symbol) DO UPDATE SET fetched_at=excluded.fetched_at, dates_json=excluded.dates_json`,
		symbol, time.Now().Unix(), string(blob),
	)
	return err
}

// LoadCalendar returns the stored earnings dates for a symbol and when they
// were fetched. A missing row yields zero values, not an error.
func (s *SQLiteStore) LoadCalendar(symbol string) ([]time.Time, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fetchedAt int64
	var blob string
	err := s.db.QueryRow(`SELECT fetched_at, dates_json FROM earnings_calendar WHERE symbol = ?`, symbol).
		Scan(&fetchedAt, &blob)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, err
	}

	var unix []int64
	if err := json.Unmarshal([]byte(blob), &unix); err != nil {
		return nil, time.Time{}, fmt.Errorf("unmarshal dates: %w", err)
	}
	dates := make([]time.Time, len(unix))
	for i, u := range unix {
		dates[i] = time.Unix(u, 0).UTC()
	}
	return dates, time.Unix(fetchedAt, 0).UTC(), nil
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}
