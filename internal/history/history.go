package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one rendered payload.
type Entry struct {
	Time      time.Time
	Formatter string
	Level     string
	Payload   string
}

// History records every rendered payload to a SQLite database.
type History struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and ensures the
// renders table exists.
func New(dbPath string) (*History, error) {
	dsn := "file:" + dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("history: open db: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS renders (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		ts        TEXT    NOT NULL,
		formatter TEXT    NOT NULL,
		level     TEXT    NOT NULL,
		payload   TEXT    NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create table: %w", err)
	}
	return &History{db: db}, nil
}

// Record inserts one row. It is safe to call concurrently.
func (h *History) Record(formatter, level, payload string) error {
	ts := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := h.db.Exec(
		`INSERT INTO renders (ts, formatter, level, payload) VALUES (?, ?, ?, ?)`,
		ts, formatter, level, payload,
	)
	if err != nil {
		return fmt.Errorf("history: record: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (h *History) Recent(n int) ([]Entry, error) {
	rows, err := h.db.Query(
		`SELECT ts, formatter, level, payload FROM renders ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&ts, &e.Formatter, &e.Level, &e.Payload); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		e.Time, _ = time.Parse(time.RFC3339Nano, ts)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the underlying database connection.
func (h *History) Close() error {
	return h.db.Close()
}
