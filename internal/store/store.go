// Package store counts page visits and link activations in an in-memory
// SQLite database. Nothing is written to disk; the counters reset when the
// process exits.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "modernc.org/sqlite"
)

// LinkStat is the activation count of one link.
type LinkStat struct {
	Code   string `json:"code"`
	Clicks int64  `json:"clicks"`
}

// Stats is the aggregate view served on /stats.
type Stats struct {
	TotalVisitors  int64      `json:"total_visitors"`
	UniqueVisitors int64      `json:"unique_visitors"`
	VisitorsToday  int64      `json:"visitors_today"`
	TotalClicks    int64      `json:"total_clicks"`
	Links          []LinkStat `json:"links"`
}

// Store wraps the statistics database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// MemoryDSN names a private in-memory database. Stores opened with
// different names never share data.
func MemoryDSN(name string) string {
	return "file:" + url.PathEscape(name) + "?mode=memory&cache=shared"
}

// Open creates the schema in the in-memory database called name.
func Open(ctx context.Context, name string) (*Store, error) {
	db, err := sql.Open("sqlite", MemoryDSN(name))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// An in-memory database lives as long as one connection holds it.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	schema := []string{
		`CREATE TABLE IF NOT EXISTS visitors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hashed_ip TEXT NOT NULL,
			user_agent TEXT,
			path TEXT,
			ts INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS visitors_ts ON visitors (ts)`,
		`CREATE TABLE IF NOT EXISTS link_clicks (
			code TEXT PRIMARY KEY,
			clicks INTEGER NOT NULL DEFAULT 0,
			last_ts INTEGER NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database; its contents are gone afterwards.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordVisit stores one page view.
func (s *Store) RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, ts) VALUES (?, ?, ?, ?)`,
		hashedIP, userAgent, path, s.now().UTC().Unix(),
	)
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// RecordClick increments the counter for a link code.
func (s *Store) RecordClick(ctx context.Context, code string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO link_clicks (code, clicks, last_ts) VALUES (?, 1, ?)
		 ON CONFLICT(code) DO UPDATE SET clicks = clicks + 1, last_ts = excluded.last_ts`,
		code, s.now().UTC().Unix(),
	)
	if err != nil {
		return fmt.Errorf("record click %q: %w", code, err)
	}
	return nil
}

// Stats summarizes the recorded activity.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{Links: []LinkStat{}}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT hashed_ip) FROM visitors`,
	).Scan(&stats.TotalVisitors, &stats.UniqueVisitors)
	if err != nil {
		return nil, fmt.Errorf("count visitors: %w", err)
	}

	now := s.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM visitors WHERE ts >= ?`, midnight.Unix(),
	).Scan(&stats.VisitorsToday)
	if err != nil {
		return nil, fmt.Errorf("count visitors today: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT code, clicks FROM link_clicks ORDER BY clicks DESC, code ASC`)
	if err != nil {
		return nil, fmt.Errorf("list clicks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ls LinkStat
		if err := rows.Scan(&ls.Code, &ls.Clicks); err != nil {
			return nil, fmt.Errorf("scan clicks: %w", err)
		}
		stats.TotalClicks += ls.Clicks
		stats.Links = append(stats.Links, ls)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clicks: %w", err)
	}

	return stats, nil
}
