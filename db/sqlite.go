package db

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"alpaca_dashboard/logger"
	"alpaca_dashboard/models"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite archives the recorder's metrics samples. The dashboard itself never
// reads or writes it on the render path.
type SQLite struct {
	DB *sql.DB
}

// InitDB opens (creating if needed) the snapshot database at the given path.
func InitDB(dbPath string) (*SQLite, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	logger.Infof("Initializing snapshot database at %s", dbPath)

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	query := `
    CREATE TABLE IF NOT EXISTS snapshots (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        taken_at DATETIME NOT NULL,
        portfolio_value REAL NOT NULL,
        pl_dollar REAL NOT NULL,
        pl_percent REAL NOT NULL,
        risk_ratio REAL NOT NULL
    );`
	if _, err := conn.Exec(query); err != nil {
		conn.Close()
		return nil, err
	}

	return &SQLite{DB: conn}, nil
}

// Close releases the underlying connection.
func (s *SQLite) Close() error {
	return s.DB.Close()
}

// InsertSnapshot appends one recorder sample.
func (s *SQLite) InsertSnapshot(snap models.MetricsSnapshot) error {
	_, err := s.DB.Exec(`
        INSERT INTO snapshots (taken_at, portfolio_value, pl_dollar, pl_percent, risk_ratio)
        VALUES (?, ?, ?, ?, ?)
    `, snap.Timestamp.UTC().Format(time.RFC3339), snap.PortfolioValue, snap.PLDollar, snap.PLPercent, snap.RiskRatio)
	return err
}

// RecentSnapshots returns up to limit samples, oldest first, for the
// long-horizon chart.
func (s *SQLite) RecentSnapshots(limit int) ([]models.MetricsSnapshot, error) {
	rows, err := s.DB.Query(`
        SELECT taken_at, portfolio_value, pl_dollar, pl_percent, risk_ratio
        FROM snapshots ORDER BY taken_at DESC LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []models.MetricsSnapshot
	for rows.Next() {
		var snap models.MetricsSnapshot
		var takenAt string
		if err := rows.Scan(&takenAt, &snap.PortfolioValue, &snap.PLDollar, &snap.PLPercent, &snap.RiskRatio); err != nil {
			return nil, err
		}
		snap.Timestamp, err = time.Parse(time.RFC3339, takenAt)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse into chronological order.
	for i, j := 0, len(snaps)-1; i < j; i, j = i+1, j-1 {
		snaps[i], snaps[j] = snaps[j], snaps[i]
	}
	return snaps, nil
}
