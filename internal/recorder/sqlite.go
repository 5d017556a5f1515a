package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder appends game events to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL so an external reader inspecting results does not block writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS day_results (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			game_id      TEXT NOT NULL,
			day          INTEGER NOT NULL,
			weather      TEXT,
			demand       INTEGER,
			units_sold   INTEGER,
			revenue      REAL,
			cogs         REAL,
			profit       REAL,
			closing_cash REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_day_results_game ON day_results(game_id, day)`,

		`CREATE TABLE IF NOT EXISTS game_resets (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			game_id         TEXT NOT NULL,
			total_days      INTEGER,
			initial_capital REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_game_resets_ts ON game_resets(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordDay(rec *DayRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO day_results
		(timestamp, game_id, day, weather, demand, units_sold, revenue, cogs, profit, closing_cash)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.GameID, rec.Day, rec.Weather, rec.Demand,
		rec.UnitsSold, rec.Revenue, rec.COGS, rec.Profit, rec.ClosingCash,
	)
	return err
}

func (r *SQLiteRecorder) RecordReset(rec *ResetRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO game_resets
		(timestamp, game_id, total_days, initial_capital)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), rec.GameID, rec.TotalDays, rec.InitialCapital,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
