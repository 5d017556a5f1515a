package recorder

import (
	"path/filepath"
	"testing"
)

func newTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	t.Cleanup(func() { rec.Close() })
	return rec
}

func TestRecordDay(t *testing.T) {
	rec := newTestRecorder(t)

	day := &DayRecord{
		GameID:      "g-1",
		Day:         3,
		Weather:     "hot",
		Demand:      80,
		UnitsSold:   40,
		Revenue:     40,
		COGS:        27.2,
		Profit:      12.8,
		ClosingCash: 112.8,
	}
	if err := rec.RecordDay(day); err != nil {
		t.Fatalf("record day: %v", err)
	}
	if err := rec.RecordDay(day); err != nil {
		t.Fatalf("record day again: %v", err)
	}

	var count int
	var weather string
	row := rec.db.QueryRow(`SELECT COUNT(*), MAX(weather) FROM day_results WHERE game_id = ?`, "g-1")
	if err := row.Scan(&count, &weather); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	if weather != "hot" {
		t.Fatalf("weather = %q, want hot", weather)
	}
}

func TestRecordReset(t *testing.T) {
	rec := newTestRecorder(t)

	if err := rec.RecordReset(&ResetRecord{GameID: "g-2", TotalDays: 7, InitialCapital: 100}); err != nil {
		t.Fatalf("record reset: %v", err)
	}

	var gameID string
	var capital float64
	row := rec.db.QueryRow(`SELECT game_id, initial_capital FROM game_resets`)
	if err := row.Scan(&gameID, &capital); err != nil {
		t.Fatalf("query: %v", err)
	}
	if gameID != "g-2" || capital != 100 {
		t.Fatalf("row = %q/%v", gameID, capital)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.db")

	first, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := first.RecordReset(&ResetRecord{GameID: "g-3", TotalDays: 7, InitialCapital: 100}); err != nil {
		t.Fatalf("record: %v", err)
	}
	first.Close()

	second, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	var count int
	if err := second.db.QueryRow(`SELECT COUNT(*) FROM game_resets`).Scan(&count); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, rows must survive a reopen", count)
	}
}
