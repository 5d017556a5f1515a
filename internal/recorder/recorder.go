package recorder

// DayRecord captures one completed simulation day for the audit trail.
// Amounts are euros at presentation precision.
type DayRecord struct {
	GameID      string
	Day         int
	Weather     string
	Demand      int
	UnitsSold   int
	Revenue     float64
	COGS        float64
	Profit      float64
	ClosingCash float64
}

// ResetRecord marks the start of a fresh game.
type ResetRecord struct {
	GameID         string
	TotalDays      int
	InitialCapital float64
}

// Recorder persists an append-only history of game events for later
// review. It never restores state: a restart still begins at day one.
type Recorder interface {
	RecordDay(rec *DayRecord) error
	RecordReset(rec *ResetRecord) error
	Close() error
}
