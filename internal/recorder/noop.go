package recorder

// NoopRecorder is used when no SQLite path is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordDay(_ *DayRecord) error     { return nil }
func (n *NoopRecorder) RecordReset(_ *ResetRecord) error { return nil }
func (n *NoopRecorder) Close() error                     { return nil }
