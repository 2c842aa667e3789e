package model

// DrillRecord is the persisted form of one generated drill.
type DrillRecord struct {
	Id          string
	Key         string
	Progression string
	Narration   string
	TotalTicks  uint64
	CreatedAt   string
}
