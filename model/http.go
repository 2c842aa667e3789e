package model

type DrillRequest struct {
	Length int    `json:"length,omitempty"`
	Key    string `json:"key,omitempty"`
}

type DrillResponse struct {
	Key         string      `json:"key"`
	Tonic       uint8       `json:"tonic"`
	Progression Progression `json:"progression"`
	Narration   string      `json:"narration"`
	TotalTicks  uint64      `json:"total_ticks"`
	Events      []Event     `json:"events"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
