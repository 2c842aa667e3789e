package model

type EventKind string

const (
	NoteOn  EventKind = "note_on"
	NoteOff EventKind = "note_off"
	Marker  EventKind = "marker"
)

// Event is one entry in a drill timeline. Delta is ticks since the previous
// event, same convention as an SMF track event.
type Event struct {
	Kind     EventKind `json:"kind"`
	Note     uint8     `json:"note,omitempty"`
	Velocity uint8     `json:"velocity,omitempty"`
	Delta    uint32    `json:"delta"`
	Tag      string    `json:"tag,omitempty"`
}

type Timeline struct {
	TicksPerBeat uint16  `json:"ticksPerBeat"`
	TempoBPM     float64 `json:"tempoBpm"`
	Events       []Event `json:"events"`
}
