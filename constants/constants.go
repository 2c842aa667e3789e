package constants

import (
	"os"
	"time"
)

// Timeline layout. 480 ticks per beat at 60 BPM makes one tick 1/480 of a
// second, so rendered audio timing falls straight out of the tick math.
const (
	TicksPerBeat = 480
	TempoBPM     = 60

	DefaultChordDurationTicks = 960
	DefaultGapTicks           = 240
	DefaultRepGapTicks        = 960

	DefaultVelocity = 100
)

// Audio assembly.
const (
	SampleRate = 44100

	ProgToSpeechPause = 300 * time.Millisecond
	EndPause          = time.Second
)

func GetSoundfontPath() string {
	path := os.Getenv("SOUNDFONT_PATH")
	if path != "" {
		return path
	}
	return "FluidR3_GM.sf2"
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetHistoryTable() string {
	table := os.Getenv("PROGEN_HISTORY_TABLE")
	if table != "" {
		return table
	}
	return "progen-drills"
}

// HistoryEnabled gates DynamoDB writes; off unless explicitly requested.
func HistoryEnabled() bool {
	return os.Getenv("PROGEN_HISTORY") == "1"
}
