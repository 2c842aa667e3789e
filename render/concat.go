package render

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/wav"
)

// Segment is one wav file scheduled into the final drill audio. GainDB is
// applied at concat time, e.g. the narration runs 6 dB under the chords.
type Segment struct {
	Path       string
	GainDB     float64
	PauseAfter time.Duration
}

// Concat decodes every segment in order, inserts the configured pauses and
// writes a single wav file to outPath. All segments must share the sample
// rate of the first one.
func Concat(outPath string, segments []Segment) error {
	if len(segments) == 0 {
		return fmt.Errorf("nothing to concatenate")
	}

	var streamers []beep.Streamer
	var closers []beep.StreamSeekCloser
	var format beep.Format

	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	for _, seg := range segments {
		f, err := os.Open(seg.Path)
		if err != nil {
			return fmt.Errorf("could not open segment %v: %w", seg.Path, err)
		}
		decoded, segFormat, err := wav.Decode(f)
		if err != nil {
			f.Close()
			return fmt.Errorf("could not decode segment %v: %w", seg.Path, err)
		}
		closers = append(closers, decoded)
		if format.SampleRate == 0 {
			format = segFormat
		}

		var s beep.Streamer = decoded
		if seg.GainDB != 0 {
			// with base 2 every -6 dB is one halving, so Volume is dB/6
			s = &effects.Volume{Streamer: s, Base: 2, Volume: seg.GainDB / 6}
		}
		streamers = append(streamers, s)

		if seg.PauseAfter > 0 {
			streamers = append(streamers, beep.Silence(format.SampleRate.N(seg.PauseAfter)))
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("could not create %v: %w", outPath, err)
	}
	defer out.Close()

	if err := wav.Encode(out, beep.Seq(streamers...), format); err != nil {
		return fmt.Errorf("could not encode %v: %w", outPath, err)
	}
	return nil
}
