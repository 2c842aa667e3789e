package timeline

import (
	"github.com/halfdim/progen/constants"
	"github.com/halfdim/progen/model"
	"github.com/halfdim/progen/theory"
	"github.com/halfdim/progen/util"
	"github.com/halfdim/progen/voicing"
)

// Params control the tick layout of one drill.
type Params struct {
	ChordDurationTicks uint32
	GapTicks           uint32
	RepGapTicks        uint32
}

func DefaultParams() Params {
	return Params{
		ChordDurationTicks: constants.DefaultChordDurationTicks,
		GapTicks:           constants.DefaultGapTicks,
		RepGapTicks:        constants.DefaultRepGapTicks,
	}
}

// Build lays the progression out twice as a flat delta-timed event list.
// Voicings are resolved once up front; "I" always plays root position and
// its mean pitch anchors the voicing search for every other chord.
func Build(prog model.Progression, tonic uint8, params Params) (model.Timeline, error) {
	tl := model.Timeline{
		TicksPerBeat: constants.TicksPerBeat,
		TempoBPM:     constants.TempoBPM,
	}

	tonicChord, err := theory.ChordNotes(tonic, "I")
	if err != nil {
		return tl, err
	}
	targetAvg := voicing.Mean(tonicChord)

	voicings := make([]model.Chord, 0, len(prog))
	for _, label := range prog {
		if label == "I" {
			voicings = append(voicings, tonicChord)
			continue
		}
		v, err := voicing.Choose(tonic, label, targetAvg)
		if err != nil {
			return tl, err
		}
		voicings = append(voicings, v)
	}

	for rep := 0; rep < 2; rep++ {
		for idx, v := range voicings {
			for _, note := range v {
				tl.Events = append(tl.Events, model.Event{
					Kind:     model.NoteOn,
					Note:     note,
					Velocity: constants.DefaultVelocity,
				})
			}
			// the hold is attributed to the first note-off only, the rest
			// land on the same tick
			for i, note := range v {
				var delta uint32
				if i == 0 {
					delta = params.ChordDurationTicks
				}
				tl.Events = append(tl.Events, model.Event{
					Kind:  model.NoteOff,
					Note:  note,
					Delta: delta,
				})
			}
			if idx < len(voicings)-1 {
				tl.Events = append(tl.Events, model.Event{
					Kind:  model.Marker,
					Tag:   "gap",
					Delta: params.GapTicks,
				})
			}
		}
		if rep == 0 {
			tl.Events = append(tl.Events, model.Event{
				Kind:  model.Marker,
				Tag:   "rep_gap",
				Delta: params.RepGapTicks,
			})
		}
	}

	return tl, nil
}

// TotalTicks is the tick span of the whole timeline.
func TotalTicks(tl model.Timeline) uint64 {
	deltas := make([]uint32, 0, len(tl.Events))
	for _, evt := range tl.Events {
		deltas = append(deltas, evt.Delta)
	}
	return util.Sum(deltas)
}
