package timeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halfdim/progen/model"
	"github.com/halfdim/progen/theory"
)

func countKind(events []model.Event, kind model.EventKind) int {
	var n int
	for _, evt := range events {
		if evt.Kind == kind {
			n++
		}
	}
	return n
}

func countMarkers(events []model.Event, tag string) int {
	var n int
	for _, evt := range events {
		if evt.Kind == model.Marker && evt.Tag == tag {
			n++
		}
	}
	return n
}

func TestBuildEventCounts(t *testing.T) {
	prog := model.Progression{"I", "V", "ii"}
	tl, err := Build(prog, 60, DefaultParams())

	assert := assert.New(t)
	assert.NoError(err)
	// 3 notes x 3 chords x 2 repetitions
	assert.Equal(18, countKind(tl.Events, model.NoteOn))
	assert.Equal(18, countKind(tl.Events, model.NoteOff))
	assert.Equal(4, countMarkers(tl.Events, "gap"))
	assert.Equal(1, countMarkers(tl.Events, "rep_gap"))
}

func TestBuildTickAccounting(t *testing.T) {
	tl, err := Build(model.Progression{"I", "V"}, 60, DefaultParams())

	assert := assert.New(t)
	assert.NoError(err)
	// 2 reps x (2x960 chords + 240 gap) + 960 rep gap
	assert.Equal(uint64(5280), TotalTicks(tl))
}

func TestBuildVoicings(t *testing.T) {
	tl, err := Build(model.Progression{"I", "V"}, 60, DefaultParams())

	assert := assert.New(t)
	assert.NoError(err)

	var ons []uint8
	for _, evt := range tl.Events {
		if evt.Kind == model.NoteOn {
			ons = append(ons, evt.Note)
		}
	}
	assert.Equal(12, len(ons))
	// I anchors at root position, V lands an octave-dropped first inversion;
	// the second repetition reuses the same voicings
	rep := []uint8{60, 64, 67, 59, 62, 67}
	assert.Equal(append(rep, rep...), ons)
}

func TestBuildDeltas(t *testing.T) {
	params := DefaultParams()
	tl, err := Build(model.Progression{"I", "V"}, 60, params)

	assert := assert.New(t)
	assert.NoError(err)

	// per chord: all note-ons at delta 0, the hold on the first note-off only
	for i := 0; i < len(tl.Events); {
		evt := tl.Events[i]
		if evt.Kind != model.NoteOn {
			i++
			continue
		}
		assert.Equal(uint32(0), evt.Delta)
		assert.Equal(uint32(0), tl.Events[i+1].Delta)
		assert.Equal(uint32(0), tl.Events[i+2].Delta)
		assert.Equal(params.ChordDurationTicks, tl.Events[i+3].Delta)
		assert.Equal(uint32(0), tl.Events[i+4].Delta)
		assert.Equal(uint32(0), tl.Events[i+5].Delta)
		i += 6
	}
}

func TestBuildNoteOffsMatchNoteOns(t *testing.T) {
	tl, err := Build(model.Progression{"I", "V", "IV", "vi"}, 65, DefaultParams())

	assert := assert.New(t)
	assert.NoError(err)

	// every note-on must be closed before the next chord's note-ons start
	open := make(map[uint8]int)
	for _, evt := range tl.Events {
		switch evt.Kind {
		case model.NoteOn:
			open[evt.Note]++
		case model.NoteOff:
			assert.Greater(open[evt.Note], 0, "note-off for %v without a matching note-on", evt.Note)
			open[evt.Note]--
			if open[evt.Note] == 0 {
				delete(open, evt.Note)
			}
		case model.Marker:
			assert.Empty(open, "marker emitted while notes are held")
		}
	}
	assert.Empty(open)
}

func TestBuildSingleChordHasNoGaps(t *testing.T) {
	tl, err := Build(model.Progression{"I"}, 69, DefaultParams())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(0, countMarkers(tl.Events, "gap"))
	assert.Equal(1, countMarkers(tl.Events, "rep_gap"))
	assert.Equal(uint64(2*960+960), TotalTicks(tl))
}

func TestBuildUnknownDegree(t *testing.T) {
	_, err := Build(model.Progression{"I", "ix"}, 60, DefaultParams())

	assert := assert.New(t)
	assert.True(errors.Is(err, theory.ErrUnknownDegree))
}
