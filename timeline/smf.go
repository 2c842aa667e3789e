package timeline

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/halfdim/progen/model"
)

// ToSMF renders a timeline as a single-track standard MIDI file. Markers
// become MIDI marker meta events so no timing information is lost.
func ToSMF(tl model.Timeline) *smf.SMF {
	var track smf.Track
	track.Add(0, smf.MetaTempo(tl.TempoBPM))
	for _, evt := range tl.Events {
		switch evt.Kind {
		case model.NoteOn:
			track.Add(evt.Delta, midi.NoteOn(0, evt.Note, evt.Velocity))
		case model.NoteOff:
			track.Add(evt.Delta, midi.NoteOff(0, evt.Note))
		case model.Marker:
			track.Add(evt.Delta, smf.MetaMarker(evt.Tag))
		}
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(tl.TicksPerBeat)
	s.Tracks = append(s.Tracks, track)
	return s
}
