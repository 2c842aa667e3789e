package theory

import (
	"errors"
	"fmt"

	"github.com/halfdim/progen/model"
)

// ErrUnknownDegree is returned for labels outside the fixed 8-degree set.
var ErrUnknownDegree = errors.New("unknown scale degree")

// Chord formulas in semitones relative to the tonic.
var chordFormulas = map[string][3]int{
	"I":    {0, 4, 7},
	"ii":   {2, 5, 9},
	"iii":  {4, 7, 11},
	"IV":   {5, 9, 12},
	"V":    {7, 11, 14},
	"vi":   {9, 12, 16},
	"vii°": {11, 14, 17},
	"#II":  {3, 7, 10},
}

// Spoken names used when narrating a progression.
var spokenNames = map[string]string{
	"I":    "one",
	"ii":   "two",
	"iii":  "three",
	"IV":   "four",
	"V":    "five",
	"vi":   "six",
	"vii°": "seven",
	"#II":  "sharp two",
}

// AdditionalDegrees are the degrees eligible to follow the opening "I".
var AdditionalDegrees = []string{"ii", "iii", "IV", "V", "vi", "vii°", "#II"}

// KeyTonics maps the 12 root keys (sharp notation) to their tonic MIDI notes.
var KeyTonics = map[string]uint8{
	"C":  60,
	"C#": 61,
	"D":  62,
	"D#": 63,
	"E":  64,
	"F":  65,
	"F#": 66,
	"G":  67,
	"G#": 68,
	"A":  69,
	"A#": 70,
	"B":  71,
}

func Offsets(label string) ([3]int, error) {
	offsets, ok := chordFormulas[label]
	if !ok {
		return [3]int{}, fmt.Errorf("%w: %q", ErrUnknownDegree, label)
	}
	return offsets, nil
}

func SpokenName(label string) (string, error) {
	name, ok := spokenNames[label]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDegree, label)
	}
	return name, nil
}

// ChordNotes computes the root position triad for label over the given tonic.
func ChordNotes(tonic uint8, label string) (model.Chord, error) {
	offsets, err := Offsets(label)
	if err != nil {
		return nil, err
	}
	notes := make(model.Chord, 0, len(offsets))
	for _, o := range offsets {
		notes = append(notes, uint8(int(tonic)+o))
	}
	return notes, nil
}
