package model

// Chord is a realized 3-note voicing. Note order is meaningful: inversions
// are not re-sorted by pitch.
type Chord = []uint8

// Progression is an ordered list of scale degree labels. The first label is
// always "I".
type Progression = []string
