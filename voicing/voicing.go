package voicing

import (
	"math"

	"github.com/halfdim/progen/model"
	"github.com/halfdim/progen/theory"
)

// The search walks this literal list in order and the first candidate wins
// ties, so the order itself is part of the contract.
var searchOrder = []struct {
	inversion   int
	octaveShift int
}{
	{0, 0}, {0, -12},
	{1, 0}, {1, -12},
	{2, 0}, {2, -12},
}

// Mean returns the arithmetic mean pitch of a voicing.
func Mean(notes model.Chord) float64 {
	var sum int
	for _, n := range notes {
		sum += int(n)
	}
	return float64(sum) / float64(len(notes))
}

// applyInversion rotates the triad so a different note is lowest.
// Inversion 1 moves the root up an octave, inversion 2 moves the root and
// the third up an octave.
func applyInversion(base [3]int, inversion int) [3]int {
	switch inversion {
	case 1:
		return [3]int{base[1], base[2], base[0] + 12}
	case 2:
		return [3]int{base[2], base[0] + 12, base[1] + 12}
	default:
		return base
	}
}

// Choose returns the voicing of label over tonic whose mean pitch lands
// closest to targetAvg, trying 3 inversions x 2 octave placements. Note
// order of the winning candidate is preserved.
func Choose(tonic uint8, label string, targetAvg float64) (model.Chord, error) {
	offsets, err := theory.Offsets(label)
	if err != nil {
		return nil, err
	}
	var base [3]int
	for i, o := range offsets {
		base[i] = int(tonic) + o
	}

	var best [3]int
	bestDiff := math.Inf(1)
	for _, c := range searchOrder {
		inverted := applyInversion(base, c.inversion)
		var candidate [3]int
		var sum int
		for i, n := range inverted {
			candidate[i] = n + c.octaveShift
			sum += candidate[i]
		}
		diff := math.Abs(float64(sum)/3 - targetAvg)
		if diff < bestDiff {
			bestDiff = diff
			best = candidate
		}
	}

	notes := make(model.Chord, len(best))
	for i, n := range best {
		notes[i] = uint8(n)
	}
	return notes, nil
}
