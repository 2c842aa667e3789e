package progression

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/halfdim/progen/model"
	"github.com/halfdim/progen/theory"
	"github.com/halfdim/progen/util"
)

// ErrInvalidLength is returned when a requested progression cannot be
// sampled without repeating a degree.
var ErrInvalidLength = errors.New("invalid progression length")

// Generator draws progressions and keys from its own random source, so a
// fixed seed reproduces a run exactly.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate returns a progression of exactly length chords starting on "I".
// Lengths below 1 are floored to 1. The non-tonic degrees are sampled
// without replacement, so length-1 may not exceed the additional pool.
func (g *Generator) Generate(length int) (model.Progression, error) {
	if length < 1 {
		length = 1
	}
	if length-1 > len(theory.AdditionalDegrees) {
		return nil, fmt.Errorf("%w: %v chords needs %v distinct non-tonic degrees but the pool has %v",
			ErrInvalidLength, length, length-1, len(theory.AdditionalDegrees))
	}

	prog := model.Progression{"I"}
	for _, i := range g.rng.Perm(len(theory.AdditionalDegrees))[:length-1] {
		prog = append(prog, theory.AdditionalDegrees[i])
	}
	return prog, nil
}

// GenerateRandom picks a total length uniformly between 2 and 4.
func (g *Generator) GenerateRandom() (model.Progression, error) {
	return g.Generate(2 + g.rng.Intn(3))
}

// RandomKey picks one of the 12 root keys and returns its name and tonic.
func (g *Generator) RandomKey() (string, uint8) {
	keys := util.GetKeys(theory.KeyTonics)
	// map iteration order would break seeded reproducibility
	sort.Strings(keys)
	name := keys[g.rng.Intn(len(keys))]
	return name, theory.KeyTonics[name]
}
