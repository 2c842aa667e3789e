package narration

import (
	"strings"

	"github.com/halfdim/progen/model"
	"github.com/halfdim/progen/theory"
)

// Text renders a progression as the spoken string read over the drill,
// e.g. "one to five to four".
func Text(prog model.Progression) (string, error) {
	parts := make([]string, 0, len(prog))
	for _, label := range prog {
		name, err := theory.SpokenName(label)
		if err != nil {
			return "", err
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, " to "), nil
}
