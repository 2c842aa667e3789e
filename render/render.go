package render

import (
	"fmt"
	"os/exec"

	"github.com/halfdim/progen/constants"
)

// MidiToWav renders a .mid file to 44.1 kHz wav through fluidsynth.
func MidiToWav(midiPath, wavPath string) error {
	cmd := exec.Command("fluidsynth", "-ni", constants.GetSoundfontPath(),
		midiPath, "-F", wavPath, "-r", fmt.Sprint(constants.SampleRate))
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("fluidsynth failed: %v: %s", err, out)
	}
	return nil
}

// Speak synthesizes text with the macOS say command, forcing wav output so
// the concatenator only deals with one container format.
func Speak(text, wavPath string) error {
	cmd := exec.Command("say", "-o", wavPath,
		"--data-format=LEI16@44100", text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("say failed: %v: %s", err, out)
	}
	return nil
}
