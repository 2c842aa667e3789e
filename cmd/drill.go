package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/halfdim/progen/constants"
	"github.com/halfdim/progen/db"
	"github.com/halfdim/progen/model"
	"github.com/halfdim/progen/narration"
	"github.com/halfdim/progen/progression"
	"github.com/halfdim/progen/render"
	"github.com/halfdim/progen/timeline"
)

var (
	drillCount   int
	drillSeed    int64
	drillOut     string
	drillMidiDir string
	drillNoAudio bool
)

func init() {
	drillCmd.Flags().IntVar(&drillCount, "count", 3, "number of progressions to generate")
	drillCmd.Flags().Int64Var(&drillSeed, "seed", 0, "random seed (0 seeds from the clock)")
	drillCmd.Flags().StringVar(&drillOut, "out", "chord_progressions.wav", "final audio file")
	drillCmd.Flags().StringVar(&drillMidiDir, "midi-dir", "", "keep generated .mid files in this directory")
	drillCmd.Flags().BoolVar(&drillNoAudio, "no-audio", false, "skip fluidsynth/say rendering")
	rootCmd.AddCommand(drillCmd)
}

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Generates drill audio",
	Long:  `Generates drill audio`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDrill(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func runDrill() error {
	seed := drillSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := progression.NewGenerator(rand.New(rand.NewSource(seed)))

	tmpDir, err := os.MkdirTemp("", "progen")
	if err != nil {
		return fmt.Errorf("could not create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	midiDir := tmpDir
	if drillMidiDir != "" {
		if err := os.MkdirAll(drillMidiDir, 0777); err != nil {
			return fmt.Errorf("could not create midi dir: %w", err)
		}
		midiDir = drillMidiDir
	}

	var segments []render.Segment
	var records []model.DrillRecord

	for i := 0; i < drillCount; i++ {
		keyName, tonic := gen.RandomKey()
		prog, err := gen.GenerateRandom()
		if err != nil {
			return err
		}
		text, err := narration.Text(prog)
		if err != nil {
			return err
		}
		fmt.Printf("Progression in key %v: %v\n", keyName, text)

		tl, err := timeline.Build(prog, tonic, timeline.DefaultParams())
		if err != nil {
			return err
		}

		id := uuid.New().String()
		midiPath := filepath.Join(midiDir, id+".mid")
		if err := timeline.ToSMF(tl).WriteFile(midiPath); err != nil {
			return fmt.Errorf("could not write %v: %w", midiPath, err)
		}

		records = append(records, model.DrillRecord{
			Id:          id,
			Key:         keyName,
			Progression: strings.Join(prog, " "),
			Narration:   text,
			TotalTicks:  timeline.TotalTicks(tl),
			CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		})

		if drillNoAudio {
			continue
		}

		chordWav := filepath.Join(tmpDir, id+".wav")
		if err := render.MidiToWav(midiPath, chordWav); err != nil {
			return err
		}
		ttsWav := filepath.Join(tmpDir, id+"_tts.wav")
		if err := render.Speak(text, ttsWav); err != nil {
			return err
		}

		segments = append(segments,
			render.Segment{Path: chordWav, PauseAfter: constants.ProgToSpeechPause},
			render.Segment{Path: ttsWav, GainDB: -6, PauseAfter: constants.EndPause})
	}

	if !drillNoAudio {
		if err := render.Concat(drillOut, segments); err != nil {
			return err
		}
		fmt.Printf("Final audio saved as %v\n", drillOut)
	}

	if constants.HistoryEnabled() {
		if err := db.PutDrills(records); err != nil {
			fmt.Printf("Could not record drill history: %v\n", err)
		}
	}
	return nil
}
