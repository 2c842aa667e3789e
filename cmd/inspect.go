package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halfdim/progen/midifile"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects a generated midi file",
	Long:  `Inspects a generated midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	s, err := midifile.Read(path)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}
	for i, track := range s.Tracks {
		fmt.Printf("track %v:\n", i)
		var absTicks uint64
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			fmt.Printf("  %6d %s\n", absTicks, evt.Message.String())
		}
	}
}
