package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "progen",
	Short: "Chord progression ear training drills",
	Long:  `Generates randomized chord progression drills as MIDI and rendered audio.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
