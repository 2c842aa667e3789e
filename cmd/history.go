package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halfdim/progen/db"
)

func init() {
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history <drill-id>...",
	Short: "Shows recorded drills",
	Long:  `Shows recorded drills`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need at least 1 drill id...")
		}
		history(args)
	},
}

func history(ids []string) {
	records, err := db.GetDrills(ids)
	if err != nil {
		panic("Could not fetch drill history: " + err.Error())
	}
	for _, id := range ids {
		rec, ok := records[id]
		if !ok {
			fmt.Printf("%v: not found\n", id)
			continue
		}
		fmt.Printf("%v: key %v, %v (%v), %v ticks, recorded %v\n",
			rec.Id, rec.Key, rec.Progression, rec.Narration, rec.TotalTicks, rec.CreatedAt)
	}
}
