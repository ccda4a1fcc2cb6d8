package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Chockers1/TheBigTebowski/internal/analytics"
	"github.com/Chockers1/TheBigTebowski/internal/model"
	"github.com/Chockers1/TheBigTebowski/internal/report"
)

var (
	h2hTop     int
	h2hStories bool
)

var h2hCmd = &cobra.Command{
	Use:   "h2h [<owner-a> <owner-b>]",
	Short: "Head-to-head records and narratives",
	Long: `Show the pairwise meeting grid for the selected scope, or a single
pairing when two owners are given. --stories adds the narrative rankings:
biggest upsets, high-scoring heartbreaks, and revenge wins.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runH2H,
}

func init() {
	h2hCmd.Flags().IntVar(&h2hTop, "top", 10, "number of rows per story ranking")
	h2hCmd.Flags().BoolVar(&h2hStories, "stories", false, "include upset/heartbreak/revenge rankings")
}

func runH2H(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("provide both owners of the pairing, or neither")
	}
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}
	games, db, err := openScope()
	if err != nil {
		return err
	}
	defer db.Close()

	records := analytics.ComputeHeadToHead(games)
	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "No games in the selected scope.")
		return nil
	}

	if len(args) == 2 {
		key := model.NewPairKey(args[0], args[1])
		rec, ok := records[key]
		if !ok {
			fmt.Fprintf(os.Stdout, "%s and %s have never met in the selected scope.\n", args[0], args[1])
			return nil
		}
		records = map[model.PairKey]model.HeadToHeadRecord{key: rec}
	}
	report.PrintHeadToHead(os.Stdout, records)

	if !h2hStories {
		return nil
	}

	ix := analytics.NewStandingsIndex(analytics.ComputeStandings(games))

	fmt.Fprintf(os.Stdout, "\n--- Biggest Upsets ---\n\n")
	upsets := analytics.BiggestUpsets(games, ix, h2hTop)
	if len(upsets) == 0 {
		fmt.Fprintln(os.Stdout, "No upsets in the selected scope.")
	} else {
		report.PrintUpsets(os.Stdout, upsets)
	}

	fmt.Fprintf(os.Stdout, "\n--- High-Scoring Heartbreaks ---\n\n")
	breaks := analytics.HighScoringHeartbreaks(games, h2hTop)
	if len(breaks) == 0 {
		fmt.Fprintln(os.Stdout, "No decisive games in the selected scope.")
	} else {
		report.PrintHeartbreaks(os.Stdout, breaks)
	}

	fmt.Fprintf(os.Stdout, "\n--- Revenge Secured (margin > %.0f) ---\n\n", cfg.RevengeMargin)
	revenge := analytics.RevengeWins(games, cfg.RevengeMargin)
	if len(revenge) == 0 {
		fmt.Fprintln(os.Stdout, "No qualifying revenge wins in the selected scope.")
	} else {
		if len(revenge) > h2hTop && h2hTop > 0 {
			revenge = revenge[:h2hTop]
		}
		report.PrintRevenge(os.Stdout, revenge)
	}
	return nil
}
