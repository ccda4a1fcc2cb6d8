package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Chockers1/TheBigTebowski/internal/analytics"
	"github.com/Chockers1/TheBigTebowski/internal/report"
)

// summaryCmd is the cobra command for displaying a high-level league overview.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of league history",
	Long: `Display aggregate statistics for the selected scope: total games, seasons
and owners, league-wide scoring by season, grand final and toilet bowl
tallies, and the current Elo leader.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}
	games, db, err := openScope()
	if err != nil {
		return err
	}
	defer db.Close()

	ov := analytics.ComputeOverview(games, cfg.InitialRating, cfg.KFactor)
	if ov.Games == 0 {
		fmt.Fprintln(os.Stdout, "No games in the selected scope.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "\n=== League Summary ===\n\n")
	fmt.Fprintf(os.Stdout, "  Games     : %d\n", ov.Games)
	fmt.Fprintf(os.Stdout, "  Seasons   : %d (%d – %d)\n", len(ov.Seasons), ov.Seasons[0], ov.Seasons[len(ov.Seasons)-1])
	fmt.Fprintf(os.Stdout, "  Owners    : %d\n", ov.OwnerCount)
	fmt.Fprintf(os.Stdout, "  Elo leader: %s (%.0f)\n", ov.EloLeader, ov.EloLeaderVal)

	fmt.Fprintf(os.Stdout, "\n--- Scoring by Season ---\n\n")
	report.PrintSeasonScoring(os.Stdout, ov.ScoringByYear)

	if len(ov.Finals) > 0 {
		fmt.Fprintf(os.Stdout, "\n--- Finals ---\n\n")
		report.PrintFinalsTally(os.Stdout, ov.Finals)
	}
	return nil
}
