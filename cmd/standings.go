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
	standingsWeekly bool
	standingsFill   bool
)

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Cumulative standings for the selected scope",
	Long: `Show standings per owner and season. By default only each owner's final
cumulative row per season is shown; --weekly prints the full week-by-week
series and --fill forward-fills weeks without a game so every owner has a
row for every scope week.`,
	Args: cobra.NoArgs,
	RunE: runStandings,
}

func init() {
	standingsCmd.Flags().BoolVar(&standingsWeekly, "weekly", false, "show the full week-by-week cumulative series")
	standingsCmd.Flags().BoolVar(&standingsFill, "fill", false, "forward-fill weeks without a game (implies --weekly)")
}

func runStandings(cmd *cobra.Command, args []string) error {
	games, db, err := openScope()
	if err != nil {
		return err
	}
	defer db.Close()

	rows := analytics.ComputeStandings(games)
	if len(rows) == 0 {
		fmt.Fprintln(os.Stdout, "No games in the selected scope.")
		return nil
	}

	switch {
	case standingsFill:
		rows = analytics.ForwardFillStandings(rows, games)
	case !standingsWeekly:
		rows = finalRows(rows)
	}
	report.PrintStandings(os.Stdout, rows)
	return nil
}

// finalRows keeps the last cumulative row of each (owner, season) series.
// Input is ordered by (owner, season, week).
func finalRows(rows []model.CumulativeStanding) []model.CumulativeStanding {
	var out []model.CumulativeStanding
	for i, r := range rows {
		if i+1 < len(rows) && rows[i+1].Owner == r.Owner && rows[i+1].Season == r.Season {
			continue
		}
		out = append(out, r)
	}
	return out
}
