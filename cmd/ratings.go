package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Chockers1/TheBigTebowski/internal/analytics"
	"github.com/Chockers1/TheBigTebowski/internal/model"
	"github.com/Chockers1/TheBigTebowski/internal/report"
)

var ratingsHistoryOwner string

var ratingsCmd = &cobra.Command{
	Use:   "ratings",
	Short: "Elo leaderboard for the selected scope",
	Long: `Replay the scope's games chronologically and show the current Elo
leaderboard. Ratings always restart from the initial rating within the
selected scope, so a season-filtered view never leaks other seasons'
history. Use --history to show one owner's game-by-game rating movements.`,
	Args: cobra.NoArgs,
	RunE: runRatings,
}

func init() {
	ratingsCmd.Flags().StringVar(&ratingsHistoryOwner, "history", "", "show the per-game rating history for this owner")
}

func runRatings(cmd *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}
	games, db, err := openScope()
	if err != nil {
		return err
	}
	defer db.Close()

	history := analytics.ComputeRatings(games, cfg.InitialRating, cfg.KFactor)
	if len(history) == 0 {
		fmt.Fprintln(os.Stdout, "No rateable games in the selected scope.")
		return nil
	}

	if ratingsHistoryOwner != "" {
		var own []model.RatingHistoryEntry
		for _, e := range history {
			if e.Owner == ratingsHistoryOwner {
				own = append(own, e)
			}
		}
		if len(own) == 0 {
			fmt.Fprintf(os.Stderr, "No games found for owner %q in the selected scope.\n", ratingsHistoryOwner)
			return nil
		}
		report.PrintRatingHistory(os.Stdout, own)
		return nil
	}

	report.PrintRatingLeaderboard(os.Stdout, leaderboardRows(games, history))
	return nil
}

// leaderboardRows joins current ratings with whole-scope win/loss tallies,
// sorted by rating descending with wins then owner name as tie-breaks.
func leaderboardRows(games []model.GameRecord, history []model.RatingHistoryEntry) []report.RatingRow {
	current := analytics.CurrentRatings(history)

	tally := make(map[string]*report.RatingRow)
	row := func(owner string) *report.RatingRow {
		if tally[owner] == nil {
			tally[owner] = &report.RatingRow{Owner: owner, Elo: current[owner]}
		}
		return tally[owner]
	}
	for _, g := range games {
		if !g.Valid() {
			continue
		}
		for _, owner := range []string{g.HomeOwner, g.AwayOwner} {
			r := row(owner)
			r.Games++
			pf, pa := g.ScoreFor(owner)
			switch {
			case pf > pa:
				r.Wins++
			case pa > pf:
				r.Losses++
			default:
				r.Ties++
			}
		}
	}

	rows := make([]report.RatingRow, 0, len(tally))
	for _, r := range tally {
		if r.Games > 0 {
			r.WinPct = (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(r.Games)
		}
		rows = append(rows, *r)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Elo != rows[j].Elo {
			return rows[i].Elo > rows[j].Elo
		}
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		return rows[i].Owner < rows[j].Owner
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
