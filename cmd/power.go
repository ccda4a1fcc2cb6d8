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
	powerSeason int
	powerWeek   int
)

var powerCmd = &cobra.Command{
	Use:   "power",
	Short: "Weekly power index snapshot",
	Long: `Blend each owner's cumulative win percentage, Elo rating, and average
scoring margin into one composite power score for a (season, week)
snapshot. Components are min-max normalized across that week's owners, and
the blend weights come from the engine config. Defaults to the latest week
of the scope's latest season.`,
	Args: cobra.NoArgs,
	RunE: runPower,
}

func init() {
	powerCmd.Flags().IntVar(&powerSeason, "at-season", 0, "snapshot season (default: latest in scope)")
	powerCmd.Flags().IntVar(&powerWeek, "at-week", 0, "snapshot week (default: latest in season)")
}

func runPower(cmd *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}
	games, db, err := openScope()
	if err != nil {
		return err
	}
	defer db.Close()

	season, week, ok := snapshotWeek(games, powerSeason, powerWeek)
	if !ok {
		fmt.Fprintln(os.Stdout, "No games in the selected scope.")
		return nil
	}

	// The power index for a season snapshot is computed over that season's
	// replay only, so the Elo component matches the season-scoped dashboard.
	scope := analytics.FilterGames(games, []int{season}, "")
	ratings := analytics.ComputeRatings(scope, cfg.InitialRating, cfg.KFactor)
	standings := analytics.ComputeStandings(scope)

	entries := analytics.ComputePowerIndex(ratings, standings, season, week, cfg.PowerWeights, cfg.InitialRating)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stdout, "No owners active in season %d week %d.\n", season, week)
		return nil
	}

	fmt.Fprintf(os.Stdout, "\nPower index — season %d, week %d\n\n", season, week)
	report.PrintPowerIndex(os.Stdout, entries)
	return nil
}

// snapshotWeek resolves the requested snapshot against the scope: latest
// season when season is 0, latest played week of that season when week is 0.
func snapshotWeek(games []model.GameRecord, season, week int) (int, int, bool) {
	haveAny := false
	latestSeason, latestWeekIn := 0, 0
	for _, g := range games {
		if !g.Valid() {
			continue
		}
		haveAny = true
		if g.Season > latestSeason {
			latestSeason = g.Season
		}
	}
	if !haveAny {
		return 0, 0, false
	}
	if season == 0 {
		season = latestSeason
	}
	for _, g := range games {
		if g.Valid() && g.Season == season && g.Week > latestWeekIn {
			latestWeekIn = g.Week
		}
	}
	if week == 0 {
		week = latestWeekIn
	}
	return season, week, true
}
