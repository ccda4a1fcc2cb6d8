package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Chockers1/TheBigTebowski/internal/analytics"
	"github.com/Chockers1/TheBigTebowski/internal/model"
)

var exportOut string

// exportBundle is the JSON document consumed by the dashboard renderer. All
// series are joinable on (owner, season, week) or the canonical owner pair.
type exportBundle struct {
	GeneratedAt string                    `json:"generated_at"`
	Seasons     []int                     `json:"seasons,omitempty"`
	Owner       string                    `json:"owner,omitempty"`
	Games       int                       `json:"games"`
	Ratings     []model.RatingHistoryEntry `json:"ratings"`
	Standings   []model.CumulativeStanding `json:"standings"`
	Streaks     []model.StreakSegment      `json:"streaks"`
	PowerIndex  []model.PowerIndexEntry    `json:"power_index"`
	HeadToHead  []model.HeadToHeadRecord   `json:"head_to_head"`
	Upsets      []model.UpsetGame          `json:"upsets"`
	Heartbreaks []model.HeartbreakGame     `json:"heartbreaks"`
	Revenge     []model.RevengeGame        `json:"revenge"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all derived artifacts as JSON",
	Long: `Compute every artifact for the selected scope and write them as one JSON
document for the dashboard renderer: full rating history, cumulative
standings, win/loss streak leaderboards, the latest power index snapshot,
the head-to-head grid, and the narrative rankings.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}
	games, db, err := openScope()
	if err != nil {
		return err
	}
	defer db.Close()

	ratings := analytics.ComputeRatings(games, cfg.InitialRating, cfg.KFactor)
	standings := analytics.ComputeStandings(games)
	ix := analytics.NewStandingsIndex(standings)

	var streaks []model.StreakSegment
	for _, cond := range []analytics.Condition{
		analytics.WonCondition(),
		analytics.LostCondition(),
		analytics.ScoredAtLeastCondition(cfg.HighScoreThreshold),
		analytics.WonByAtLeastCondition(cfg.BlowoutMargin),
		analytics.NewAboveWeeklyAverageCondition(games),
	} {
		streaks = append(streaks, analytics.StreakLeaderboard(games, cond)...)
	}

	var power []model.PowerIndexEntry
	if season, week, ok := snapshotWeek(games, 0, 0); ok {
		scope := analytics.FilterGames(games, []int{season}, "")
		power = analytics.ComputePowerIndex(
			analytics.ComputeRatings(scope, cfg.InitialRating, cfg.KFactor),
			analytics.ComputeStandings(scope),
			season, week, cfg.PowerWeights, cfg.InitialRating,
		)
	}

	records := analytics.ComputeHeadToHead(games)
	h2h := make([]model.HeadToHeadRecord, 0, len(records))
	for _, key := range analytics.SortedPairs(records) {
		h2h = append(h2h, records[key])
	}

	bundle := exportBundle{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Seasons:     filterSeasons,
		Owner:       filterOwner,
		Games:       len(games),
		Ratings:     ratings,
		Standings:   standings,
		Streaks:     streaks,
		PowerIndex:  power,
		HeadToHead:  h2h,
		Upsets:      analytics.BiggestUpsets(games, ix, 0),
		Heartbreaks: analytics.HighScoringHeartbreaks(games, 0),
		Revenge:     analytics.RevengeWins(games, cfg.RevengeMargin),
	}

	out, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal bundle: %w", err)
	}
	if exportOut == "" {
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}
	if err := os.WriteFile(exportOut, out, 0644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %s (%d games)\n", exportOut, len(games))
	return nil
}
