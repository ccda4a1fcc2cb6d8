package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Chockers1/TheBigTebowski/internal/analytics"
	"github.com/Chockers1/TheBigTebowski/internal/config"
	"github.com/Chockers1/TheBigTebowski/internal/model"
	"github.com/Chockers1/TheBigTebowski/internal/report"
)

var (
	streaksCondition string
	streaksAll       bool
)

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Streak leaderboards over league history",
	Long: `Find maximal runs of consecutive games satisfying a condition, per owner.
Conditions:
  won            consecutive wins
  lost           consecutive losses
  highscore      consecutive games scoring at least the configured threshold
  blowout        consecutive wins by at least the configured margin
  above-average  consecutive games outscoring that week's league average

By default the best streak per owner is shown; --all lists every segment
(requires --owner). Streaks touching the scope's latest week are marked
active with "*".`,
	Args: cobra.NoArgs,
	RunE: runStreaks,
}

func init() {
	streaksCmd.Flags().StringVar(&streaksCondition, "condition", "won", "streak condition (won|lost|highscore|blowout|above-average)")
	streaksCmd.Flags().BoolVar(&streaksAll, "all", false, "show every segment for the selected owner, not just the best")
}

func runStreaks(cmd *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}
	games, db, err := openScope()
	if err != nil {
		return err
	}
	defer db.Close()

	if len(games) == 0 {
		fmt.Fprintln(os.Stdout, "No games in the selected scope.")
		return nil
	}

	cond, err := resolveCondition(streaksCondition, cfg, games)
	if err != nil {
		return err
	}

	if streaksAll {
		if filterOwner == "" {
			return fmt.Errorf("--all requires --owner")
		}
		segs := analytics.FindStreaks(games, filterOwner, cond)
		if len(segs) == 0 {
			fmt.Fprintf(os.Stdout, "No %q streaks for %s in the selected scope.\n", cond.Name, filterOwner)
			return nil
		}
		report.PrintStreaks(os.Stdout, segs)
		return nil
	}

	best := analytics.StreakLeaderboard(games, cond)
	if len(best) == 0 {
		fmt.Fprintf(os.Stdout, "No %q streaks in the selected scope.\n", cond.Name)
		return nil
	}
	report.PrintStreaks(os.Stdout, best)
	return nil
}

func resolveCondition(name string, cfg *config.Config, scope []model.GameRecord) (analytics.Condition, error) {
	switch strings.ToLower(name) {
	case "won", "win", "wins":
		return analytics.WonCondition(), nil
	case "lost", "loss", "losses":
		return analytics.LostCondition(), nil
	case "highscore":
		return analytics.ScoredAtLeastCondition(cfg.HighScoreThreshold), nil
	case "blowout":
		return analytics.WonByAtLeastCondition(cfg.BlowoutMargin), nil
	case "above-average":
		return analytics.NewAboveWeeklyAverageCondition(scope), nil
	default:
		return analytics.Condition{}, fmt.Errorf("unknown condition %q", name)
	}
}
