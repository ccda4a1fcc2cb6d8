// Package report renders the derived artifacts as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Chockers1/TheBigTebowski/internal/analytics"
	"github.com/Chockers1/TheBigTebowski/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// RatingRow is one line of the Elo leaderboard: current rating plus the
// owner's record over the same scope.
type RatingRow struct {
	Rank   int
	Owner  string
	Elo    float64
	Games  int
	Wins   int
	Losses int
	Ties   int
	WinPct float64
}

// PrintRatingLeaderboard writes the current Elo leaderboard.
func PrintRatingLeaderboard(w io.Writer, rows []RatingRow) {
	table := newTable(w)
	table.Header("RANK", "OWNER", "ELO", "G", "W", "L", "T", "WIN%")
	for _, r := range rows {
		table.Append(
			strconv.Itoa(r.Rank),
			r.Owner,
			fmt.Sprintf("%.0f", r.Elo),
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.Ties),
			fmt.Sprintf("%.3f", r.WinPct),
		)
	}
	table.Render()
}

// PrintRatingHistory writes the per-game rating movements for one owner.
func PrintRatingHistory(w io.Writer, history []model.RatingHistoryEntry) {
	table := newTable(w)
	table.Header("SEASON", "WEEK", "OPPONENT", "BEFORE", "AFTER", "DELTA")
	for _, e := range history {
		table.Append(
			strconv.Itoa(e.Season),
			strconv.Itoa(e.Week),
			e.Opponent,
			fmt.Sprintf("%.1f", e.RatingBefore),
			fmt.Sprintf("%.1f", e.RatingAfter),
			fmt.Sprintf("%+.1f", e.Delta),
		)
	}
	table.Render()
}

// PrintStandings writes cumulative standings rows as given.
func PrintStandings(w io.Writer, rows []model.CumulativeStanding) {
	table := newTable(w)
	table.Header("OWNER", "SEASON", "WEEK", "W", "L", "T", "PF", "PA", "WIN%")
	for _, r := range rows {
		table.Append(
			r.Owner,
			strconv.Itoa(r.Season),
			strconv.Itoa(r.Week),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.Ties),
			fmt.Sprintf("%.1f", r.PointsFor),
			fmt.Sprintf("%.1f", r.PointsAgainst),
			fmt.Sprintf("%.3f", r.WinPct),
		)
	}
	table.Render()
}

// PrintStreaks writes streak segments; active runs are marked with "*".
func PrintStreaks(w io.Writer, segs []model.StreakSegment) {
	table := newTable(w)
	table.Header(" ", "OWNER", "CONDITION", "LEN", "FROM", "TO")
	for _, s := range segs {
		marker := " "
		if s.Active {
			marker = "*"
		}
		table.Append(
			marker,
			s.Owner,
			s.Condition,
			strconv.Itoa(s.Length),
			fmt.Sprintf("%d wk %d", s.StartSeason, s.StartWeek),
			fmt.Sprintf("%d wk %d", s.EndSeason, s.EndWeek),
		)
	}
	table.Render()
}

// PrintPowerIndex writes a weekly power index snapshot.
func PrintPowerIndex(w io.Writer, entries []model.PowerIndexEntry) {
	table := newTable(w)
	table.Header("RANK", "OWNER", "COMPOSITE", "WIN%", "ELO", "MARGIN")
	for _, e := range entries {
		table.Append(
			strconv.Itoa(e.Rank),
			e.Owner,
			fmt.Sprintf("%.3f", e.CompositeScore),
			fmt.Sprintf("%.3f", e.WinPctComponent),
			fmt.Sprintf("%.3f", e.EloComponent),
			fmt.Sprintf("%.3f", e.MarginComponent),
		)
	}
	table.Render()
}

// PrintHeadToHead writes the pairwise meeting summary grid.
func PrintHeadToHead(w io.Writer, records map[model.PairKey]model.HeadToHeadRecord) {
	table := newTable(w)
	table.Header("OWNER A", "OWNER B", "G", "A WINS", "B WINS", "T", "PF A", "PF B", "AVG MARGIN", "LAST", "STREAK")
	for _, key := range analytics.SortedPairs(records) {
		r := records[key]
		streak := "—"
		if r.StreakOwner != "" {
			streak = fmt.Sprintf("%s x%d", r.StreakOwner, r.StreakLength)
		}
		table.Append(
			r.OwnerA,
			r.OwnerB,
			strconv.Itoa(r.Games),
			strconv.Itoa(r.WinsA),
			strconv.Itoa(r.WinsB),
			strconv.Itoa(r.Ties),
			fmt.Sprintf("%.1f", r.PointsA),
			fmt.Sprintf("%.1f", r.PointsB),
			fmt.Sprintf("%+.1f", r.AvgMargin),
			fmt.Sprintf("%d wk %d", r.LastMeetingSeason, r.LastMeetingWeek),
			streak,
		)
	}
	table.Render()
}

// PrintUpsets writes the biggest-upset ranking.
func PrintUpsets(w io.Writer, upsets []model.UpsetGame) {
	table := newTable(w)
	table.Header("SEASON", "WEEK", "WINNER", "WIN%", "LOSER", "WIN%", "GAP", "SCORE")
	for _, u := range upsets {
		table.Append(
			strconv.Itoa(u.Game.Season),
			strconv.Itoa(u.Game.Week),
			u.Winner,
			fmt.Sprintf("%.3f", u.WinnerWinPct),
			u.Loser,
			fmt.Sprintf("%.3f", u.LoserWinPct),
			fmt.Sprintf("%+.3f", u.Gap),
			scoreline(u.Game),
		)
	}
	table.Render()
}

// PrintHeartbreaks writes the high-scoring-loss ranking.
func PrintHeartbreaks(w io.Writer, breaks []model.HeartbreakGame) {
	table := newTable(w)
	table.Header("SEASON", "WEEK", "LOSER", "SCORED", "LOST TO", "SCORE")
	for _, b := range breaks {
		table.Append(
			strconv.Itoa(b.Game.Season),
			strconv.Itoa(b.Game.Week),
			b.Loser,
			fmt.Sprintf("%.1f", b.LosingScore),
			b.Game.Winner(),
			scoreline(b.Game),
		)
	}
	table.Render()
}

// PrintRevenge writes the revenge-secured ranking.
func PrintRevenge(w io.Writer, wins []model.RevengeGame) {
	table := newTable(w)
	table.Header("SEASON", "WEEK", "AVENGER", "VICTIM", "MARGIN", "PREV MEETING", "PREV MARGIN")
	for _, r := range wins {
		table.Append(
			strconv.Itoa(r.Game.Season),
			strconv.Itoa(r.Game.Week),
			r.Avenger,
			r.Victim,
			fmt.Sprintf("%.1f", r.Margin),
			fmt.Sprintf("%d wk %d", r.PrevSeason, r.PrevWeek),
			fmt.Sprintf("%.1f", r.PrevMargin),
		)
	}
	table.Render()
}

// PrintSeasonScoring writes league-wide points per game by season.
func PrintSeasonScoring(w io.Writer, rows []analytics.SeasonScoring) {
	table := newTable(w)
	table.Header("SEASON", "GAMES", "AVG PPG")
	for _, r := range rows {
		table.Append(
			strconv.Itoa(r.Season),
			strconv.Itoa(r.Games),
			fmt.Sprintf("%.1f", r.AvgPPG),
		)
	}
	table.Render()
}

// PrintFinalsTally writes grand final and toilet bowl counts by owner.
func PrintFinalsTally(w io.Writer, rows []analytics.FinalsTally) {
	table := newTable(w)
	table.Header("OWNER", "TITLES", "TOILET BOWLS")
	for _, r := range rows {
		table.Append(
			r.Owner,
			strconv.Itoa(r.Titles),
			strconv.Itoa(r.ToiletBowls),
		)
	}
	table.Render()
}

func scoreline(g model.GameRecord) string {
	return fmt.Sprintf("%s %.1f – %.1f %s", g.HomeOwner, g.HomeScore, g.AwayScore, g.AwayOwner)
}
