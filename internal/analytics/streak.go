package analytics

import (
	"fmt"
	"sort"

	"github.com/Chockers1/TheBigTebowski/internal/model"
)

// Condition is a per-game predicate evaluated from one owner's point of view.
// The detector is condition-agnostic: any predicate over a single game works.
type Condition struct {
	Name  string
	Holds func(g model.GameRecord, owner string) bool
}

// WonCondition holds when the owner won the game. Ties do not count.
func WonCondition() Condition {
	return Condition{Name: "won", Holds: func(g model.GameRecord, owner string) bool {
		return g.Winner() == owner
	}}
}

// LostCondition holds when the owner lost the game.
func LostCondition() Condition {
	return Condition{Name: "lost", Holds: func(g model.GameRecord, owner string) bool {
		return g.Loser() == owner
	}}
}

// ScoredAtLeastCondition holds when the owner scored at least n points.
func ScoredAtLeastCondition(n float64) Condition {
	return Condition{
		Name: fmt.Sprintf("scored %.0f+", n),
		Holds: func(g model.GameRecord, owner string) bool {
			pf, _ := g.ScoreFor(owner)
			return pf >= n
		},
	}
}

// WonByAtLeastCondition holds when the owner won by at least n points.
func WonByAtLeastCondition(n float64) Condition {
	return Condition{
		Name: fmt.Sprintf("won by %.0f+", n),
		Holds: func(g model.GameRecord, owner string) bool {
			return g.Winner() == owner && g.Margin() >= n
		},
	}
}

// NewAboveWeeklyAverageCondition holds when the owner outscored that week's
// league average. The average is computed per (season, week) over the scope
// passed in here, before any predicate runs; it is not a global constant, so
// the condition must be rebuilt whenever the scope changes.
func NewAboveWeeklyAverageCondition(scope []model.GameRecord) Condition {
	type week struct{ season, w int }
	sum := make(map[week]float64)
	n := make(map[week]int)
	for _, g := range scope {
		if !g.Valid() {
			continue
		}
		k := week{g.Season, g.Week}
		sum[k] += g.HomeScore + g.AwayScore
		n[k] += 2
	}
	return Condition{
		Name: "scored above weekly average",
		Holds: func(g model.GameRecord, owner string) bool {
			k := week{g.Season, g.Week}
			if n[k] == 0 {
				return false
			}
			pf, _ := g.ScoreFor(owner)
			return pf > sum[k]/float64(n[k])
		},
	}
}

// streak-scan states for the linear partition below.
const (
	noRun = iota
	inRun
)

// FindStreaks orders the owner's games chronologically, evaluates the
// condition per game, and partitions the resulting boolean series into
// maximal runs of consecutive true values; a single false breaks the run.
// The run whose end equals the scope's latest (season, week) is flagged
// active. Output is ordered by start (season, week).
func FindStreaks(games []model.GameRecord, owner string, cond Condition) []model.StreakSegment {
	lastSeason, lastWeek, haveScope := latestWeek(games)

	var segs []model.StreakSegment
	state := noRun
	var cur model.StreakSegment

	flush := func() {
		if state == inRun {
			segs = append(segs, cur)
		}
		state = noRun
	}

	for _, g := range chronological(games) {
		if !g.Involves(owner) {
			continue
		}
		if !cond.Holds(g, owner) {
			flush()
			continue
		}
		if state == noRun {
			cur = model.StreakSegment{
				Owner:       owner,
				Condition:   cond.Name,
				StartSeason: g.Season,
				StartWeek:   g.Week,
			}
			state = inRun
		}
		cur.EndSeason = g.Season
		cur.EndWeek = g.Week
		cur.Length++
	}
	flush()

	if haveScope {
		for i := range segs {
			if segs[i].EndSeason == lastSeason && segs[i].EndWeek == lastWeek {
				segs[i].Active = true
			}
		}
	}
	return segs
}

// StreakLeaderboard runs the detector for every owner in the scope and keeps
// each owner's best segment, sorted by length descending with ties broken by
// the most recent end, then owner name.
func StreakLeaderboard(games []model.GameRecord, cond Condition) []model.StreakSegment {
	var best []model.StreakSegment
	for _, owner := range Owners(games) {
		var top model.StreakSegment
		for _, s := range FindStreaks(games, owner, cond) {
			if s.Length > top.Length ||
				(s.Length == top.Length && endsAfter(s, top)) {
				top = s
			}
		}
		if top.Length > 0 {
			best = append(best, top)
		}
	}
	sort.SliceStable(best, func(i, j int) bool {
		if best[i].Length != best[j].Length {
			return best[i].Length > best[j].Length
		}
		if endsAfter(best[i], best[j]) {
			return true
		}
		if endsAfter(best[j], best[i]) {
			return false
		}
		return best[i].Owner < best[j].Owner
	})
	return best
}

func endsAfter(a, b model.StreakSegment) bool {
	if a.EndSeason != b.EndSeason {
		return a.EndSeason > b.EndSeason
	}
	return a.EndWeek > b.EndWeek
}
