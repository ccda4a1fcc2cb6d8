// Package analytics implements the league analytics engines: Elo-style
// ratings, cumulative standings, streak detection, the weekly power index,
// and head-to-head narratives.
//
// Every engine is a pure function of its input slice. Re-filtering the game
// log (by season, owner, ...) means recomputing over the smaller slice; no
// engine carries state across invocations, so a filtered view never leaks
// out-of-filter history. Running the same engine twice over the same input
// yields identical output.
package analytics

import (
	"sort"

	"github.com/Chockers1/TheBigTebowski/internal/model"
)

// chronological returns a sorted copy of games ordered by
// (season, week, seq), with invalid rows dropped. Seq preserves the source
// row order for games sharing a week.
func chronological(games []model.GameRecord) []model.GameRecord {
	out := make([]model.GameRecord, 0, len(games))
	for _, g := range games {
		if g.Valid() {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Season != out[j].Season {
			return out[i].Season < out[j].Season
		}
		if out[i].Week != out[j].Week {
			return out[i].Week < out[j].Week
		}
		return out[i].Seq < out[j].Seq
	})
	return out
}

// Owners returns the sorted set of owners appearing in the games.
func Owners(games []model.GameRecord) []string {
	seen := make(map[string]struct{})
	for _, g := range games {
		if !g.Valid() {
			continue
		}
		seen[g.HomeOwner] = struct{}{}
		seen[g.AwayOwner] = struct{}{}
	}
	owners := make([]string, 0, len(seen))
	for o := range seen {
		owners = append(owners, o)
	}
	sort.Strings(owners)
	return owners
}

// latestWeek returns the greatest (season, week) present in the scope.
// ok is false for an empty scope.
func latestWeek(games []model.GameRecord) (season, week int, ok bool) {
	for _, g := range games {
		if !g.Valid() {
			continue
		}
		if !ok || g.Season > season || (g.Season == season && g.Week > week) {
			season, week, ok = g.Season, g.Week, true
		}
	}
	return season, week, ok
}

// FilterGames restricts a game slice to the given seasons (empty = all) and,
// if owner is non-empty, to games that owner played in.
func FilterGames(games []model.GameRecord, seasons []int, owner string) []model.GameRecord {
	wantSeason := make(map[int]struct{}, len(seasons))
	for _, s := range seasons {
		wantSeason[s] = struct{}{}
	}
	out := make([]model.GameRecord, 0, len(games))
	for _, g := range games {
		if len(wantSeason) > 0 {
			if _, ok := wantSeason[g.Season]; !ok {
				continue
			}
		}
		if owner != "" && !g.Involves(owner) {
			continue
		}
		out = append(out, g)
	}
	return out
}
