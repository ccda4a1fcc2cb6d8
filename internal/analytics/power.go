package analytics

import (
	"sort"

	"github.com/Chockers1/TheBigTebowski/internal/config"
	"github.com/Chockers1/TheBigTebowski/internal/model"
)

// ComputePowerIndex blends each active owner's cumulative win percentage,
// Elo rating, and average scoring margin into one composite score for the
// given (season, week) snapshot. The three inputs live on unrelated scales
// (percentage, Elo points, point differential), so each is min-max
// normalized across the week's cohort before blending. Rank is assigned by
// descending composite with a stable owner-name tie-break.
//
// ratings and standings must come from the same filtered scope as the
// snapshot. Owners with no games through the snapshot week are not part of
// the cohort.
func ComputePowerIndex(
	ratings []model.RatingHistoryEntry,
	standings []model.CumulativeStanding,
	season, week int,
	weights config.BlendWeights,
	initialRating float64,
) []model.PowerIndexEntry {
	ix := NewStandingsIndex(standings)

	owners := make(map[string]struct{})
	for _, r := range standings {
		owners[r.Owner] = struct{}{}
	}

	var entries []model.PowerIndexEntry
	for owner := range owners {
		st, ok := ix.StandingThrough(owner, season, week)
		if !ok {
			continue // not active in this snapshot
		}
		margin := (st.PointsFor - st.PointsAgainst) / float64(st.GamesPlayed)
		entries = append(entries, model.PowerIndexEntry{
			Owner:           owner,
			Season:          season,
			Week:            week,
			WinPctComponent: st.WinPct,
			EloComponent:    RatingThrough(ratings, owner, season, week, initialRating),
			MarginComponent: margin,
		})
	}
	if len(entries) == 0 {
		return nil
	}

	normalize(entries, func(e *model.PowerIndexEntry) *float64 { return &e.WinPctComponent })
	normalize(entries, func(e *model.PowerIndexEntry) *float64 { return &e.EloComponent })
	normalize(entries, func(e *model.PowerIndexEntry) *float64 { return &e.MarginComponent })

	for i := range entries {
		e := &entries[i]
		e.CompositeScore = weights.WinPct*e.WinPctComponent +
			weights.Elo*e.EloComponent +
			weights.Margin*e.MarginComponent
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CompositeScore != entries[j].CompositeScore {
			return entries[i].CompositeScore > entries[j].CompositeScore
		}
		return entries[i].Owner < entries[j].Owner
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// normalize rescales one component to [0,1] via min-max over the cohort.
// When the cohort is flat (max == min) every owner gets 0.5 so the component
// still contributes its weight evenly instead of dividing by zero.
func normalize(entries []model.PowerIndexEntry, field func(*model.PowerIndexEntry) *float64) {
	lo, hi := *field(&entries[0]), *field(&entries[0])
	for i := range entries {
		v := *field(&entries[i])
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	for i := range entries {
		p := field(&entries[i])
		if hi == lo {
			*p = 0.5
			continue
		}
		*p = (*p - lo) / (hi - lo)
	}
}
