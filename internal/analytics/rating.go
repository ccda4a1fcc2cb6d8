package analytics

import (
	"math"

	"github.com/Chockers1/TheBigTebowski/internal/model"
)

// eloDivisor is the logistic spread: a 400-point gap means the stronger side
// is expected to win ten times as often.
const eloDivisor = 400.0

// expectedScore is the standard logistic expectation for the first side.
func expectedScore(ratingA, ratingB float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (ratingB-ratingA)/eloDivisor))
}

// ComputeRatings replays the games in chronological order and returns the
// full per-game rating history, two entries per game. Every owner starts at
// initialRating within the replayed scope; ratings never continue across
// out-of-scope history, which keeps filtered views self-consistent.
//
// Rows with a missing owner or non-numeric score are skipped and leave all
// ratings untouched.
func ComputeRatings(games []model.GameRecord, initialRating, kFactor float64) []model.RatingHistoryEntry {
	ordered := chronological(games)
	ratings := make(map[string]float64, 16)
	history := make([]model.RatingHistoryEntry, 0, 2*len(ordered))

	for _, g := range ordered {
		ra, ok := ratings[g.HomeOwner]
		if !ok {
			ra = initialRating
		}
		rb, ok := ratings[g.AwayOwner]
		if !ok {
			rb = initialRating
		}

		expA := expectedScore(ra, rb)
		expB := 1.0 - expA

		var actA, actB float64
		switch {
		case g.HomeScore > g.AwayScore:
			actA, actB = 1.0, 0.0
		case g.AwayScore > g.HomeScore:
			actA, actB = 0.0, 1.0
		default:
			actA, actB = 0.5, 0.5
		}

		newA := ra + kFactor*(actA-expA)
		newB := rb + kFactor*(actB-expB)

		history = append(history,
			model.RatingHistoryEntry{
				Season: g.Season, Week: g.Week, Seq: g.Seq,
				Owner: g.HomeOwner, Opponent: g.AwayOwner,
				RatingBefore: ra, RatingAfter: newA, Delta: newA - ra,
			},
			model.RatingHistoryEntry{
				Season: g.Season, Week: g.Week, Seq: g.Seq,
				Owner: g.AwayOwner, Opponent: g.HomeOwner,
				RatingBefore: rb, RatingAfter: newB, Delta: newB - rb,
			},
		)

		ratings[g.HomeOwner] = newA
		ratings[g.AwayOwner] = newB
	}
	return history
}

// CurrentRatings reduces a rating history to each owner's final rating.
func CurrentRatings(history []model.RatingHistoryEntry) map[string]float64 {
	current := make(map[string]float64, 16)
	for _, e := range history {
		current[e.Owner] = e.RatingAfter
	}
	return current
}

// RatingThrough returns owner's rating after the last game they played at or
// before (season, week) in the given history, or fallback if they have none.
func RatingThrough(history []model.RatingHistoryEntry, owner string, season, week int, fallback float64) float64 {
	rating := fallback
	for _, e := range history {
		if e.Owner != owner {
			continue
		}
		if e.Season > season || (e.Season == season && e.Week > week) {
			break
		}
		rating = e.RatingAfter
	}
	return rating
}
