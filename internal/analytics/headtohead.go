package analytics

import (
	"sort"

	"github.com/Chockers1/TheBigTebowski/internal/model"
)

// ComputeHeadToHead derives the meeting history for every canonical owner
// pair in the scope. Pair identity is canonical (lexicographic), so (a,b)
// and (b,a) are never counted twice.
func ComputeHeadToHead(games []model.GameRecord) map[model.PairKey]model.HeadToHeadRecord {
	records := make(map[model.PairKey]model.HeadToHeadRecord)

	for _, g := range chronological(games) {
		key := model.NewPairKey(g.HomeOwner, g.AwayOwner)
		rec, ok := records[key]
		if !ok {
			rec = model.HeadToHeadRecord{OwnerA: key.A, OwnerB: key.B}
		}

		pfA, pfB := g.ScoreFor(key.A)
		rec.Games++
		rec.PointsA += pfA
		rec.PointsB += pfB
		rec.LastMeetingSeason = g.Season
		rec.LastMeetingWeek = g.Week

		switch winner := g.Winner(); winner {
		case key.A:
			rec.WinsA++
		case key.B:
			rec.WinsB++
		default:
			rec.Ties++
		}

		// Current streak within the pair: consecutive wins by the same
		// owner at the tail of the meeting sequence. A tie clears it.
		switch winner := g.Winner(); winner {
		case "":
			rec.StreakOwner = ""
			rec.StreakLength = 0
		case rec.StreakOwner:
			rec.StreakLength++
		default:
			rec.StreakOwner = winner
			rec.StreakLength = 1
		}

		rec.AvgMargin = (rec.PointsA - rec.PointsB) / float64(rec.Games)
		records[key] = rec
	}
	return records
}

// SortedPairs returns the canonical pair keys of a head-to-head mapping in
// lexicographic order for deterministic iteration.
func SortedPairs(records map[model.PairKey]model.HeadToHeadRecord) []model.PairKey {
	keys := make([]model.PairKey, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})
	return keys
}

// BiggestUpsets ranks decisive games by how much worse the winner's season
// win percentage was than the loser's at the time of the game. Win
// percentages are evaluated through the prior week only, so the result of
// the game itself never feeds its own upset gap. The most negative gap ranks
// first. limit <= 0 returns all upsets (gap < 0).
func BiggestUpsets(games []model.GameRecord, ix *StandingsIndex, limit int) []model.UpsetGame {
	var upsets []model.UpsetGame
	for _, g := range chronological(games) {
		if g.IsTie() {
			continue
		}
		winner, loser := g.Winner(), g.Loser()
		wPct := ix.WinPctThrough(winner, g.Season, g.Week-1)
		lPct := ix.WinPctThrough(loser, g.Season, g.Week-1)
		gap := wPct - lPct
		if gap >= 0 {
			continue
		}
		upsets = append(upsets, model.UpsetGame{
			Game:         g,
			Winner:       winner,
			Loser:        loser,
			WinnerWinPct: wPct,
			LoserWinPct:  lPct,
			Gap:          gap,
		})
	}
	sort.SliceStable(upsets, func(i, j int) bool {
		return upsets[i].Gap < upsets[j].Gap
	})
	if limit > 0 && len(upsets) > limit {
		upsets = upsets[:limit]
	}
	return upsets
}

// HighScoringHeartbreaks ranks losses by points scored by the losing side,
// highest first. limit <= 0 returns all decisive games.
func HighScoringHeartbreaks(games []model.GameRecord, limit int) []model.HeartbreakGame {
	var breaks []model.HeartbreakGame
	for _, g := range chronological(games) {
		if g.IsTie() {
			continue
		}
		loser := g.Loser()
		lost, won := g.ScoreFor(loser)
		breaks = append(breaks, model.HeartbreakGame{
			Game:         g,
			Loser:        loser,
			LosingScore:  lost,
			WinningScore: won,
		})
	}
	sort.SliceStable(breaks, func(i, j int) bool {
		return breaks[i].LosingScore > breaks[j].LosingScore
	})
	if limit > 0 && len(breaks) > limit {
		breaks = breaks[:limit]
	}
	return breaks
}

// RevengeWins walks each canonical pair's meetings in chronological order
// and reports, per pair, the best qualifying revenge: a game in which the
// previous meeting's winner is this game's loser, with a flip margin greater
// than minMargin. Largest margin wins per pair; ties go to the most recent
// meeting. Output is ordered by margin descending, then pair key.
func RevengeWins(games []model.GameRecord, minMargin float64) []model.RevengeGame {
	type lastMeeting struct {
		winner string
		season int
		week   int
		margin float64
		seen   bool
	}
	prev := make(map[model.PairKey]lastMeeting)
	best := make(map[model.PairKey]model.RevengeGame)

	for _, g := range chronological(games) {
		key := model.NewPairKey(g.HomeOwner, g.AwayOwner)
		p := prev[key]
		winner := g.Winner()

		if p.seen && p.winner != "" && winner != "" && g.Loser() == p.winner && g.Margin() > minMargin {
			rev := model.RevengeGame{
				Pair:       key,
				Game:       g,
				Avenger:    winner,
				Victim:     p.winner,
				Margin:     g.Margin(),
				PrevSeason: p.season,
				PrevWeek:   p.week,
				PrevMargin: p.margin,
			}
			// Most recent meeting wins ties, so >= replaces on equal margin.
			if cur, ok := best[key]; !ok || rev.Margin >= cur.Margin {
				best[key] = rev
			}
		}

		prev[key] = lastMeeting{
			winner: winner,
			season: g.Season,
			week:   g.Week,
			margin: g.Margin(),
			seen:   true,
		}
	}

	out := make([]model.RevengeGame, 0, len(best))
	for _, r := range best {
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Margin != out[j].Margin {
			return out[i].Margin > out[j].Margin
		}
		if out[i].Pair.A != out[j].Pair.A {
			return out[i].Pair.A < out[j].Pair.A
		}
		return out[i].Pair.B < out[j].Pair.B
	})
	return out
}
