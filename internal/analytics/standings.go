package analytics

import (
	"sort"

	"github.com/Chockers1/TheBigTebowski/internal/model"
)

type ownerSeason struct {
	owner  string
	season int
}

type ownerWeek struct {
	owner  string
	season int
	week   int
}

// ComputeStandings walks each owner's games chronologically and emits one
// cumulative row per (owner, season, week) the owner actually played in.
// Output is ordered by (owner, season, week). Counts reset at season
// boundaries; win percentage counts ties as half a win.
func ComputeStandings(games []model.GameRecord) []model.CumulativeStanding {
	ordered := chronological(games)

	type ledger struct {
		season             int
		wins, losses, ties int
		pf, pa             float64
	}
	running := make(map[string]*ledger)
	// Latest row index per (owner, season, week): multiple games in one week
	// collapse into a single final row.
	rowIdx := make(map[ownerWeek]int)
	var rows []model.CumulativeStanding

	record := func(owner string, g model.GameRecord) {
		led := running[owner]
		if led == nil || led.season != g.Season {
			led = &ledger{season: g.Season}
			running[owner] = led
		}
		pf, pa := g.ScoreFor(owner)
		led.pf += pf
		led.pa += pa
		switch {
		case pf > pa:
			led.wins++
		case pa > pf:
			led.losses++
		default:
			led.ties++
		}

		played := led.wins + led.losses + led.ties
		row := model.CumulativeStanding{
			Owner:         owner,
			Season:        g.Season,
			Week:          g.Week,
			Wins:          led.wins,
			Losses:        led.losses,
			Ties:          led.ties,
			PointsFor:     led.pf,
			PointsAgainst: led.pa,
			GamesPlayed:   played,
			WinPct:        (float64(led.wins) + 0.5*float64(led.ties)) / float64(played),
		}

		key := ownerWeek{owner, g.Season, g.Week}
		if i, seen := rowIdx[key]; seen {
			rows[i] = row
			return
		}
		rowIdx[key] = len(rows)
		rows = append(rows, row)
	}

	for _, g := range ordered {
		record(g.HomeOwner, g)
		record(g.AwayOwner, g)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Owner != rows[j].Owner {
			return rows[i].Owner < rows[j].Owner
		}
		if rows[i].Season != rows[j].Season {
			return rows[i].Season < rows[j].Season
		}
		return rows[i].Week < rows[j].Week
	})
	return rows
}

// ForwardFillStandings closes per-owner week gaps inside a season by
// repeating the owner's last known cumulative row for every scope week
// between their first and last played week, so joins against other per-week
// series never see a gap. games defines the scope's week set.
func ForwardFillStandings(rows []model.CumulativeStanding, games []model.GameRecord) []model.CumulativeStanding {
	// All weeks observed per season across the whole scope.
	weekSet := make(map[int]map[int]struct{})
	for _, g := range games {
		if !g.Valid() {
			continue
		}
		if weekSet[g.Season] == nil {
			weekSet[g.Season] = make(map[int]struct{})
		}
		weekSet[g.Season][g.Week] = struct{}{}
	}
	weeksOf := func(season int) []int {
		ws := make([]int, 0, len(weekSet[season]))
		for w := range weekSet[season] {
			ws = append(ws, w)
		}
		sort.Ints(ws)
		return ws
	}

	grouped := make(map[ownerSeason][]model.CumulativeStanding)
	var order []ownerSeason
	for _, r := range rows {
		k := ownerSeason{r.Owner, r.Season}
		if _, ok := grouped[k]; !ok {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], r)
	}

	var out []model.CumulativeStanding
	for _, k := range order {
		played := grouped[k]
		have := make(map[int]model.CumulativeStanding, len(played))
		for _, r := range played {
			have[r.Week] = r
		}
		first, last := played[0].Week, played[len(played)-1].Week
		lastRow := played[0]
		for _, w := range weeksOf(k.season) {
			if w < first || w > last {
				continue
			}
			if r, ok := have[w]; ok {
				lastRow = r
				out = append(out, r)
				continue
			}
			fill := lastRow
			fill.Week = w
			out = append(out, fill)
		}
	}
	return out
}

// StandingsIndex answers "season win percentage through week W" lookups, the
// side input the head-to-head analyzer needs for upset gaps.
type StandingsIndex struct {
	rows map[string][]model.CumulativeStanding // per owner, (season, week) ascending
}

// NewStandingsIndex builds an index over ComputeStandings output.
func NewStandingsIndex(rows []model.CumulativeStanding) *StandingsIndex {
	ix := &StandingsIndex{rows: make(map[string][]model.CumulativeStanding)}
	for _, r := range rows {
		ix.rows[r.Owner] = append(ix.rows[r.Owner], r)
	}
	return ix
}

// WinPctThrough returns owner's season win percentage through the latest
// played week at or before week in the given season, or 0 if the owner has
// no games by then.
func (ix *StandingsIndex) WinPctThrough(owner string, season, week int) float64 {
	var pct float64
	for _, r := range ix.rows[owner] {
		if r.Season != season || r.Week > week {
			continue
		}
		pct = r.WinPct
	}
	return pct
}

// StandingThrough returns owner's cumulative row through the latest played
// week at or before week in season; ok is false if no such row exists.
func (ix *StandingsIndex) StandingThrough(owner string, season, week int) (model.CumulativeStanding, bool) {
	var found model.CumulativeStanding
	var ok bool
	for _, r := range ix.rows[owner] {
		if r.Season != season || r.Week > week {
			continue
		}
		found, ok = r, true
	}
	return found, ok
}
