package analytics

import (
	"sort"

	"github.com/Chockers1/TheBigTebowski/internal/model"
)

// SeasonScoring is league-wide points-per-game for one season.
type SeasonScoring struct {
	Season int
	Games  int
	AvgPPG float64
}

// FinalsTally counts an owner's grand final and toilet bowl wins.
type FinalsTally struct {
	Owner       string
	Titles      int
	ToiletBowls int
}

// Overview is the high-level league summary shown by the summary command.
type Overview struct {
	Games         int
	Seasons       []int
	OwnerCount    int
	ScoringByYear []SeasonScoring
	Finals        []FinalsTally
	EloLeader     string
	EloLeaderVal  float64
}

// ComputeOverview derives the dashboard overview metrics from the scope:
// totals, per-season scoring, finals tallies, and the current Elo leader
// (ties on rating broken by owner name).
func ComputeOverview(games []model.GameRecord, initialRating, kFactor float64) Overview {
	ov := Overview{OwnerCount: len(Owners(games))}

	seasonSet := make(map[int]struct{})
	type scoring struct {
		points float64
		games  int
	}
	perSeason := make(map[int]*scoring)
	finals := make(map[string]*FinalsTally)

	touch := func(owner string) *FinalsTally {
		if finals[owner] == nil {
			finals[owner] = &FinalsTally{Owner: owner}
		}
		return finals[owner]
	}

	for _, g := range chronological(games) {
		ov.Games++
		seasonSet[g.Season] = struct{}{}
		if perSeason[g.Season] == nil {
			perSeason[g.Season] = &scoring{}
		}
		perSeason[g.Season].points += g.HomeScore + g.AwayScore
		perSeason[g.Season].games++

		if winner := g.Winner(); winner != "" {
			switch g.Type {
			case model.MatchGrandFinal:
				touch(winner).Titles++
			case model.MatchToiletBowl:
				touch(winner).ToiletBowls++
			}
		}
	}

	for s := range seasonSet {
		ov.Seasons = append(ov.Seasons, s)
	}
	sort.Ints(ov.Seasons)
	for _, s := range ov.Seasons {
		sc := perSeason[s]
		ov.ScoringByYear = append(ov.ScoringByYear, SeasonScoring{
			Season: s,
			Games:  sc.games,
			// Two scores per game.
			AvgPPG: sc.points / float64(2*sc.games),
		})
	}

	for _, t := range finals {
		ov.Finals = append(ov.Finals, *t)
	}
	sort.Slice(ov.Finals, func(i, j int) bool {
		if ov.Finals[i].Titles != ov.Finals[j].Titles {
			return ov.Finals[i].Titles > ov.Finals[j].Titles
		}
		return ov.Finals[i].Owner < ov.Finals[j].Owner
	})

	current := CurrentRatings(ComputeRatings(games, initialRating, kFactor))
	leaders := make([]string, 0, len(current))
	for o := range current {
		leaders = append(leaders, o)
	}
	sort.Strings(leaders)
	for _, o := range leaders {
		if ov.EloLeader == "" || current[o] > ov.EloLeaderVal {
			ov.EloLeader, ov.EloLeaderVal = o, current[o]
		}
	}
	return ov
}
