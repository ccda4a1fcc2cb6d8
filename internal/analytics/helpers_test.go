package analytics

import (
	"math"

	"github.com/Chockers1/TheBigTebowski/internal/model"
)

// Owner names for synthetic game logs.
const (
	ownerA = "Alice"
	ownerB = "Bob"
	ownerC = "Cara"
	ownerD = "Dan"
)

var seqCounter int

// mkGame builds one regular-season game. Seq is assigned in call order,
// mirroring ingestion order within a source.
func mkGame(season, week int, home, away string, hs, as float64) model.GameRecord {
	seqCounter++
	return model.GameRecord{
		Season:    season,
		Week:      week,
		Seq:       seqCounter,
		HomeOwner: home,
		AwayOwner: away,
		HomeScore: hs,
		AwayScore: as,
		Type:      model.MatchRegular,
	}
}

// mkBrokenGame builds a game with a missing (non-numeric) away score.
func mkBrokenGame(season, week int, home, away string) model.GameRecord {
	g := mkGame(season, week, home, away, 100, 0)
	g.AwayScore = math.NaN()
	return g
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
