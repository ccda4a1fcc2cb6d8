package model

import "math"

// MatchType classifies a game within a season.
type MatchType string

const (
	MatchRegular    MatchType = "regular"
	MatchGrandFinal MatchType = "grand_final"
	MatchToiletBowl MatchType = "toilet_bowl"
	MatchOther      MatchType = "other"
)

// GameRecord is one played game from the normalized game log. Seq is the
// ingestion order of the row within its source file and is the authoritative
// tie-break for games sharing a (season, week).
type GameRecord struct {
	Season    int
	Week      int
	Seq       int
	HomeOwner string
	AwayOwner string
	HomeScore float64
	AwayScore float64
	Type      MatchType
}

// Valid reports whether the record can participate in a replay: both owners
// present and distinct, both scores numeric.
func (g GameRecord) Valid() bool {
	if g.HomeOwner == "" || g.AwayOwner == "" || g.HomeOwner == g.AwayOwner {
		return false
	}
	return !math.IsNaN(g.HomeScore) && !math.IsNaN(g.AwayScore)
}

// IsTie reports whether both sides scored the same.
func (g GameRecord) IsTie() bool { return g.HomeScore == g.AwayScore }

// Winner returns the winning owner, or "" on a tie.
func (g GameRecord) Winner() string {
	switch {
	case g.HomeScore > g.AwayScore:
		return g.HomeOwner
	case g.AwayScore > g.HomeScore:
		return g.AwayOwner
	default:
		return ""
	}
}

// Loser returns the losing owner, or "" on a tie.
func (g GameRecord) Loser() string {
	switch {
	case g.HomeScore > g.AwayScore:
		return g.AwayOwner
	case g.AwayScore > g.HomeScore:
		return g.HomeOwner
	default:
		return ""
	}
}

// Margin returns the absolute score difference.
func (g GameRecord) Margin() float64 { return math.Abs(g.HomeScore - g.AwayScore) }

// Involves reports whether owner played in this game.
func (g GameRecord) Involves(owner string) bool {
	return g.HomeOwner == owner || g.AwayOwner == owner
}

// ScoreFor returns (points for, points against) from owner's perspective.
// Both values are 0 if owner did not play in this game.
func (g GameRecord) ScoreFor(owner string) (pf, pa float64) {
	switch owner {
	case g.HomeOwner:
		return g.HomeScore, g.AwayScore
	case g.AwayOwner:
		return g.AwayScore, g.HomeScore
	default:
		return 0, 0
	}
}

// Opponent returns the other owner of the game, or "" if owner did not play.
func (g GameRecord) Opponent(owner string) string {
	switch owner {
	case g.HomeOwner:
		return g.AwayOwner
	case g.AwayOwner:
		return g.HomeOwner
	default:
		return ""
	}
}

// RatingHistoryEntry records one owner's rating movement for one game.
// Two entries are emitted per game, one per side.
type RatingHistoryEntry struct {
	Season       int
	Week         int
	Seq          int
	Owner        string
	Opponent     string
	RatingBefore float64
	RatingAfter  float64
	Delta        float64
}

// CumulativeStanding is one owner's cumulative record through a given week of
// a season. WinPct counts ties as half a win: (W + 0.5*T) / games.
type CumulativeStanding struct {
	Owner         string
	Season        int
	Week          int
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
	GamesPlayed   int
	WinPct        float64
}

// StreakSegment is a maximal run of consecutive games satisfying a condition
// for one owner. Active marks the run that touches the latest week of the
// analyzed scope; at most one segment per (owner, condition) is active.
type StreakSegment struct {
	Owner       string
	Condition   string
	StartSeason int
	StartWeek   int
	EndSeason   int
	EndWeek     int
	Length      int
	Active      bool
}

// PowerIndexEntry is one owner's composite power score for a (season, week)
// snapshot. Components are min-max normalized across the week's cohort before
// blending, so all three live on a [0,1] scale.
type PowerIndexEntry struct {
	Owner           string
	Season          int
	Week            int
	WinPctComponent float64
	EloComponent    float64
	MarginComponent float64
	CompositeScore  float64
	Rank            int
}

// PairKey identifies an unordered owner pair with a fixed (lexicographic)
// ordering so (a,b) and (b,a) map to the same key.
type PairKey struct {
	A string
	B string
}

// NewPairKey canonicalizes an owner pair.
func NewPairKey(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

// HeadToHeadRecord summarizes all meetings of a canonical owner pair.
// AvgMargin is signed from OwnerA's perspective (positive: A outscores B on
// average). StreakOwner holds the pair's current consecutive-win streak; a tie
// clears it.
type HeadToHeadRecord struct {
	OwnerA            string
	OwnerB            string
	Games             int
	WinsA             int
	WinsB             int
	Ties              int
	PointsA           float64
	PointsB           float64
	AvgMargin         float64
	LastMeetingSeason int
	LastMeetingWeek   int
	StreakOwner       string
	StreakLength      int
}

// UpsetGame is a decisive game where the winner carried a worse season win
// percentage than the loser at the time of the game. Gap is winner win% minus
// loser win%, both evaluated through the prior week; more negative means a
// bigger upset.
type UpsetGame struct {
	Game         GameRecord
	Winner       string
	Loser        string
	WinnerWinPct float64
	LoserWinPct  float64
	Gap          float64
}

// HeartbreakGame is a loss ranked by how many points the losing side scored.
type HeartbreakGame struct {
	Game         GameRecord
	Loser        string
	LosingScore  float64
	WinningScore float64
}

// RevengeGame is a meeting where the previous meeting's winner is this game's
// loser and the flip margin exceeds the configured threshold.
type RevengeGame struct {
	Pair       PairKey
	Game       GameRecord
	Avenger    string
	Victim     string
	Margin     float64
	PrevSeason int
	PrevWeek   int
	PrevMargin float64
}

// SourceInfo describes one ingested game-log source in the cache.
type SourceInfo struct {
	Signature     string
	Path          string
	SchemaVersion int
	LoadedAt      string
	GameCount     int
	SkippedRows   int
}
