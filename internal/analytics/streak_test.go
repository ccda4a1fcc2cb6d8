package analytics

import (
	"testing"

	"github.com/Chockers1/TheBigTebowski/internal/model"
)

// aliceResults builds one game per week for Alice against Bob; wins[i] says
// whether Alice won week i+1.
func aliceResults(season int, wins []bool) []model.GameRecord {
	games := make([]model.GameRecord, 0, len(wins))
	for i, w := range wins {
		hs, as := 90.0, 100.0
		if w {
			hs, as = 100, 90
		}
		games = append(games, mkGame(season, i+1, ownerA, ownerB, hs, as))
	}
	return games
}

func TestFindStreaks_PartitionsRuns(t *testing.T) {
	// Win, win, loss, win, win, win: two segments, lengths 2 and 3, and the
	// second one is still running at the scope's latest week.
	games := aliceResults(2023, []bool{true, true, false, true, true, true})
	segs := FindStreaks(games, ownerA, WonCondition())
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}

	first, second := segs[0], segs[1]
	if first.Length != 2 || first.StartWeek != 1 || first.EndWeek != 2 {
		t.Errorf("first segment = %+v, want weeks 1-2", first)
	}
	if first.Active {
		t.Error("first segment ended mid-scope, must not be active")
	}
	if second.Length != 3 || second.StartWeek != 4 || second.EndWeek != 6 {
		t.Errorf("second segment = %+v, want weeks 4-6", second)
	}
	if !second.Active {
		t.Error("segment ending at the scope's latest week must be active")
	}
}

func TestFindStreaks_ActiveRequiresScopeEnd(t *testing.T) {
	// Alice's streak ends week 2, but Cara and Dan play week 3, so the
	// scope extends past it.
	games := aliceResults(2023, []bool{true, true})
	games = append(games, mkGame(2023, 3, ownerC, ownerD, 100, 90))

	segs := FindStreaks(games, ownerA, WonCondition())
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Active {
		t.Error("streak ending before the scope's latest week must not be active")
	}
}

func TestFindStreaks_SpansSeasons(t *testing.T) {
	games := []model.GameRecord{
		mkGame(2022, 13, ownerA, ownerB, 100, 90),
		mkGame(2022, 14, ownerA, ownerB, 100, 90),
		mkGame(2023, 1, ownerA, ownerB, 100, 90),
	}
	segs := FindStreaks(games, ownerA, WonCondition())
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment spanning the break, got %d", len(segs))
	}
	s := segs[0]
	if s.StartSeason != 2022 || s.EndSeason != 2023 || s.Length != 3 {
		t.Errorf("segment = %+v, want 2022 week 13 through 2023 week 1", s)
	}
}

func TestFindStreaks_LostCondition(t *testing.T) {
	games := aliceResults(2023, []bool{false, false, true})
	segs := FindStreaks(games, ownerA, LostCondition())
	if len(segs) != 1 || segs[0].Length != 2 {
		t.Fatalf("expected one losing streak of length 2, got %+v", segs)
	}
}

func TestFindStreaks_TieBreaksWinStreak(t *testing.T) {
	games := []model.GameRecord{
		mkGame(2023, 1, ownerA, ownerB, 100, 90),
		mkGame(2023, 2, ownerA, ownerB, 100, 100),
		mkGame(2023, 3, ownerA, ownerB, 100, 90),
	}
	segs := FindStreaks(games, ownerA, WonCondition())
	if len(segs) != 2 {
		t.Fatalf("a tie should break a win streak, got %+v", segs)
	}
}

func TestScoredAtLeastCondition(t *testing.T) {
	games := []model.GameRecord{
		mkGame(2023, 1, ownerA, ownerB, 101, 120),
		mkGame(2023, 2, ownerA, ownerB, 100, 120),
		mkGame(2023, 3, ownerA, ownerB, 99, 120),
	}
	segs := FindStreaks(games, ownerA, ScoredAtLeastCondition(100))
	if len(segs) != 1 || segs[0].Length != 2 {
		t.Fatalf("100+ scoring streak should cover weeks 1-2 only, got %+v", segs)
	}
	// Losing the games is irrelevant to a scoring condition.
	if segs[0].Condition != "scored 100+" {
		t.Errorf("condition name = %q", segs[0].Condition)
	}
}

func TestAboveWeeklyAverageCondition(t *testing.T) {
	// Week 1 scores: 120, 90, 100, 95 -> average 101.25. Only Alice clears it.
	games := []model.GameRecord{
		mkGame(2023, 1, ownerA, ownerB, 120, 90),
		mkGame(2023, 1, ownerC, ownerD, 100, 95),
	}
	cond := NewAboveWeeklyAverageCondition(games)

	if !cond.Holds(games[0], ownerA) {
		t.Error("120 is above the 101.25 weekly average")
	}
	if cond.Holds(games[1], ownerC) {
		t.Error("100 is below the 101.25 weekly average")
	}
}

func TestStreakLeaderboard_Ordering(t *testing.T) {
	// Alice: 3 straight wins over Bob. Cara: 2 straight wins over Dan.
	games := []model.GameRecord{
		mkGame(2023, 1, ownerA, ownerB, 100, 90),
		mkGame(2023, 2, ownerA, ownerB, 100, 90),
		mkGame(2023, 3, ownerA, ownerB, 100, 90),
		mkGame(2023, 1, ownerC, ownerD, 100, 90),
		mkGame(2023, 2, ownerC, ownerD, 100, 90),
	}
	board := StreakLeaderboard(games, WonCondition())
	if len(board) != 2 {
		t.Fatalf("expected 2 owners with win streaks, got %d", len(board))
	}
	if board[0].Owner != ownerA || board[0].Length != 3 {
		t.Errorf("leader = %+v, want %s with length 3", board[0], ownerA)
	}
	if board[1].Owner != ownerC || board[1].Length != 2 {
		t.Errorf("runner-up = %+v, want %s with length 2", board[1], ownerC)
	}
}

func TestStreakLeaderboard_KeepsBestPerOwner(t *testing.T) {
	games := aliceResults(2023, []bool{true, false, true, true, true})
	board := StreakLeaderboard(games, WonCondition())
	var alice model.StreakSegment
	for _, s := range board {
		if s.Owner == ownerA {
			alice = s
		}
	}
	if alice.Length != 3 || alice.StartWeek != 3 {
		t.Errorf("best segment = %+v, want the length-3 run starting week 3", alice)
	}
}

func TestFindStreaks_EmptyScope(t *testing.T) {
	if segs := FindStreaks(nil, ownerA, WonCondition()); len(segs) != 0 {
		t.Errorf("expected no segments, got %+v", segs)
	}
}
