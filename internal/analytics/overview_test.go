package analytics

import (
	"testing"

	"github.com/Chockers1/TheBigTebowski/internal/model"
)

func TestComputeOverview(t *testing.T) {
	final := mkGame(2022, 16, ownerA, ownerB, 130, 100)
	final.Type = model.MatchGrandFinal
	bowl := mkGame(2022, 16, ownerC, ownerD, 80, 95)
	bowl.Type = model.MatchToiletBowl

	games := []model.GameRecord{
		mkGame(2022, 1, ownerA, ownerB, 120, 80), // 200 points
		mkGame(2022, 2, ownerC, ownerD, 110, 90), // 200 points
		final,                                    // 230 points
		bowl,                                     // 175 points
		mkGame(2023, 1, ownerA, ownerB, 100, 90),
	}
	ov := ComputeOverview(games, 1000, 32)

	if ov.Games != 5 || ov.OwnerCount != 4 {
		t.Errorf("games/owners = %d/%d, want 5/4", ov.Games, ov.OwnerCount)
	}
	if len(ov.Seasons) != 2 || ov.Seasons[0] != 2022 || ov.Seasons[1] != 2023 {
		t.Errorf("seasons = %v, want [2022 2023]", ov.Seasons)
	}

	if len(ov.ScoringByYear) != 2 {
		t.Fatalf("expected 2 scoring rows, got %d", len(ov.ScoringByYear))
	}
	// 2022: 805 points over 4 games, 8 scores.
	s2022 := ov.ScoringByYear[0]
	if s2022.Games != 4 || !almostEqual(s2022.AvgPPG, 805.0/8.0) {
		t.Errorf("2022 scoring = %+v, want 4 games at %.4f ppg", s2022, 805.0/8.0)
	}

	if len(ov.Finals) != 2 {
		t.Fatalf("expected 2 finals tallies, got %d", len(ov.Finals))
	}
	// Title winners sort ahead of toilet bowl winners.
	if ov.Finals[0].Owner != ownerA || ov.Finals[0].Titles != 1 {
		t.Errorf("finals leader = %+v, want %s with 1 title", ov.Finals[0], ownerA)
	}
	if ov.Finals[1].Owner != ownerD || ov.Finals[1].ToiletBowls != 1 {
		t.Errorf("toilet bowl tally = %+v, want %s with 1", ov.Finals[1], ownerD)
	}

	// Alice won all four of her games; she must hold the Elo lead.
	if ov.EloLeader != ownerA {
		t.Errorf("elo leader = %s, want %s", ov.EloLeader, ownerA)
	}
	if ov.EloLeaderVal <= 1000 {
		t.Errorf("leader rating = %f, want above the initial rating", ov.EloLeaderVal)
	}
}

func TestComputeOverview_EmptyScope(t *testing.T) {
	ov := ComputeOverview(nil, 1000, 32)
	if ov.Games != 0 || ov.OwnerCount != 0 || ov.EloLeader != "" {
		t.Errorf("empty scope overview = %+v", ov)
	}
}
