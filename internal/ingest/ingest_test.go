package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Chockers1/TheBigTebowski/internal/model"
)

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gamelog.csv")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_CSVAliasHeaders(t *testing.T) {
	path := writeCSV(t, `Year,Wk,Team A Owner,Team B Owner,Team A Points,Team B Points,Notes
2023,1,Alice,Bob,120.5,90,
2023,2,Cara,Dan,100,95.25,Regular Season
`)
	res, err := LoadFile(path, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(res.Games) != 2 || res.Skipped != 0 {
		t.Fatalf("games/skipped = %d/%d, want 2/0", len(res.Games), res.Skipped)
	}

	g := res.Games[0]
	if g.Season != 2023 || g.Week != 1 || g.HomeOwner != "Alice" || g.AwayOwner != "Bob" {
		t.Errorf("row 1 = %+v", g)
	}
	if g.HomeScore != 120.5 || g.AwayScore != 90 {
		t.Errorf("scores = %f/%f, want 120.5/90", g.HomeScore, g.AwayScore)
	}
	if g.Type != model.MatchRegular {
		t.Errorf("type = %q, want regular", g.Type)
	}
	if len(res.Signature) != 64 {
		t.Errorf("signature %q is not a sha256 hex digest", res.Signature)
	}
}

func TestLoadFile_SignatureTracksContent(t *testing.T) {
	header := "Season,Week,HomeOwner,AwayOwner,HomeScore,AwayScore\n"
	a, err := LoadFile(writeCSV(t, header+"2023,1,Alice,Bob,100,90\n"), "")
	if err != nil {
		t.Fatal(err)
	}
	b, err := LoadFile(writeCSV(t, header+"2023,1,Alice,Bob,100,91\n"), "")
	if err != nil {
		t.Fatal(err)
	}
	if a.Signature == b.Signature {
		t.Error("different file contents must yield different signatures")
	}
}

func TestLoadFile_MalformedRowsSkipped(t *testing.T) {
	path := writeCSV(t, `Season,Week,HomeOwner,AwayOwner,HomeScore,AwayScore
2023,1,Alice,Bob,120,90
2023,two,Alice,Bob,120,90
2023,3,,Bob,120,90
2023,4,Alice,Bob,abc,90
2023,5,Alice,Alice,120,90

2023,6,Cara,Dan,100,95
`)
	res, err := LoadFile(path, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// Bad week, missing owner, bad score, self-game: 4 skips. The blank
	// line is ignored entirely.
	if res.Skipped != 4 {
		t.Errorf("skipped = %d, want 4", res.Skipped)
	}
	if len(res.Games) != 2 {
		t.Fatalf("kept %d games, want 2", len(res.Games))
	}
	// Seq increases over kept rows only.
	if res.Games[0].Seq != 0 || res.Games[1].Seq != 1 {
		t.Errorf("seqs = %d/%d, want 0/1", res.Games[0].Seq, res.Games[1].Seq)
	}
}

func TestLoadFile_MissingColumn(t *testing.T) {
	path := writeCSV(t, "Season,Week,HomeOwner,AwayOwner,HomeScore\n2023,1,Alice,Bob,120\n")
	if _, err := LoadFile(path, ""); err == nil {
		t.Fatal("expected an error for a game log without an away score column")
	}
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamelog.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path, ""); err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
}

func TestParseWeek(t *testing.T) {
	cases := []struct {
		in       string
		week     int
		matchTyp model.MatchType
		ok       bool
	}{
		{"7", 7, "", true},
		{"Grand Final (Week 16)", 16, model.MatchGrandFinal, true},
		{"Toilet Bowl (Week 16)", 16, model.MatchToiletBowl, true},
		{"Week 3", 3, "", true},
		{"Playoffs", 0, "", false},
		{"", 0, "", false},
	}
	for _, c := range cases {
		week, typ, ok := parseWeek(c.in)
		if week != c.week || typ != c.matchTyp || ok != c.ok {
			t.Errorf("parseWeek(%q) = (%d, %q, %v), want (%d, %q, %v)",
				c.in, week, typ, ok, c.week, c.matchTyp, c.ok)
		}
	}
}

func TestMatchTypeResolution(t *testing.T) {
	cases := []struct {
		cell string
		hint model.MatchType
		want model.MatchType
	}{
		{"", "", model.MatchRegular},
		{"Regular Season", "", model.MatchRegular},
		{"Championship", "", model.MatchGrandFinal},
		{"Grand Final", "", model.MatchGrandFinal},
		{"Toilet Bowl", "", model.MatchToiletBowl},
		// Explicit column beats the week-label hint.
		{"Regular", model.MatchGrandFinal, model.MatchRegular},
		// No column, hint from a labeled week.
		{"", model.MatchToiletBowl, model.MatchToiletBowl},
		// Unknown non-empty labels are preserved as "other".
		{"Consolation", "", model.MatchOther},
	}
	for _, c := range cases {
		if got := matchType(c.cell, c.hint); got != c.want {
			t.Errorf("matchType(%q, %q) = %q, want %q", c.cell, c.hint, got, c.want)
		}
	}
}

func TestNormKey(t *testing.T) {
	for in, want := range map[string]string{
		"Home Owner":    "homeowner",
		"home_owner":    "homeowner",
		"HomeOwner":     "homeowner",
		"Team A Points": "teamapoints",
	} {
		if got := normKey(in); got != want {
			t.Errorf("normKey(%q) = %q, want %q", in, got, want)
		}
	}
}
