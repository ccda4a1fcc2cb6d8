package storage

import (
	"testing"

	"github.com/Chockers1/TheBigTebowski/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleGames() []model.GameRecord {
	return []model.GameRecord{
		{Season: 2023, Week: 1, Seq: 0, HomeOwner: "Alice", AwayOwner: "Bob", HomeScore: 120.5, AwayScore: 90, Type: model.MatchRegular},
		{Season: 2023, Week: 2, Seq: 1, HomeOwner: "Cara", AwayOwner: "Dan", HomeScore: 100, AwayScore: 95, Type: model.MatchRegular},
		{Season: 2023, Week: 16, Seq: 2, HomeOwner: "Alice", AwayOwner: "Cara", HomeScore: 130, AwayScore: 110, Type: model.MatchGrandFinal},
	}
}

func TestReplaceSourceAndGetGames(t *testing.T) {
	db := openMemDB(t)
	sig := "abc123"

	if err := db.ReplaceSource("league.xlsx", sig, sampleGames(), 2); err != nil {
		t.Fatalf("replace source: %v", err)
	}

	games, err := db.GetGames(sig)
	if err != nil {
		t.Fatalf("get games: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("got %d games, want 3", len(games))
	}
	for i, g := range games {
		if g.Seq != i {
			t.Errorf("game %d has seq %d, replay order broken", i, g.Seq)
		}
	}
	g := games[0]
	if g.HomeOwner != "Alice" || g.HomeScore != 120.5 || g.Type != model.MatchRegular {
		t.Errorf("round-trip mangled game: %+v", g)
	}
	if games[2].Type != model.MatchGrandFinal {
		t.Errorf("match type = %q, want grand final", games[2].Type)
	}
}

func TestReplaceSource_Idempotent(t *testing.T) {
	db := openMemDB(t)
	sig := "abc123"

	if err := db.ReplaceSource("league.xlsx", sig, sampleGames(), 0); err != nil {
		t.Fatal(err)
	}
	// Loading the same signature again replaces rather than duplicates.
	if err := db.ReplaceSource("league.xlsx", sig, sampleGames()[:1], 0); err != nil {
		t.Fatal(err)
	}

	games, err := db.GetGames(sig)
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 1 {
		t.Errorf("got %d games after replace, want 1", len(games))
	}
	sources, err := db.ListSources()
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 1 {
		t.Errorf("got %d sources after replace, want 1", len(sources))
	}
}

func TestSourceExists(t *testing.T) {
	db := openMemDB(t)
	sig := "abc123"

	exists, err := db.SourceExists(sig)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("empty cache should not report the source")
	}

	if err := db.ReplaceSource("league.csv", sig, sampleGames(), 0); err != nil {
		t.Fatal(err)
	}
	exists, err = db.SourceExists(sig)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("cached source should be reported")
	}
}

func TestSourceExists_SchemaVersionMismatch(t *testing.T) {
	db := openMemDB(t)
	sig := "abc123"
	// Simulate a source cached by an older schema.
	_, err := db.conn.Exec(`
		INSERT INTO sources(signature, path, schema_version, loaded_at, game_count, skipped_rows)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sig, "league.csv", SchemaVersion-1, "2024-01-01T00:00:00Z", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	exists, err := db.SourceExists(sig)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("a stale schema version must not count as cached")
	}
}

func TestSourceByPrefix(t *testing.T) {
	db := openMemDB(t)
	if err := db.ReplaceSource("a.csv", "aaa111", sampleGames(), 0); err != nil {
		t.Fatal(err)
	}
	if err := db.ReplaceSource("b.csv", "aab222", sampleGames(), 0); err != nil {
		t.Fatal(err)
	}

	src, err := db.SourceByPrefix("aaa")
	if err != nil {
		t.Fatal(err)
	}
	if src == nil || src.Signature != "aaa111" {
		t.Errorf("prefix lookup = %+v, want aaa111", src)
	}

	if _, err := db.SourceByPrefix("aa"); err == nil {
		t.Error("prefix matching two sources must be an error")
	}

	src, err = db.SourceByPrefix("zzz")
	if err != nil {
		t.Fatal(err)
	}
	if src != nil {
		t.Errorf("unmatched prefix = %+v, want nil", src)
	}
}

func TestLatestSource(t *testing.T) {
	db := openMemDB(t)

	src, err := db.LatestSource()
	if err != nil {
		t.Fatal(err)
	}
	if src != nil {
		t.Errorf("empty cache latest = %+v, want nil", src)
	}

	if err := db.ReplaceSource("league.csv", "aaa111", sampleGames(), 1); err != nil {
		t.Fatal(err)
	}
	src, err = db.LatestSource()
	if err != nil {
		t.Fatal(err)
	}
	if src == nil || src.Signature != "aaa111" {
		t.Fatalf("latest = %+v, want aaa111", src)
	}
	if src.GameCount != 3 || src.SkippedRows != 1 {
		t.Errorf("counts = %d/%d, want 3/1", src.GameCount, src.SkippedRows)
	}
}

func TestDeleteSource(t *testing.T) {
	db := openMemDB(t)
	sig := "abc123"
	if err := db.ReplaceSource("league.csv", sig, sampleGames(), 0); err != nil {
		t.Fatal(err)
	}
	if err := db.DeleteSource(sig); err != nil {
		t.Fatalf("delete: %v", err)
	}

	exists, err := db.SourceExists(sig)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("deleted source still reported as cached")
	}
	games, err := db.GetGames(sig)
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 0 {
		t.Errorf("deleted source still has %d games", len(games))
	}
}

func TestQueryRaw(t *testing.T) {
	db := openMemDB(t)
	if err := db.ReplaceSource("league.csv", "abc123", sampleGames(), 0); err != nil {
		t.Fatal(err)
	}

	cols, rows, err := db.QueryRaw("SELECT season, COUNT(*) AS n FROM games GROUP BY season")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(cols) != 2 || cols[0] != "season" || cols[1] != "n" {
		t.Errorf("columns = %v", cols)
	}
	if len(rows) != 1 || rows[0][0] != "2023" || rows[0][1] != "3" {
		t.Errorf("rows = %v", rows)
	}
}
