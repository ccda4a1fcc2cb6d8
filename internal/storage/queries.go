package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/Chockers1/TheBigTebowski/internal/model"
)

// SourceExists reports whether a source with the given signature is cached
// under the current schema version. An older schema version does not count:
// the caller is expected to replace it.
func (db *DB) SourceExists(signature string) (bool, error) {
	var count int
	err := db.conn.QueryRow(
		"SELECT COUNT(1) FROM sources WHERE signature = ? AND schema_version = ?",
		signature, SchemaVersion,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReplaceSource stores a normalized game set under its signature, removing
// any previous copy of the same signature first. The whole write is one
// transaction.
func (db *DB) ReplaceSource(path, signature string, games []model.GameRecord, skipped int) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM games WHERE source_signature = ?", signature); err != nil {
		return fmt.Errorf("clear games: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM sources WHERE signature = ?", signature); err != nil {
		return fmt.Errorf("clear source: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO sources(signature, path, schema_version, loaded_at, game_count, skipped_rows)
		VALUES (?, ?, ?, ?, ?, ?)`,
		signature, path, SchemaVersion, time.Now().UTC().Format(time.RFC3339),
		len(games), skipped,
	)
	if err != nil {
		return fmt.Errorf("insert source: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO games(source_signature, season, week, seq, home_owner, away_owner, home_score, away_score, match_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, g := range games {
		_, err = stmt.Exec(signature, g.Season, g.Week, g.Seq,
			g.HomeOwner, g.AwayOwner, g.HomeScore, g.AwayScore, string(g.Type))
		if err != nil {
			return fmt.Errorf("insert game seq %d: %w", g.Seq, err)
		}
	}
	return tx.Commit()
}

// ListSources returns all cached sources, newest first.
func (db *DB) ListSources() ([]model.SourceInfo, error) {
	rows, err := db.conn.Query(`
		SELECT signature, path, schema_version, loaded_at, game_count, skipped_rows
		FROM sources ORDER BY loaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []model.SourceInfo
	for rows.Next() {
		var s model.SourceInfo
		if err := rows.Scan(&s.Signature, &s.Path, &s.SchemaVersion, &s.LoadedAt, &s.GameCount, &s.SkippedRows); err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

// LatestSource returns the most recently loaded source, or nil if the cache
// is empty.
func (db *DB) LatestSource() (*model.SourceInfo, error) {
	sources, err := db.ListSources()
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, nil
	}
	return &sources[0], nil
}

// SourceByPrefix returns the unique source whose signature starts with
// prefix, or nil if none matches. An ambiguous prefix is an error.
func (db *DB) SourceByPrefix(prefix string) (*model.SourceInfo, error) {
	sources, err := db.ListSources()
	if err != nil {
		return nil, err
	}
	var found *model.SourceInfo
	for i := range sources {
		if strings.HasPrefix(sources[i].Signature, prefix) {
			if found != nil {
				return nil, fmt.Errorf("signature prefix %q is ambiguous", prefix)
			}
			found = &sources[i]
		}
	}
	return found, nil
}

// GetGames returns a source's game set ordered by (season, week, seq) — the
// replay order every engine expects.
func (db *DB) GetGames(signature string) ([]model.GameRecord, error) {
	rows, err := db.conn.Query(`
		SELECT season, week, seq, home_owner, away_owner, home_score, away_score, match_type
		FROM games WHERE source_signature = ?
		ORDER BY season, week, seq`, signature)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []model.GameRecord
	for rows.Next() {
		var g model.GameRecord
		var mt string
		if err := rows.Scan(&g.Season, &g.Week, &g.Seq, &g.HomeOwner, &g.AwayOwner, &g.HomeScore, &g.AwayScore, &mt); err != nil {
			return nil, err
		}
		g.Type = model.MatchType(mt)
		games = append(games, g)
	}
	return games, rows.Err()
}

// DeleteSource removes a cached source and its games.
func (db *DB) DeleteSource(signature string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec("DELETE FROM games WHERE source_signature = ?", signature); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM sources WHERE signature = ?", signature); err != nil {
		return err
	}
	return tx.Commit()
}
