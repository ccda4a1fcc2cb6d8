// Package ingest turns a game-log spreadsheet or CSV into the normalized
// GameRecord set consumed by the analytics engines. Column names are matched
// leniently against known aliases, so exports with "Year"/"Season" or
// "HomeOwner"/"Owner A" headers all normalize to the same schema. Rows with
// a missing owner or non-numeric score are counted and skipped, never fatal.
package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Chockers1/TheBigTebowski/internal/model"
)

// Result is a normalized game-log source. Signature is the SHA-256 of the
// raw file bytes and identifies the source in the cache.
type Result struct {
	Games     []model.GameRecord
	Signature string
	Skipped   int
}

// LoadFile reads a game log from path. .xlsx and .xlsm files are read via
// the named sheet ("gamelog" when sheet is empty); .csv files ignore the
// sheet argument.
func LoadFile(path, sheet string) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	sum := sha256.Sum256(raw)
	signature := hex.EncodeToString(sum[:])

	var rows [][]string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		rows, err = workbookRows(raw, sheet)
	case ".csv":
		rows, err = csvRows(raw)
	default:
		return nil, fmt.Errorf("unsupported source type %q", ext)
	}
	if err != nil {
		return nil, err
	}

	games, skipped, err := normalizeRows(rows)
	if err != nil {
		return nil, err
	}
	return &Result{Games: games, Signature: signature, Skipped: skipped}, nil
}

// normKey reduces a header cell to lowercase alphanumerics so "Home Owner",
// "HomeOwner" and "home_owner" all match the same alias.
func normKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Header aliases observed across league exports.
var columnAliases = map[string][]string{
	"season":    {"season", "year"},
	"week":      {"week", "wk"},
	"homeowner": {"homeowner", "ownera", "aowner", "teamaowner", "owner"},
	"awayowner": {"awayowner", "ownerb", "bowner", "teambowner", "owner1"},
	"homescore": {"homescore", "teamapoints", "apoints", "pointsa", "scorea", "ascore"},
	"awayscore": {"awayscore", "teambpoints", "bpoints", "pointsb", "scoreb", "bscore"},
	"matchtype": {"matchtype", "type", "notes"},
}

func resolveColumns(header []string) (map[string]int, error) {
	byNorm := make(map[string]int, len(header))
	for i, h := range header {
		key := normKey(h)
		if _, taken := byNorm[key]; !taken {
			byNorm[key] = i
		}
	}
	cols := make(map[string]int)
	for field, aliases := range columnAliases {
		for _, a := range aliases {
			if i, ok := byNorm[a]; ok {
				cols[field] = i
				break
			}
		}
	}
	for _, required := range []string{"season", "week", "homeowner", "awayowner", "homescore", "awayscore"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("game log is missing a %s column", required)
		}
	}
	return cols, nil
}

// normalizeRows converts header+data rows into GameRecords, assigning each
// kept row a monotonically increasing Seq. Source row order is thereby made
// an explicit field instead of an implicit contract, and it is what breaks
// (season, week) ties during every replay.
func normalizeRows(rows [][]string) ([]model.GameRecord, int, error) {
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("game log is empty")
	}
	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, 0, err
	}

	cell := func(row []string, field string) string {
		i, ok := cols[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var games []model.GameRecord
	skipped := 0
	seq := 0
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		season, err := strconv.Atoi(cell(row, "season"))
		if err != nil {
			skipped++
			continue
		}
		week, weekType, ok := parseWeek(cell(row, "week"))
		if !ok {
			skipped++
			continue
		}
		home := cell(row, "homeowner")
		away := cell(row, "awayowner")
		hs, errH := strconv.ParseFloat(cell(row, "homescore"), 64)
		as, errA := strconv.ParseFloat(cell(row, "awayscore"), 64)

		g := model.GameRecord{
			Season:    season,
			Week:      week,
			Seq:       seq,
			HomeOwner: home,
			AwayOwner: away,
			HomeScore: hs,
			AwayScore: as,
			Type:      matchType(cell(row, "matchtype"), weekType),
		}
		if errH != nil || errA != nil || !g.Valid() {
			skipped++
			continue
		}
		seq++
		games = append(games, g)
	}
	return games, skipped, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseWeek accepts a plain week number or a labeled final like
// "Grand Final (Week 16)". A label without any digits cannot be placed on
// the season timeline and marks the row malformed.
func parseWeek(s string) (week int, t model.MatchType, ok bool) {
	if w, err := strconv.Atoi(s); err == nil {
		return w, "", true
	}
	t = matchTypeFromLabel(s)
	digits := strings.Builder{}
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, t, false
	}
	w, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, t, false
	}
	return w, t, true
}

func matchTypeFromLabel(s string) model.MatchType {
	switch n := normKey(s); {
	case strings.Contains(n, "grandfinal"):
		return model.MatchGrandFinal
	case strings.Contains(n, "toiletbowl"):
		return model.MatchToiletBowl
	default:
		return ""
	}
}

// matchType resolves the final match type: an explicit column wins, then a
// week-label hint, then regular.
func matchType(cellValue string, weekHint model.MatchType) model.MatchType {
	switch normKey(cellValue) {
	case "regular", "regularseason":
		return model.MatchRegular
	case "grandfinal", "championship", "final":
		return model.MatchGrandFinal
	case "toiletbowl":
		return model.MatchToiletBowl
	}
	if fromLabel := matchTypeFromLabel(cellValue); fromLabel != "" {
		return fromLabel
	}
	if weekHint != "" {
		return weekHint
	}
	if cellValue != "" {
		return model.MatchOther
	}
	return model.MatchRegular
}
