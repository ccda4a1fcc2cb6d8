package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Chockers1/TheBigTebowski/internal/analytics"
	"github.com/Chockers1/TheBigTebowski/internal/config"
	"github.com/Chockers1/TheBigTebowski/internal/model"
	"github.com/Chockers1/TheBigTebowski/internal/storage"
)

var (
	dbPath     string
	configPath string

	// Scope selection, shared by every analytic command.
	sourcePrefix  string
	filterSeasons []int
	filterOwner   string
)

var rootCmd = &cobra.Command{
	Use:   "tebowski",
	Short: "Fantasy league history analytics",
	Long:  "Ingest a fantasy league game log and explore Elo ratings, standings, streaks, power rankings, and head-to-head history.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".tebowski", "league.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite cache database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML engine config (or set TEBOWSKI_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&sourcePrefix, "source", "", "signature prefix of the cached source to analyze (default: latest)")
	rootCmd.PersistentFlags().IntSliceVar(&filterSeasons, "season", nil, "restrict the scope to these seasons (repeatable)")
	rootCmd.PersistentFlags().StringVar(&filterOwner, "owner", "", "restrict the scope to games this owner played")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(ratingsCmd)
	rootCmd.AddCommand(streaksCmd)
	rootCmd.AddCommand(powerCmd)
	rootCmd.AddCommand(h2hCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sqlCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// loadEngineConfig loads and validates the engine configuration. Invalid
// configuration is fatal here, before any engine runs.
func loadEngineConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("TEBOWSKI_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	return cfg, nil
}

// openScope opens the cache and returns the filtered game set for the
// selected source. An empty result is not an error; commands print an
// informational empty state instead.
func openScope() ([]model.GameRecord, *storage.DB, error) {
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	var src *model.SourceInfo
	if sourcePrefix != "" {
		src, err = db.SourceByPrefix(sourcePrefix)
	} else {
		src, err = db.LatestSource()
	}
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("select source: %w", err)
	}
	if src == nil {
		db.Close()
		return nil, nil, fmt.Errorf("no game log loaded yet; run 'tebowski load <gamelog.xlsx>' first")
	}

	games, err := db.GetGames(src.Signature)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("load games: %w", err)
	}
	return analytics.FilterGames(games, filterSeasons, filterOwner), db, nil
}
