package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Chockers1/TheBigTebowski/internal/ingest"
	"github.com/Chockers1/TheBigTebowski/internal/storage"
)

var loadSheet string

var loadCmd = &cobra.Command{
	Use:   "load <gamelog.xlsx|gamelog.xlsm|gamelog.csv>",
	Short: "Ingest a game log into the cache",
	Long: `Read a league game log, normalize it into the canonical schema, and store
it in the local cache keyed by the file's content signature. Reloading an
unchanged file is a no-op; a changed file replaces the cached game set.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadSheet, "sheet", "", "workbook sheet holding the game log (default \"gamelog\")")
}

func runLoad(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	fmt.Fprintf(os.Stdout, "Loading %s...\n", sourcePath)
	res, err := ingest.LoadFile(sourcePath, loadSheet)
	if err != nil {
		return fmt.Errorf("ingest game log: %w", err)
	}

	exists, err := db.SourceExists(res.Signature)
	if err != nil {
		return fmt.Errorf("check source: %w", err)
	}
	if exists {
		fmt.Fprintf(os.Stdout, "Source %s already cached — nothing to do.\n", res.Signature[:12])
		return nil
	}

	if err := db.ReplaceSource(sourcePath, res.Signature, res.Games, res.Skipped); err != nil {
		return fmt.Errorf("store games: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Stored %d games (%d malformed rows skipped) as %s\n",
		len(res.Games), res.Skipped, res.Signature[:12])
	return nil
}
