package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Chockers1/TheBigTebowski/internal/storage"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List cached game-log sources",
	Args:  cobra.NoArgs,
	RunE:  runSources,
}

func runSources(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	sources, err := db.ListSources()
	if err != nil {
		return fmt.Errorf("list sources: %w", err)
	}
	if len(sources) == 0 {
		fmt.Fprintln(os.Stdout, "No game logs loaded yet. Run 'tebowski load <gamelog.xlsx>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-14s  %-20s  %6s  %7s  %s\n",
		"SIGNATURE", "LOADED", "GAMES", "SKIPPED", "PATH")
	fmt.Fprintf(os.Stdout, "%-14s  %-20s  %6s  %7s  %s\n",
		"──────────────", "────────────────────", "──────", "───────", "────")
	for _, s := range sources {
		fmt.Fprintf(os.Stdout, "%-14s  %-20s  %6d  %7d  %s\n",
			s.Signature[:12], s.LoadedAt, s.GameCount, s.SkippedRows, s.Path)
	}
	return nil
}
