package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagForceSearch bool

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch symbol metadata from Wikimedia Commons",
	Long: `Searches Wikimedia Commons for ISO 7000 icon pages and caches the
resulting symbol catalogue locally. Subsequent runs reuse the cache
unless --force-search-again is given.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&flagForceSearch, "force-search-again", false,
		"repeat the Wikimedia search to check if new documents are available")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	a, err := app()
	if err != nil {
		return err
	}

	set, err := a.Catalogue.Catalogue(cmd.Context(), flagForceSearch)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	cmd.Printf("Catalogue contains %d symbols.\n", len(set))
	return nil
}
