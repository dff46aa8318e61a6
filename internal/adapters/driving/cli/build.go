package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagBuildForceSearch  bool
	flagBuildForceProcess bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the full pipeline: fetch, download, process, emit library",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&flagBuildForceSearch, "force-search-again", false,
		"repeat the Wikimedia search to check if new documents are available")
	buildCmd.Flags().BoolVar(&flagBuildForceProcess, "force", false,
		"re-process icons that already have canonical output")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	a, err := app()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	set, err := a.Catalogue.Catalogue(ctx, flagBuildForceSearch)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}
	cmd.Printf("Catalogue contains %d symbols.\n", len(set))

	dl, err := a.Download.DownloadAll(ctx, set, false)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	cmd.Printf("Downloaded %d artifacts (%d cached, %d failed).\n",
		dl.Fetched, dl.Skipped, dl.Failed)

	stats, err := processWithProgress(ctx, cmd, a.Process, set, flagBuildForceProcess)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}
	cmd.Printf("Processed %d symbols (%d skipped, %d failed).\n",
		stats.Processed, stats.Skipped, stats.Failed)

	if err := a.Library.WriteLibrary(ctx, set); err != nil {
		return fmt.Errorf("writing library: %w", err)
	}
	cmd.Println("Library written.")
	return nil
}
