package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagForceDownload bool

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download raw SVG artifacts for the cached catalogue",
	RunE:  runDownload,
}

func init() {
	downloadCmd.Flags().BoolVar(&flagForceDownload, "force", false,
		"re-download artifacts that are already cached")
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, _ []string) error {
	a, err := app()
	if err != nil {
		return err
	}

	set, err := a.Catalogue.Catalogue(cmd.Context(), false)
	if err != nil {
		return fmt.Errorf("loading catalogue: %w", err)
	}

	stats, err := a.Download.DownloadAll(cmd.Context(), set, flagForceDownload)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	cmd.Printf("Downloaded %d artifacts (%d cached, %d failed).\n",
		stats.Fetched, stats.Skipped, stats.Failed)
	return nil
}
