package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
	"github.com/gauravmm/typst-iso-7000/internal/core/ports/driving"
)

var flagForceProcess bool

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Canonicalise downloaded SVG artifacts",
	Long: `Runs the canonicalisation pipeline over every downloaded icon:
structural cleanup, geometry normalisation to a 10mm footprint, and
stable pretty-printed output. Already-processed icons are skipped
unless --force is given.`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().BoolVar(&flagForceProcess, "force", false,
		"re-process icons that already have canonical output")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, _ []string) error {
	a, err := app()
	if err != nil {
		return err
	}

	set, err := a.Catalogue.Catalogue(cmd.Context(), false)
	if err != nil {
		return fmt.Errorf("loading catalogue: %w", err)
	}

	stats, err := processWithProgress(cmd.Context(), cmd, a.Process, set, flagForceProcess)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	cmd.Printf("Processed %d symbols (%d skipped, %d failed).\n",
		stats.Processed, stats.Skipped, stats.Failed)
	return nil
}

// processWithProgress runs the batch while displaying progress updates.
// Carriage-return redrawing is only used on a terminal.
func processWithProgress(
	ctx context.Context,
	cmd *cobra.Command,
	processor driving.Processor,
	set domain.SymbolSet,
	force bool,
) (driving.ProcessStats, error) {
	type result struct {
		stats driving.ProcessStats
		err   error
	}
	resCh := make(chan result, 1)
	go func() {
		stats, err := processor.ProcessAll(ctx, set, force)
		resCh <- result{stats, err}
	}()

	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	last := 0
	for {
		select {
		case res := <-resCh:
			if interactive && last > 0 {
				cmd.Printf("\r")
			}
			return res.stats, res.err
		case <-ticker.C:
			if !interactive {
				continue
			}
			status := processor.Status()
			done := status.Processed + status.Skipped + status.Failed
			if done > last {
				cmd.Printf("\rProcessing... %d/%d symbols", done, status.Total)
				last = done
			}
		}
	}
}
