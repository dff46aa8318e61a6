package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-process icons whenever their raw artifact changes",
	Long: `Watches the raw cache directory and re-runs the canonicalisation
pipeline for any icon whose raw SVG is created or modified. Useful when
hand-fixing broken source documents.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	a, err := app()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(a.RawDir); err != nil {
		return fmt.Errorf("watching %s: %w", a.RawDir, err)
	}

	cmd.Printf("Watching %s for changes. Ctrl-C to stop.\n", a.RawDir)

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			ref := refFromPath(event.Name)
			if ref == "" {
				continue
			}
			if err := a.Process.ProcessOne(ctx, domain.SymbolRecord{Ref: ref}, true); err != nil {
				cmd.Printf("%s: %v\n", ref, err)
				continue
			}
			cmd.Printf("%s: reprocessed\n", ref)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.Logger.Warn("watcher error", "error", err)
		}
	}
}

// refFromPath extracts the reference id from a raw artifact path.
// Returns "" for files that are not SVG artifacts (editors drop
// temporary files in the watched directory).
func refFromPath(path string) string {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".svg") || strings.HasPrefix(base, ".") {
		return ""
	}
	return strings.TrimSuffix(base, ".svg")
}
