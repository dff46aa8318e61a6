// Package cli implements the cobra command surface of the iso7000 tool.
package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gauravmm/typst-iso-7000/internal/core/ports/driving"
)

// version is set at build time via -ldflags.
var version = "dev"

// App bundles the wired services the commands drive.
type App struct {
	Catalogue driving.Cataloguer
	Download  driving.Downloader
	Process   driving.Processor
	Library   driving.LibraryWriter
	Logger    *slog.Logger

	// RawDir is the raw artifact directory, used by watch mode.
	RawDir string
}

// appFactory builds the App once the persistent flags are parsed.
// Set by main; replaceable in tests.
var appFactory func(dataDir string, verbose bool) (*App, error)

// SetAppFactory installs the service wiring used by all commands.
func SetAppFactory(f func(dataDir string, verbose bool) (*App, error)) {
	appFactory = f
	loadedApp = nil
}

var (
	flagVerbose bool
	flagDataDir string

	loadedApp *App
)

// app returns the wired application, building it on first use.
func app() (*App, error) {
	if loadedApp != nil {
		return loadedApp, nil
	}
	if appFactory == nil {
		return nil, errors.New("application not configured")
	}
	a, err := appFactory(flagDataDir, flagVerbose)
	if err != nil {
		return nil, err
	}
	loadedApp = a
	return a, nil
}

var rootCmd = &cobra.Command{
	Use:   "iso7000",
	Short: "Scrape Wikimedia for ISO 7000 icons and generate a Typst library",
	Long: `iso7000 builds a Typst icon library from the ISO 7000 symbol SVGs
published on Wikimedia Commons.

It searches Commons for icon metadata, downloads the raw SVGs into a
local cache, canonicalises each icon to a uniform 10mm footprint, and
emits a Typst library with per-icon attribution.`,
	SilenceUsage: true,
}

func init() {
	defaultDataDir := "."
	if home, err := os.UserHomeDir(); err == nil {
		defaultDataDir = filepath.Join(home, ".iso7000")
	}
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", defaultDataDir, "data directory for cache and output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command under ctx so long-running
// commands stop on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
