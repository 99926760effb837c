package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/bookfinder/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(app.Run).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "bookfinder: %v\n", err)
		return 1
	}
	return 0
}

type runFunc func(context.Context, app.Options) error

func newRootCmd(runApp runFunc) *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "bookfinder",
		Short: "Search Open Library by book title from the terminal",
		Long: `bookfinder searches the Open Library catalogue by title and shows up to
20 matches with author and cover links. Select a result to see its first
publication year, publishers, and subjects. The last search is remembered
and replayed on the next start.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd.Context(), opts)
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/bookfinder/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/bookfinder/prefs.toml)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flags.StringVar(&opts.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. 127.0.0.1:9464 (overrides config)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version of bookfinder",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bookfinder %s\n", version)
		},
	})

	return root
}
