package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandy081/userdata-history/internal/errors"
	"github.com/sandy081/userdata-history/internal/history"
	"github.com/sandy081/userdata-history/internal/logging"
	"github.com/sandy081/userdata-history/internal/watch"
)

var watchDebounce time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0,
		"How long to wait after the last change before capturing (default from config)")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Capture snapshots automatically when live files change",
	Long: `Watch the tracked live configuration files and capture a snapshot
whenever one changes.

Rapid bursts of writes are debounced: a snapshot is captured only once
the file has been quiet for the debounce interval. Runs until
interrupted.`,
	Example: `  # Watch with the configured debounce
  udh watch

  # Watch with a custom debounce
  udh watch --debounce 2s

  See Also:
    udh backup - Capture a snapshot manually
    udh list   - Browse captured snapshots`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, _ []string) error {
	return runWatchWithWriter(cmd, os.Stdout)
}

func runWatchWithWriter(cmd *cobra.Command, w io.Writer) error {
	debounce := loadedConfig.Watch.Debounce
	if watchDebounce > 0 {
		debounce = watchDebounce
	}

	store := newStore(cmd)

	unsubscribe := store.Subscribe(func(resource history.Resource) {
		fmt.Fprintf(w, "%s✓ captured %s%s\n", colorGreen, resource, colorReset)
	})
	defer unsubscribe()

	watcher, err := watch.New(store,
		watch.WithDebounce(debounce),
		watch.WithLogger(logging.FromContext(cmd.Context())),
	)
	if err != nil {
		return errors.NewSystemError(errors.Wrap(err, "starting watcher"),
			"Check the watched directories are accessible")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for _, resource := range history.Resources() {
		if path, ok := store.LivePath(resource); ok {
			fmt.Fprintf(w, "watching %s (%s)\n", resource, path)
		}
	}
	fmt.Fprintln(w, "Press Ctrl+C to stop")

	return watcher.Run(ctx)
}
