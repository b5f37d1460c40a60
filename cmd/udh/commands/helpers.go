package commands

import (
	"github.com/spf13/cobra"

	"github.com/sandy081/userdata-history/internal/errors"
	"github.com/sandy081/userdata-history/internal/history"
	"github.com/sandy081/userdata-history/internal/logging"
)

// Color constants for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// newStore builds the snapshot store from the loaded configuration.
func newStore(cmd *cobra.Command) *history.Store {
	cfg := loadedConfig

	opts := []history.Option{
		history.WithLogger(logging.FromContext(cmd.Context())),
	}
	if cfg.BackupRoot != "" {
		opts = append(opts, history.WithRootDir(cfg.BackupRoot))
	}
	for name, override := range cfg.Resources {
		if override.Path == "" {
			continue
		}
		if resource, err := history.ParseResource(name); err == nil {
			opts = append(opts, history.WithLivePath(resource, override.Path))
		}
	}

	return history.NewStore(opts...)
}

// newResolver returns the read-side resolver for the requested tree:
// the primary store, or the sync service's snapshot tree.
func newResolver(cmd *cobra.Command, sync bool) history.Resolver {
	if !sync {
		return newStore(cmd)
	}

	opts := []history.SyncOption{
		history.WithSyncLogger(logging.FromContext(cmd.Context())),
	}
	if loadedConfig.SyncRoot != "" {
		opts = append(opts, history.WithSyncRoot(loadedConfig.SyncRoot))
	}
	return history.NewSyncResolver(opts...)
}

// parseResourceArg converts a positional argument to a Resource.
func parseResourceArg(arg string) (history.Resource, error) {
	resource, err := history.ParseResource(arg)
	if err != nil {
		return "", errors.NewUserError(err, "Valid resources: settings, keybindings")
	}
	return resource, nil
}

// resolveResources converts positional arguments to resources,
// defaulting to all tracked resources when none are given.
func resolveResources(args []string) ([]history.Resource, error) {
	if len(args) == 0 {
		return history.Resources(), nil
	}

	resources := make([]history.Resource, 0, len(args))
	for _, arg := range args {
		resource, err := parseResourceArg(arg)
		if err != nil {
			return nil, err
		}
		resources = append(resources, resource)
	}
	return resources, nil
}
