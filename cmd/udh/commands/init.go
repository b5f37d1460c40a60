package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sandy081/userdata-history/internal/config"
	"github.com/sandy081/userdata-history/internal/errors"
	"github.com/sandy081/userdata-history/internal/paths"
	"github.com/sandy081/userdata-history/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize udh configuration",
	Long: `Write a default configuration file.

Creates ~/.config/udh/config.yaml with the default backup root, sync
root, and watch settings. Edit it afterwards to override live file
locations or tune the watcher.`,
	Example: `  # Write the default configuration
  udh init

  # Overwrite an existing configuration
  udh init --force

  See Also: udh backup, udh watch`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	configPath := config.DefaultPath()

	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration already exists at %s\n", configPath)
		fmt.Fprintln(cmd.OutOrStdout(), "Use --force to overwrite")
		return nil
	}

	if err := paths.EnsureDir(filepath.Dir(configPath), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteYAML(configPath, config.Default()); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)
	return nil
}
