package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandy081/userdata-history/internal/errors"
	"github.com/sandy081/userdata-history/internal/history"
)

func init() {
	rootCmd.AddCommand(restoreCmd)
}

var restoreCmd = &cobra.Command{
	Use:   "restore <resource> [snapshot]",
	Short: "Restore a snapshot over the live file",
	Long: `Write a captured snapshot's content back over the resource's live
configuration file.

If no snapshot name is given, the most recent snapshot is restored.
The current live file is captured first, so a restore can itself be
undone by restoring that safety snapshot.`,
	Example: `  # Restore the most recent settings snapshot
  udh restore settings

  # Restore a specific snapshot
  udh restore settings 20230615T143022.json

  # List snapshots first
  udh list settings

  See Also:
    udh list - Find snapshot names
    udh show - Inspect a snapshot before restoring`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRestore,
}

func runRestore(cmd *cobra.Command, args []string) error {
	return runRestoreWithWriter(cmd, args, os.Stdout)
}

func runRestoreWithWriter(cmd *cobra.Command, args []string, w io.Writer) error {
	resource, err := parseResourceArg(args[0])
	if err != nil {
		return err
	}

	store := newStore(cmd)

	var name string
	if len(args) > 1 {
		name = args[1]
	} else {
		entries := store.Entries(resource)
		if len(entries) == 0 {
			return errors.Newf("no snapshots for %s", resource)
		}
		name = entries[0].Name
		fmt.Fprintf(w, "Using most recent snapshot: %s\n", name)
	}

	if err := store.Restore(resource, name); err != nil {
		if errors.Is(err, history.ErrSnapshotNotFound) {
			return errors.NewUserError(err, "Run: udh list "+string(resource))
		}
		return errors.Wrap(err, "restoring snapshot")
	}

	fmt.Fprintf(w, "%s✓ Restored %s from snapshot %s%s\n",
		colorGreen, resource, name, colorReset)

	return nil
}
