package commands

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandy081/userdata-history/internal/errors"
)

func init() {
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup [resource...]",
	Short: "Capture a snapshot of the live configuration files",
	Long: `Capture a timestamped snapshot of the live configuration files.

By default all tracked resources are captured. Name one or more
resources to capture only those. A resource whose live file does not
exist is reported and skipped; the others are still captured.

Snapshots land under the backup root, one subfolder per resource,
named after the capture time (for example 20230615T143022.json). A
second capture within the same second replaces the first.`,
	Example: `  # Capture everything tracked
  udh backup

  # Capture only settings
  udh backup settings

  See Also:
    udh list  - Browse captured snapshots
    udh watch - Capture automatically on change`,
	Args: cobra.ArbitraryArgs,
	RunE: runBackup,
}

func runBackup(cmd *cobra.Command, args []string) error {
	return runBackupWithWriter(cmd, args, os.Stdout)
}

func runBackupWithWriter(cmd *cobra.Command, args []string, w io.Writer) error {
	resources, err := resolveResources(args)
	if err != nil {
		return err
	}

	store := newStore(cmd)
	captured := 0

	for _, resource := range resources {
		snap, err := store.Backup(resource)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(w, "%s%s: no live file to capture%s\n",
					colorYellow, resource, colorReset)
				continue
			}
			return errors.NewSystemError(
				errors.Wrapf(err, "capturing %s", resource),
				"Check the backup root is writable")
		}

		fmt.Fprintf(w, "%s✓ %s: captured %s%s\n",
			colorGreen, resource, snap.Name, colorReset)
		captured++
	}

	if captured == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Nothing captured. Live configuration files may not exist yet.")
	}

	return nil
}
