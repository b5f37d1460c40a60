package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var showSync bool

func init() {
	showCmd.Flags().BoolVar(&showSync, "sync", false, "Show a snapshot written by the settings-sync service")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <resource> <snapshot>",
	Short: "Show a snapshot's content",
	Long: `Print the content of a captured snapshot to stdout.

A snapshot that does not exist resolves to empty content rather than
an error, mirroring how the history is read everywhere else.

With --sync the snapshot comes from the settings-sync service's tree.
Sync snapshots are stored inside a JSON envelope; show unwraps it and
prints the inner configuration text. A sync snapshot whose envelope
does not have the expected shape is an error.`,
	Example: `  # Show a captured settings snapshot
  udh show settings 20230615T143022.json

  # Show a snapshot from the sync service
  udh show settings 20230615T143022 --sync

  See Also:
    udh list    - Find snapshot names
    udh restore - Restore a snapshot`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	return runShowWithWriter(cmd, args, os.Stdout)
}

func runShowWithWriter(cmd *cobra.Command, args []string, w io.Writer) error {
	resource, err := parseResourceArg(args[0])
	if err != nil {
		return err
	}
	name := args[1]

	resolver := newResolver(cmd, showSync)

	content, err := resolver.ResolveContent(resource, name)
	if err != nil {
		return err
	}

	if content == "" {
		fmt.Fprintf(w, "%s(empty)%s\n", colorGray, colorReset)
		return nil
	}

	fmt.Fprint(w, content)
	if !strings.HasSuffix(content, "\n") {
		fmt.Fprintln(w)
	}
	return nil
}
