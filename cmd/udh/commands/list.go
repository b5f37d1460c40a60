package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandy081/userdata-history/internal/errors"
	"github.com/sandy081/userdata-history/internal/history"
)

var (
	listCursor string
	listJSON   bool
	listSync   bool
)

func init() {
	listCmd.Flags().StringVar(&listCursor, "cursor", "", "Continue listing from a previous page's cursor")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listSync, "sync", false, "List snapshots written by the settings-sync service")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [resource...]",
	Short: "List captured snapshots",
	Long: `List captured snapshots grouped by resource, newest first.

Listing is paged: each page holds up to ten snapshots, and a page that
is not the last prints a cursor for the next one. Pass that cursor back
with --cursor to continue. The cursor applies to every resource listed,
so paging through a single resource at a time is usually clearer.

With --sync the listing covers the snapshot tree written by the
settings-sync service instead of the local backup root.`,
	Example: `  # List all snapshot history
  udh list

  # Page through settings history
  udh list settings
  udh list settings --cursor 10

  # List the sync service's snapshots
  udh list settings --sync

  # Output as JSON
  udh list --json

  See Also:
    udh show    - Show a snapshot's content
    udh restore - Restore a snapshot`,
	Args: cobra.ArbitraryArgs,
	RunE: runList,
}

// listOutput represents the JSON output for one resource's page.
type listOutput struct {
	Resource   string               `json:"resource"`
	Snapshots  []snapshotInfoOutput `json:"snapshots"`
	NextCursor string               `json:"next_cursor,omitempty"`
}

// snapshotInfoOutput represents a single snapshot in JSON output.
type snapshotInfoOutput struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Location  string    `json:"location"`
}

func runList(cmd *cobra.Command, args []string) error {
	return runListWithWriter(cmd, args, os.Stdout)
}

func runListWithWriter(cmd *cobra.Command, args []string, w io.Writer) error {
	resources, err := resolveResources(args)
	if err != nil {
		return err
	}

	resolver := newResolver(cmd, listSync)

	if listJSON {
		return outputListJSON(w, resolver, resources)
	}
	return outputListTabular(w, resolver, resources)
}

func outputListJSON(w io.Writer, resolver history.Resolver, resources []history.Resource) error {
	output := make([]listOutput, 0, len(resources))

	for _, resource := range resources {
		page, next, err := history.Page(resolver.Entries(resource), listCursor)
		if err != nil {
			return errors.NewUserError(err, "Cursors are the decimal numbers printed by a previous page")
		}

		snapshots := make([]snapshotInfoOutput, len(page))
		for i, snap := range page {
			snapshots[i] = snapshotInfoOutput{
				Name:      snap.Name,
				CreatedAt: snap.CreatedAt,
				Location:  snap.Location,
			}
		}

		output = append(output, listOutput{
			Resource:   string(resource),
			Snapshots:  snapshots,
			NextCursor: next,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputListTabular(w io.Writer, resolver history.Resolver, resources []history.Resource) error {
	hasSnapshots := false

	for i, resource := range resources {
		page, next, err := history.Page(resolver.Entries(resource), listCursor)
		if err != nil {
			return errors.NewUserError(err, "Cursors are the decimal numbers printed by a previous page")
		}

		if len(page) > 0 {
			hasSnapshots = true
		}

		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "%sResource: %s%s\n", colorCyan+colorBold, resource, colorReset)

		if len(page) == 0 {
			fmt.Fprintf(w, "  %s(no snapshots)%s\n", colorGray, colorReset)
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  %sNAME%s\t%sCREATED%s\n",
			colorBold, colorReset,
			colorBold, colorReset)

		for _, snap := range page {
			fmt.Fprintf(tw, "  %s%s%s\t%s\n",
				colorGreen, snap.Name, colorReset,
				snap.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		tw.Flush()

		if next != "" {
			fmt.Fprintf(w, "  %smore: --cursor %s%s\n", colorGray, next, colorReset)
		}
	}

	if !hasSnapshots {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No snapshots yet")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Capture one with: udh backup")
	}

	return nil
}
