// Package cli wires the score and history subsystems into the command line
// client.
package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/davidrhall/conquest-go/internal/domain/dataview"
)

// NewRootCommand creates the top-level conquest command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conquest",
		Short: "Turn-based strategy game client tools",
		Long: `Client-side tooling for turn-based strategy games: score tracking
across turns and historical turn management.

Score data is replayed from the local database; use the subcommands to
render score charts and tables or inspect historical turn availability.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewScoreCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// renderTable writes a dataview table as aligned text
func renderTable(out io.Writer, table *dataview.Table) {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	columns := table.ColumnKeys()

	fmt.Fprint(w, "Name")
	for _, col := range columns {
		fmt.Fprintf(w, "\t%s", table.ColumnName(col))
	}
	fmt.Fprintln(w)

	for _, row := range table.Rows() {
		fmt.Fprint(w, row.Name())
		for _, col := range columns {
			fmt.Fprintf(w, "\t%s", row.Get(col))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
