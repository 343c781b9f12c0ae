package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/structs"
	"github.com/spf13/cobra"

	"github.com/sarchlab/sumblock/datarecording"
)

// ReportOptions selects the rows a report prints.
type ReportOptions struct {
	Table  string
	Block  string
	Limit  int
	Offset int
	JSON   bool
}

func newReportCommand() *cobra.Command {
	var opts ReportOptions

	reportCmd := &cobra.Command{
		Use:   "report recording.sqlite3",
		Short: "Print the overflows recorded by a run.",
		Long: "Print one page of a table written by `sumblock run --record`: " +
			"overflow, step_failure or step_output.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Report(cmd.Context(), args[0], opts, cmd.OutOrStdout())
		},
	}

	flags := reportCmd.Flags()
	flags.StringVar(&opts.Table, "table", datarecording.OverflowTableName,
		"table to print")
	flags.StringVar(&opts.Block, "block", "", "only print rows of this block")
	flags.IntVar(&opts.Limit, "limit", 20, "rows per page, 0 for all")
	flags.IntVar(&opts.Offset, "offset", 0, "rows to skip")
	flags.BoolVar(&opts.JSON, "json", false, "print the rows as JSON")

	return reportCmd
}

// Report prints one page of a recorded table, ordered by time.
func Report(
	ctx context.Context,
	path string,
	opts ReportOptions,
	out io.Writer,
) error {
	reader, err := datarecording.OpenOverflowReader(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	params := datarecording.QueryParams{
		OrderBy: "Time, rowid",
		Limit:   opts.Limit,
		Offset:  opts.Offset,
	}

	if opts.Block != "" {
		params.Where = "Block = ?"
		params.Args = []any{opts.Block}
	}

	rows, total, err := reader.Query(ctx, opts.Table, params)
	if err != nil {
		return fmt.Errorf("table %s: %w", opts.Table, err)
	}

	if opts.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(struct {
			Table string `json:"table"`
			Total int    `json:"total"`
			Rows  []any  `json:"rows"`
		}{opts.Table, total, rows})
	}

	fmt.Fprintf(out, "%s: %d of %d rows from offset %d\n",
		opts.Table, len(rows), total, opts.Offset)

	if len(rows) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(structs.Names(rows[0]), "\t"))

	for _, row := range rows {
		values := structs.Values(row)
		cells := make([]string, len(values))

		for i, v := range values {
			cells[i] = fmt.Sprint(v)
		}

		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}

	return w.Flush()
}
