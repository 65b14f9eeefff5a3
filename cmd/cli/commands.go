package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"heroscores/adapters/excel"
	"heroscores/domain/scores"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var file, url, order string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the hero entries of a scores workbook",
		Long: `Read a scores workbook (first sheet, header row skipped, four data rows)
and print the entries with their card colors.

Example: heroscores-cli list --file public/scores.xlsx --sort asc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir scores.Direction
			switch order {
			case "":
			case string(scores.Ascending), string(scores.Descending):
				dir = scores.Direction(order)
			default:
				return fmt.Errorf("invalid --sort %q: use asc or desc", order)
			}

			reader := excel.NewReaderFromConfig(excel.SourceConfig{FilePath: file, URL: url, Timeout: timeout})
			rows, err := reader.ReadRows(cmd.Context())
			if err != nil {
				return err
			}

			entries := scores.FromRows(rows)
			if dir != "" {
				entries = scores.Sort(entries, dir)
			}
			return printEntries(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().StringVar(&file, "file", "public/scores.xlsx", "Path to the scores workbook (.xlsx or .csv)")
	cmd.Flags().StringVar(&url, "url", "", "Fetch the workbook over HTTP instead of reading --file")
	cmd.Flags().StringVar(&order, "sort", "", "Sort by score: asc or desc (default: source order)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "HTTP fetch timeout")
	return cmd
}

func newSampleCmd() *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "sample [path]",
		Short: "Write the sample four-hero scores workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "public/scores.xlsx"
			if len(args) == 1 {
				path = args[0]
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			if err := excel.WriteWorkbook(f, sheet, excel.SampleRows()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "Sheet1", "Worksheet name")
	return cmd
}

func printEntries(w io.Writer, entries []scores.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSCORE\tCOLOR\tLOGO")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%g\t%s\t%s\n", e.Name, e.Score, e.Color, e.Logo())
	}
	if summary, ok := scores.Summarize(entries); ok {
		fmt.Fprintf(tw, "\nmean %g\tmedian %g\tmin %g\tmax %g\n", summary.Mean, summary.Median, summary.Min, summary.Max)
	}
	return tw.Flush()
}
