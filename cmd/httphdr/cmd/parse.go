package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zostay/go-httpheader/header"
)

var (
	parseCmd = &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a header block and list its fields with their types",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunParse,
	}

	lenientDates bool
)

func init() {
	parseCmd.Flags().BoolVar(&lenientDates, "lenient-dates", false, "accept Date values that are not HTTP dates")
	rootCmd.AddCommand(parseCmd)
}

// parseOptions returns the header.Parse options selected on the command line.
func parseOptions() []header.ParseOption {
	var opts []header.ParseOption
	if lenientDates {
		opts = append(opts, header.WithLenientDates())
	}
	return opts
}

func RunParse(cmd *cobra.Command, args []string) error {
	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	h, err := header.Parse(string(in), parseOptions()...)
	if err != nil {
		logger.Error().Err(err).Msg("header parse failed")
		return err
	}

	logger.Info().
		Int("fields", h.Len()).
		Str("version", h.Version()).
		Int("status", int(h.Status())).
		Msg("parsed header")

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, h.StatusLine())

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, f := range h.ListFields() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Name(), f.Kind(), f.Value())
	}

	return tw.Flush()
}
