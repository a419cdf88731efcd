package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-httpheader/header"
)

// ErrRoundTripChanged is returned by the roundtrip command when the header
// written out differs from the input.
var ErrRoundTripChanged = errors.New("header changed during round-trip")

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip [file]",
	Short: "Shows the diff of a single header block round-trip",
	Long: `Parses the header block, writes it back out, and shows a line diff
of the input against the output. Lines starting with "-" were in the input
only and lines starting with "+" are in the output only.`,
	Args: cobra.MaximumNArgs(1),
	RunE: RunRoundTrip,
}

func init() {
	rootCmd.AddCommand(roundtripCmd)
}

// headerBlock returns the input up to and including the line break ending
// the last header line. The blank line and any body are dropped.
func headerBlock(in string) string {
	for _, sep := range []string{"\r\n\r\n", "\n\n"} {
		if ix := strings.Index(in, sep); ix >= 0 {
			return in[:ix+len(sep)/2]
		}
	}
	return in
}

// writeLineDiff writes a diff of a against b, one line at a time.
func writeLineDiff(w io.Writer, a, b string) (changed bool) {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
			changed = true
		case diffmatchpatch.DiffInsert:
			prefix = "+"
			changed = true
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			_, _ = fmt.Fprintf(w, "%s%q\n", prefix, line)
		}
	}

	return changed
}

func RunRoundTrip(cmd *cobra.Command, args []string) error {
	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	input := headerBlock(string(in))

	lbr := header.CRLF
	if !strings.Contains(input, "\r\n") {
		lbr = header.LF
	}

	h, err := header.Parse(input, append(parseOptions(), header.WithBreak(lbr))...)
	if err != nil {
		return err
	}

	output := h.String()
	if strings.HasPrefix(input, "HTTP") {
		output = h.StatusLine() + lbr.String() + output
	}

	if writeLineDiff(cmd.OutOrStdout(), input, output) {
		logger.Warn().Int("fields", h.Len()).Msg("round-trip output differs from input")
		return ErrRoundTripChanged
	}

	logger.Info().Int("fields", h.Len()).Msg("round-trip output matches input")
	return nil
}
