package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zostay/go-httpheader/status"
)

var statusCmd = &cobra.Command{
	Use:   "status <code>...",
	Short: "Print the reason phrase of each status code",
	Args:  cobra.MinimumNArgs(1),
	RunE:  RunStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func RunStatus(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("status code %q is not a number", arg)
		}

		c := status.Code(n)
		if !c.Valid() {
			logger.Warn().Int("code", n).Msg("status code is not in the table")
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.Line())
	}

	return nil
}
