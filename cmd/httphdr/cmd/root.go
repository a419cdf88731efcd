package cmd

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zostay/go-httpheader/internal/log"
)

var (
	rootCmd = &cobra.Command{
		Use:          "httphdr",
		Short:        "Tools for inspecting HTTP header blocks",
		SilenceUsage: true,

		PersistentPreRunE: setupLogger,
	}

	logLevel  string
	logFormat string

	logger = zerolog.Nop()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to $LOG_LEVEL or warn")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", log.FormatConsole, "log format (console or json)")
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	l, err := log.New(log.Config{
		Level:  logLevel,
		Format: logFormat,
		Output: cmd.ErrOrStderr(),
		Tool:   "httphdr",
	})
	if err != nil {
		return err
	}

	logger = l.With().Str("command", cmd.Name()).Logger()
	return nil
}

// readInput returns the contents of the file named by the first argument or
// of stdin if there are no arguments or the argument is "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		logger.Debug().Msg("reading header from stdin")
		return io.ReadAll(cmd.InOrStdin())
	}

	logger.Debug().Str("path", args[0]).Msg("reading header from file")
	return os.ReadFile(args[0])
}

// Execute runs the httphdr command line.
func Execute() error {
	return rootCmd.Execute()
}
