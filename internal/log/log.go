// Package log sets up the zerolog logger shared by the command line tools.
// The library packages never log.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats accepted by Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects the level, format, and destination of log output.
type Config struct {
	Level  string    // "debug", "info", etc.; falls back to $LOG_LEVEL, then "warn"
	Format string    // FormatConsole or FormatJSON
	Output io.Writer // defaults to os.Stderr
	Tool   string    // name of the tool attached to every entry
}

// New builds a logger from the configuration. It fails if the level or format
// is not recognized.
func New(cfg Config) (zerolog.Logger, error) {
	lvlName := cfg.Level
	if lvlName == "" {
		lvlName = os.Getenv("LOG_LEVEL")
	}
	if lvlName == "" {
		lvlName = zerolog.WarnLevel.String()
	}

	level, err := zerolog.ParseLevel(strings.ToLower(lvlName))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", lvlName, err)
	}

	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}

	switch cfg.Format {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if cfg.Tool != "" {
		ctx = ctx.Str("tool", cfg.Tool)
	}

	return ctx.Logger(), nil
}
