package changes

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ExtractSection returns the bullets written below the heading for the given
// version, e.g., "v0.1.0". Blank lines are dropped. It returns an error if
// the heading is not found.
func ExtractSection(r io.Reader, version string) (string, error) {
	var (
		prefix  = version + "  "
		sc      = bufio.NewScanner(r)
		started = false
		buf     = &strings.Builder{}
	)

	for sc.Scan() {
		line := sc.Text()
		if !started {
			started = strings.HasPrefix(line, prefix)
			continue
		}

		if headingLine.MatchString(line) {
			break
		}

		if line == "" {
			continue
		}

		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if err := sc.Err(); err != nil {
		return "", err
	}

	if !started {
		return "", fmt.Errorf("a change log section for version %s was not found", version)
	}

	return buf.String(), nil
}

// ExtractSectionFromFile opens the named change log and calls ExtractSection.
func ExtractSectionFromFile(fn, version string) (string, error) {
	f, err := os.Open(fn)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	return ExtractSection(f, version)
}
