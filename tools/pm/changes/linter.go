// Package changes checks and reads the project change log.
//
// The change log is a plain text file of version sections, newest first:
//
//	WIP  TBD
//
//	 * Bullet describing a change that
//	   continues on a second line.
//
//	v0.1.0  2024-10-31
//
//	 * First release.
//
// A section heading is a "v" prefixed semantic version, two spaces, and an
// ISO 8601 date. Only the first line may be a WIP heading.
package changes

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/coreos/go-semver/semver"
)

// DefaultFile is the name of the change log in the root of the repository.
const DefaultFile = "Changes.md"

// CheckMode selects how strict the linter is about the WIP heading.
type CheckMode int

const (
	// CheckStandard allows, but does not require, a WIP heading.
	CheckStandard CheckMode = iota

	// CheckPreRelease requires a WIP heading on the first line.
	CheckPreRelease

	// CheckRelease forbids a WIP heading.
	CheckRelease
)

// Failure is a single problem found on a line of the change log.
type Failure struct {
	Line    int
	Message string
}

// Failures is every problem found by a check.
type Failures []Failure

// String lists the failures, one per line.
func (fs Failures) String() string {
	lines := make([]string, len(fs))
	for i, f := range fs {
		lines[i] = fmt.Sprintf(" * Line %d: %s", f.Line, f.Message)
	}
	return strings.Join(lines, "\n")
}

// Error is returned by Check when the change log has problems.
type Error struct {
	Failures
}

// Error returns the error message.
func (e *Error) Error() string {
	return "change log check failed:\n" + e.Failures.String()
}

type lineKind int

const (
	lineBad lineKind = iota
	lineWIP
	lineHeading
	lineBullet
	lineContinuation
	lineBlank
	lineSpaces
)

var (
	headingLine      = regexp.MustCompile(`^v(\d\S+) {2}(\d{4}-\d\d-\d\d)$`)
	bulletLine       = regexp.MustCompile(`^ \* \S`)
	continuationLine = regexp.MustCompile(`^ {3}\S`)
	spacesLine       = regexp.MustCompile(`^\s+$`)
)

func classify(line string) lineKind {
	switch {
	case line == "WIP" || line == "WIP  TBD":
		return lineWIP
	case headingLine.MatchString(line):
		return lineHeading
	case bulletLine.MatchString(line):
		return lineBullet
	case continuationLine.MatchString(line):
		return lineContinuation
	case line == "":
		return lineBlank
	case spacesLine.MatchString(line):
		return lineSpaces
	}
	return lineBad
}

// Linter checks the format of a change log.
type Linter struct {
	r    io.Reader
	mode CheckMode

	fails       Failures
	prev        lineKind
	headingLine int
	version     *semver.Version
	date        string
}

// NewLinter returns a linter that will read the change log from r.
func NewLinter(r io.Reader, mode CheckMode) *Linter {
	return &Linter{r: r, mode: mode}
}

func (l *Linter) fail(n int, format string, args ...any) {
	l.fails = append(l.fails, Failure{n, fmt.Sprintf(format, args...)})
}

// Check reads the whole change log and returns an *Error listing every
// problem found, or nil if there are none.
func (l *Linter) Check() error {
	sc := bufio.NewScanner(l.r)
	n := 0
	for sc.Scan() {
		n++
		kind := classify(sc.Text())
		l.checkLine(n, kind, sc.Text())
		l.prev = kind
	}

	if err := sc.Err(); err != nil {
		return err
	}

	if n == 0 {
		l.fail(0, "change log is empty")
	}

	if len(l.fails) > 0 {
		return &Error{l.fails}
	}
	return nil
}

func (l *Linter) checkLine(n int, kind lineKind, line string) {
	if n == 1 && kind != lineWIP && l.mode == CheckPreRelease {
		l.fail(n, "WIP not found during pre-release check")
	}

	switch kind {
	case lineWIP:
		if n > 1 {
			l.fail(n, "WIP found after line 1")
		}
		if l.mode == CheckRelease {
			l.fail(n, "found WIP line during release")
		}
		l.headingLine = n

	case lineHeading:
		l.checkHeading(n, line)

	case lineBullet:
		switch {
		case l.headingLine == 0:
			l.fail(n, "log bullet before first version heading or WIP")
		case n == l.headingLine+1:
			l.fail(n, "missing blank line before log bullet")
		case l.prev == lineBlank && n > l.headingLine+2:
			l.fail(n, "extra blank line before log bullet")
		}

	case lineContinuation:
		if l.prev != lineBullet && l.prev != lineContinuation {
			l.fail(n, "log line continuation has no bullet to continue")
		}

	case lineBlank:
		if l.prev == lineBlank && n > 1 {
			l.fail(n, "consecutive blank lines")
		}

	case lineSpaces:
		l.fail(n, "line looks blank, but has spaces in it")

	default:
		l.fail(n, "badly formatted line")
	}
}

func (l *Linter) checkHeading(n int, line string) {
	m := headingLine.FindStringSubmatch(line)
	ver, date := m[1], m[2]

	if n != 1 && l.prev != lineBlank {
		l.fail(n, "version heading line missing blank line before it")
	}

	version, err := semver.NewVersion(ver)
	if err != nil {
		l.fail(n, "unable to parse version number %q in heading", ver)
		l.headingLine = n
		return
	}

	// sections run newest to oldest
	if l.version != nil && l.version.LessThan(*version) {
		l.fail(n, "version %s is newer than %s from line %d", version, l.version, l.headingLine)
	}
	if l.date != "" && l.date < date {
		l.fail(n, "date %s is later than %s from line %d", date, l.date, l.headingLine)
	}

	l.version = version
	l.date = date
	l.headingLine = n
}
