package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-httpheader/tools/pm/changes"
)

var (
	lintChangelogCmd = &cobra.Command{
		Use:   "lint",
		Short: "Check the changelog file for problems",
		Args:  cobra.NoArgs,
		RunE:  LintChangelog,
	}

	isRelease    bool
	isPreRelease bool
)

func init() {
	lintChangelogCmd.Flags().BoolVarP(&isRelease, "release", "r", false, "verify the changelog is ready for release")
	lintChangelogCmd.Flags().BoolVarP(&isPreRelease, "pre-release", "p", false, "verify the changelog has a WIP section")
}

func LintChangelog(_ *cobra.Command, _ []string) error {
	if isRelease && isPreRelease {
		return errors.New("--release and --pre-release may not be used together")
	}

	mode := changes.CheckStandard
	switch {
	case isRelease:
		mode = changes.CheckRelease
	case isPreRelease:
		mode = changes.CheckPreRelease
	}

	changelog, err := os.Open(changelogFile)
	if err != nil {
		return err
	}
	defer func() { _ = changelog.Close() }()

	return changes.NewLinter(changelog, mode).Check()
}
