package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-httpheader/tools/pm/changes"
)

var extractChangelogCmd = &cobra.Command{
	Use:   "extract <version>",
	Short: "extract the bullets for the changelog section for the given version",
	Args:  cobra.ExactArgs(1),
	RunE:  ExtractChangelog,
}

func ExtractChangelog(cmd *cobra.Command, args []string) error {
	section, err := changes.ExtractSectionFromFile(changelogFile, args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), section)
	return err
}
