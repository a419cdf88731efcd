package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-httpheader/tools/pm/changes"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pm",
		Short: "Project management tools for go-httpheader",
	}

	changelogFile string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&changelogFile, "changelog", changes.DefaultFile, "path to the change log")
	rootCmd.AddCommand(changelogCmd)
}

func Execute() {
	err := rootCmd.Execute()
	cobra.CheckErr(err)
}
