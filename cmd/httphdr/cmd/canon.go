package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-httpheader/header/field"
)

var (
	canonCmd = &cobra.Command{
		Use:   "canon <name>...",
		Short: "Show how field names are canonicalized and resolved",
		Args:  cobra.ArbitraryArgs,
		RunE:  RunCanon,
	}

	listFields bool
)

func init() {
	canonCmd.Flags().BoolVarP(&listFields, "list", "l", false, "list every registered field name")
	rootCmd.AddCommand(canonCmd)
}

func RunCanon(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if listFields {
		for _, id := range field.IDs() {
			_, _ = fmt.Fprintln(out, id)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("no field names given")
	}

	for _, arg := range args {
		id := field.Lookup(arg)
		resolved := "unknown"
		if id.Known() {
			resolved = "known"
		}
		_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", arg, field.Canonicalize(arg), resolved)
	}

	return nil
}
