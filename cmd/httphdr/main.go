package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-httpheader/cmd/httphdr/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
