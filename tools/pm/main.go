package main

import "github.com/zostay/go-httpheader/tools/pm/cmd"

func main() {
	cmd.Execute()
}
