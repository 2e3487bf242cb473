package main

import (
	"os"

	"funcexplorer.com/explorer/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
