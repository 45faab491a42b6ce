package main

import (
	"os"

	"github.com/mrosset/stratlab/cmd/stratlab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
