package main

import (
	"os"

	"github.com/katalvlaran/welltie/internal/cli"
)

func main() {
	if err := cli.NewRoot(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
