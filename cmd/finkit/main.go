package main

import (
	"os"

	"github.com/msto63/finkit/cmd/finkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
