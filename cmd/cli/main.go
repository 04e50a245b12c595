package main

import (
	"os"

	"github.com/cruisebase/cruisebase/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
