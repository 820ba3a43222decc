package main

import (
	"os"

	"github.com/grichal/desingPatterns/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
