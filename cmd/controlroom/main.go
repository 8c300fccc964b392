package main

import (
	"os"

	"github.com/aetheronum/controlroom/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
