package main

import (
	"os"

	"github.com/cyranoaladin/nexus-scoring/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
