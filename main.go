package main

import (
	"os"

	"github.com/avikram/pathwise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
