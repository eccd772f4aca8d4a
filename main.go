package main

import (
	"os"

	"github.com/chris-regnier/diary/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
