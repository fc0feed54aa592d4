package main

import (
	"os"

	"github.com/Imaliure/adaptive-language-learning/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
