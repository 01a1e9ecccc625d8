package main

import (
	"os"

	"github.com/shirley/readingcoach/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
