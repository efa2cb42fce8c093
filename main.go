package main

import (
	"os"

	"github.com/abhisek/conectivo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
