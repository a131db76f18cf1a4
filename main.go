package main

import (
	"os"

	"github.com/Nakul24-1/merge-dev-proto/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
