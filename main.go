package main

import (
	"os"

	"github.com/mhmaidi/folio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
