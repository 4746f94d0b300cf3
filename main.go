package main

import (
	"os"

	"github.com/upskill-labs/upskill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
