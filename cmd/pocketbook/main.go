package main

import (
	"os"

	"github.com/rustyeddy/pocketbook/cmd/pocketbook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
