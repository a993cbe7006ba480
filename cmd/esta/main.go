package main

import (
	"os"

	"github.com/isgasho/esta/cmd/esta/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
