package main

import (
	"os"

	"github.com/PankajKumardev/initgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
