package main

import (
	"fmt"
	"os"

	"catalog-scrape/pkg/config"
)

func main() {
	cfg := config.FromEnv()

	app := newCLIApp(cfg)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
