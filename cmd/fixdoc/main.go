package main

import (
	"fmt"
	"os"

	"fixdoc/cli"
	"fixdoc/internal/app"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := app.New(cfg)
	if err := a.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
