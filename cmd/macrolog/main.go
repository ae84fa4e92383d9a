package main

import (
	"context"
	"fmt"
	"os"

	"github.com/terraincognita07/macrolog/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "macrolog: %v\n", err)
		os.Exit(1)
	}
}
