// Package main provides the entry point for the quran CLI.
package main

import (
	"fmt"
	"os"

	"github.com/raphaelgruber/quran-mcp-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
