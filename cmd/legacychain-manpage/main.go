package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/legacychain/cmd/legacychain/commands"
	"github.com/arthur-debert/legacychain/internal/version"
)

func main() {
	rootCmd := commands.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "LEGACYCHAIN",
		Section: "1",
		Source:  "legacychain " + version.Version,
		Manual:  "legacychain manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
