package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/legacychain/cmd/legacychain/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, commands.MsgErrorFormat, err)
		os.Exit(1)
	}
}
