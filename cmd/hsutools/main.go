package main

import (
	"fmt"
	"os"

	"github.com/harrison/hsutools/internal/cmd"
	"github.com/harrison/hsutools/internal/i18n"
)

func main() {
	// Help text is built before flag parsing, so pick the language from the raw args.
	lang := i18n.Resolve(os.Args[1:], "")
	rootCmd := cmd.NewRootCommand(lang)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
