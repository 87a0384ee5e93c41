package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/picklist-dev/picklist/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬┌─┐┬┌─┬  ┬┌─┐┌┬┐
  ├─┘││  ├┴┐│  │└─┐ │
  ┴  ┴└─┘┴ ┴┴─┘┴└─┘ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "picklist",
		Short: "Multi-select dropdown kit for server-driven Go web UIs",
		Long: `Picklist renders a multi-select dropdown checklist whose state
lives entirely in the host Go application.

The CLI drives the showcase, one demo page per widget feature:

  • serve    run the live showcase over WebSocket
  • render   render one page to static HTML
  • publish  snapshot every page to disk or S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		renderCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
