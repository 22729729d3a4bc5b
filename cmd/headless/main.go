// Command headless runs scenarios without a window and prints what
// happened.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "headless",
	Short:        "Fireteam headless simulation runner",
	Long:         `Runs scripted fireteam scenarios at a fixed tick rate and reports the outcome.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(bindingsCmd)
}
