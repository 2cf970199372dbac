package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "slotwise",
	Short: "Resolve and inspect slot values from voice-assistant request envelopes",
	Long: `Slotwise reads a request envelope (JSON or YAML) produced by a voice
platform and extracts the canonical resolved values for intent slots.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
