package main

import (
	"github.com/spf13/cobra"
)

var (
	// localeFlag is the locale put on built envelopes
	localeFlag string
	// compactFlag prints single-line JSON
	compactFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Run the voice chat skill locally",
	Long: `invoke feeds request envelopes to the skill dispatcher in-process and prints
the response envelope. It uses the same config.yaml and LLM providers as the server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "ja-JP", "Locale of built envelopes")
	rootCmd.PersistentFlags().BoolVar(&compactFlag, "compact", false, "Print compact JSON")
}
