package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jvsutil",
		Short: "Decode, capture and poll JVS packets",
		Long: `jvsutil is a debugging companion for JVS-style serial buses.

It understands both protocol families:

  standard  JAMMA Video Standard arcade I/O
  modified  reordered variant used by card/NFC readers

Commands:

  decode    decode a captured frame from hex bytes
  listen    attach to a serial port and log every frame
  poll      send one request and print the decoded response`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		decodeCmd(),
		listenCmd(),
		pollCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("jvsutil %s (%s)\n", version, commit)
		},
	}
}
