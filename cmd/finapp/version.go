package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridable at build time via -ldflags.
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of finapp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("finapp version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
