package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andriiko/attache/pkg/assistant"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of attache",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("attache version %s\n", assistant.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
