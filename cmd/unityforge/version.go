package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	unityforge "github.com/kuroyasouiti/unityforge"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of unityforge",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("unityforge version %s\n", strings.TrimSpace(unityforge.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
