package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "unityforge",
	Short: "unityforge bridges an AI agent to a Unity Editor session",
	Long:  `unityforge exposes scene, GameObject, component, asset and prefab operations to MCP clients, dispatching untyped commands against the editor object graph.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
}
