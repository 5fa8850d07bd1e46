package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "uav-deconflict",
	Short: "UAV strategic deconfliction toolkit",
	Long:  "uav-deconflict checks planned drone missions against registered traffic for separation violations.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scenariosCmd)
}
