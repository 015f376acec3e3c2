package main

import (
	"fmt"

	"github.com/spf13/cobra"

	solarflow "github.com/caue-mor/saas-solar"
	"github.com/caue-mor/saas-solar/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of solarflow",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner()
		fmt.Printf("solarflow version %s\n", solarflow.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
