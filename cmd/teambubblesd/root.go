package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "teambubblesd <subcommand>",
	Short: "renders per-team vote bubbles from task records",
	Long:  `aggregates votes per team from task records and renders them as size-scaled bubbles over HTTP, the redis protocol or stdout`,
	Run:   nil,
}

func init() {
	cobra.OnInitialize()
	rootCmd.PersistentFlags().StringP("config-file", "c", "", "Path to the config file (eg ./config.yaml) [Optional]")
}
