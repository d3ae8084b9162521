package main

import (
	"os"
)

const envPrefix = "TEAMBUBBLES"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
