package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "render the bubbles once to stdout",
	Run:   renderOnce,
}

func init() {
	addSourceFlags(renderCmd)

	rootCmd.AddCommand(renderCmd)
}

func renderOnce(cmd *cobra.Command, args []string) {
	config := loadConfigOrPanic(cmd)

	svc := getService(configureSourceOrPanic(config), config)
	defer func() {
		if err := svc.Close(); err != nil {
			log.WithError(err).Warn("failed to close task source")
		}
	}()

	response, err := svc.Render(context.Background(), &teambubbles.RenderRequest{})
	if err != nil {
		panicWithError(err, "failed to render")
	}

	if _, err := os.Stdout.Write(response.Data); err != nil {
		panicWithError(err, "failed to write output")
	}
}
