package main

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	fileSource "github.com/cafebazaar/teambubbles/internal/source/file"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "append tasks from --tasks-file to the redis list",
	Run:   seed,
}

func init() {
	addSourceFlags(seedCmd)

	rootCmd.AddCommand(seedCmd)
}

func seed(cmd *cobra.Command, args []string) {
	config := loadConfigOrPanic(cmd)
	if config.TasksFile == "" {
		log.Panic("--tasks-file is required")
	}

	ctx := context.Background()
	tasks, err := fileSource.New(config.TasksFile).Tasks(ctx)
	if err != nil {
		panicWithError(err, "failed to read tasks")
	}

	store := connectToRedis(config)
	defer func() {
		_ = store.Close()
	}()

	if err := store.Append(ctx, tasks...); err != nil {
		panicWithError(err, "failed to append tasks")
	}

	log.WithField("tasks", len(tasks)).Info("seeded tasks")
}
