package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis"
	"github.com/pkg/profile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cafebazaar/teambubbles/internal/aggregation"
	"github.com/cafebazaar/teambubbles/internal/core"
	"github.com/cafebazaar/teambubbles/internal/layout"
	"github.com/cafebazaar/teambubbles/internal/metrics"
	"github.com/cafebazaar/teambubbles/internal/render"
	fileSource "github.com/cafebazaar/teambubbles/internal/source/file"
	redisSource "github.com/cafebazaar/teambubbles/internal/source/redis"
	httpTransport "github.com/cafebazaar/teambubbles/internal/transport/http"
	redisTransport "github.com/cafebazaar/teambubbles/internal/transport/redis"
	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start Server",
	Run:   serve,
}

func init() {
	serveCmd.Flags().Int("http-port", 8080, "HTTP listen port")
	serveCmd.Flags().Int("redis-port", 6380, "Redis protocol listen port, 0 disables it")
	serveCmd.Flags().Bool("profiling", false, "Write a CPU profile while serving")
	addSourceFlags(serveCmd)

	rootCmd.AddCommand(serveCmd)
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("source", "redis", "Task source: redis or file")
	cmd.Flags().String("redis-address", "localhost:6379", "Address of the redis holding tasks")
	cmd.Flags().String("tasks-key", "teambubbles:tasks", "Redis list holding JSON tasks")
	cmd.Flags().String("tasks-file", "", "JSON or YAML file holding tasks")
	cmd.Flags().String("format", "html", "Default output format: html, text, json or yaml")
	cmd.Flags().String("locale", "en", "Default locale: en or fi")
	cmd.Flags().String("log-level", "info", "Log level")
}

func serve(cmd *cobra.Command, args []string) {
	config := loadConfigOrPanic(cmd)

	if config.Profiling {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	svc := getService(configureSourceOrPanic(config), config, core.WithMetrics(metrics.New(registry)))

	servers := []teambubbles.Server{
		httpTransport.New(svc, config.HTTPListenPort, httpTransport.WithGatherer(registry)),
	}
	if config.RedisListenPort != 0 {
		servers = append(servers, redisTransport.New(svc, config.RedisListenPort))
	}

	for _, server := range servers {
		startServerOrPanic(server)
	}
	log.WithFields(log.Fields{
		"http":  config.HTTPListenPort,
		"redis": config.RedisListenPort,
	}).Info("serving team bubbles")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	for _, server := range servers {
		shutdownServerOrPanic(server)
	}

	if err := svc.Close(); err != nil {
		log.WithError(err).Warn("failed to close task source")
	}
}

func loadConfigOrPanic(cmd *cobra.Command) *Config {
	config, err := LoadConfig(cmd, envPrefix)
	if err != nil {
		log.WithError(err).Panic("Failed to load configurations")
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		log.WithError(err).Panic("invalid log level")
	}
	log.SetLevel(level)

	return config
}

func configureSourceOrPanic(config *Config) teambubbles.TaskSource {
	switch config.Source {
	case "redis":
		return connectToRedis(config)

	case "file":
		return fileSource.New(config.TasksFile)

	default:
		log.Panicf("unknown task source: %v", config.Source)
		return nil
	}
}

func connectToRedis(config *Config) teambubbles.TaskStore {
	client := redis.NewClient(&redis.Options{Addr: config.RedisAddress})
	return redisSource.New(client, config.TasksKey)
}

func getService(source teambubbles.TaskSource, config *Config, options ...core.Option) teambubbles.Service {
	var aggregatorOptions []aggregation.Option
	if config.NameTieBreak {
		aggregatorOptions = append(aggregatorOptions, aggregation.WithNameTieBreak())
	}

	options = append(options,
		core.WithDefaultFormat(config.DefaultFormat),
		core.WithDefaultLocale(config.Locale))

	return core.New(source,
		aggregation.New(aggregatorOptions...),
		layout.New(layout.WithDefaultLocale(config.Locale)),
		render.New,
		options...)
}

func startServerOrPanic(server teambubbles.Server) {
	err := server.Start()
	if err != nil {
		panicWithError(err, "failed to start server")
	}
}

func shutdownServerOrPanic(server teambubbles.Server) {
	if err := server.Close(); err != nil {
		panicWithError(err, "failed to close server")
	}
}

func panicWithError(err error, format string, args ...interface{}) {
	log.WithError(err).Panicf(format, args...)
}
