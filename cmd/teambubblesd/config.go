package main

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config the application's configuration structure
type Config struct {
	HTTPListenPort  int    `validate:"min=1,max=65535"`
	RedisListenPort int    `validate:"min=0,max=65535"`
	RedisAddress    string `validate:"required_if=Source redis"`
	TasksKey        string `validate:"required"`
	TasksFile       string `validate:"required_if=Source file"`
	Source          string `validate:"oneof=redis file"`
	DefaultFormat   string `validate:"oneof=html text json yaml"`
	Locale          string `validate:"oneof=en fi"`
	NameTieBreak    bool
	LogLevel        string `validate:"oneof=trace debug info warn warning error fatal panic"`
	Profiling       bool
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"http-port":     "httpListenPort",
	"redis-port":    "redisListenPort",
	"redis-address": "redisAddress",
	"tasks-key":     "tasksKey",
	"tasks-file":    "tasksFile",
	"source":        "source",
	"format":        "defaultFormat",
	"locale":        "locale",
	"log-level":     "logLevel",
	"profiling":     "profiling",
}

// LoadConfig loads the config from a file if specified, otherwise from the environment
func LoadConfig(cmd *cobra.Command, envPrefix string) (*Config, error) {
	// Setting defaults for this application
	viper.SetDefault("httpListenPort", 8080)
	viper.SetDefault("redisListenPort", 6380)
	viper.SetDefault("redisAddress", "localhost:6379")
	viper.SetDefault("tasksKey", "teambubbles:tasks")
	viper.SetDefault("tasksFile", "")
	viper.SetDefault("source", "redis")
	viper.SetDefault("defaultFormat", "html")
	viper.SetDefault("locale", "en")
	viper.SetDefault("nameTieBreak", false)
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("profiling", false)

	// Read Config from ENV
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	// Read Config from Flags
	for name, key := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := viper.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}

	// Read Config from file
	if configFile, err := cmd.Flags().GetString("config-file"); err == nil && configFile != "" {
		viper.SetConfigFile(configFile)

		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config Config

	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}

	return &config, nil
}
