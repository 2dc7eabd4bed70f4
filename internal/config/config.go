package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"
)

type SimpleDbConfig struct {
	// Console Configuration
	Prompt       string `mapstructure:"prompt" default:"" description:"the prompt printed before each command"`
	Banner       bool   `mapstructure:"banner" default:"true" description:"Whether to print the welcome and goodbye lines"`
	StrictCommit bool   `mapstructure:"strictCommit" default:"false" description:"Whether COMMIT without a transaction reports NO TRANSACTION"`
	LogLevel     string `mapstructure:"logLevel" default:"warn" description:"Log Level"`
}

var Config *SimpleDbConfig

const (
	configPath = "./"
	envPrefix  = "SIMPLEDB"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("prompt", "")
	v.SetDefault("banner", true)
	v.SetDefault("strictCommit", false)
	v.SetDefault("logLevel", "warn")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// LoadConfig reads config.json from the working directory, or configFile when
// it is set. Only an explicitly named file has to exist.
func LoadConfig(configFile string) error {
	v := newViper()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath(configPath)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			slog.Error("Failed to read config", "file", configFile, "error", err)
			return fmt.Errorf("read config: %w", err)
		}
		slog.Debug("No config file found, using defaults")
	}

	loaded := &SimpleDbConfig{}
	if err := v.Unmarshal(loaded); err != nil {
		slog.Error("Failed to parse config", "error", err)
		return fmt.Errorf("parse config: %w", err)
	}

	Config = loaded
	return nil
}

// Default returns the configuration used when nothing is loaded
func Default() *SimpleDbConfig {
	return &SimpleDbConfig{
		Prompt:       "",
		Banner:       true,
		StrictCommit: false,
		LogLevel:     "warn",
	}
}
