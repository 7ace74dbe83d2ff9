// Package config loads tabdo settings from .tabdo.yaml and TABDO_* env vars.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/tabdo/pkg/tab"
)

const (
	keyTab        = "tab"
	keyCategories = "categories"
	keyLogLevel   = "log-level"
	keyLogFile    = "log-file"
)

// Config is the resolved configuration.
type Config struct {
	// Tab is the tab selected at startup.
	Tab tab.Tab `json:"tab"`
	// Categories are declared before any task is added.
	Categories []string `json:"categories,omitempty"`
	LogLevel   string   `json:"logLevel"`
	// LogFile receives logs while the terminal UI owns the screen.
	LogFile string `json:"logFile,omitempty"`
}

// Load reads .tabdo.yaml from TABDO_CONFIG_PATH, the extra paths, the working
// directory and the home directory, in that order. A missing file is fine.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keyTab, string(tab.Uncategorized))
	v.SetDefault(keyLogLevel, "info")
	v.SetConfigName(".tabdo") // .yaml is implicit
	v.SetEnvPrefix("TABDO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("TABDO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	logFile := v.GetString(keyLogFile)
	if logFile != "" {
		expanded, err := homedir.Expand(logFile)
		if err != nil {
			return nil, fmt.Errorf("config: expand %s: %w", keyLogFile, err)
		}
		logFile = expanded
	}

	return &Config{
		Tab:        tab.Parse(v.GetString(keyTab)),
		Categories: v.GetStringSlice(keyCategories),
		LogLevel:   v.GetString(keyLogLevel),
		LogFile:    logFile,
	}, nil
}
