package config

import (
	"fmt"
	"strings"

	internal "github.com/ZanzyTHEbar/treeview/treeview"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	TreeView TreeViewConfig `mapstructure:"treeview"`
}

// TreeViewConfig stores the settings of the tree printer.
type TreeViewConfig struct {
	// StartPath is used when no path argument is given.
	StartPath string `mapstructure:"startPath"`
	LogLevel  string `mapstructure:"logLevel"`
}

// LoadConfig reads configuration from file or environment variables.
// A missing config file is not an error; defaults are used instead.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(internal.DefaultConfigPath)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetDefault("treeview.startPath", internal.DefaultStartPath)
	v.SetDefault("treeview.logLevel", internal.DefaultLogLevel)

	// treeview.startPath becomes TREEVIEW_STARTPATH
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &cfg, nil
}
