// This file defines the configuration structure for the application.
package config

import (
	// use Viper for loading the config.yml file.
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration settings for the application.
// It maps directly to the structure of config.yml.
type Config struct {
	Prompt string `mapstructure:"prompt"`
	Data   struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"data"`
	Registry struct {
		File string `mapstructure:"file"`
	} `mapstructure:"registry"`
	Lock struct {
		File string `mapstructure:"file"`
	} `mapstructure:"lock"`
	URL struct {
		Base string `mapstructure:"base"`
	} `mapstructure:"url"`
	Sites struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"sites"`
	Open struct {
		Browser   bool `mapstructure:"browser"`
		Clipboard bool `mapstructure:"clipboard"`
	} `mapstructure:"open"`
}

// RegistryPath returns the full path of the JSON registry file.
func (c *Config) RegistryPath() string {
	return filepath.Join(c.Data.Path, c.Registry.File)
}

// LockPath returns the full path of the single-instance lock file.
func (c *Config) LockPath() string {
	return filepath.Join(c.Data.Path, c.Lock.File)
}

// SitesPath returns the directory holding the site definition files.
// A relative sites.path is resolved inside the data directory.
func (c *Config) SitesPath() string {
	if filepath.IsAbs(c.Sites.Path) {
		return c.Sites.Path
	}
	return filepath.Join(c.Data.Path, c.Sites.Path)
}

// Load reads configuration from a file named "config.yml" in the
// current directory and unmarshals it into a Config struct.
func Load() (*Config, error) {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or "yaml"
	viper.AddConfigPath(".")      // looking for config in the current directory

	// --- Environment Variable Overrides ---
	// This tells Viper to look for environment variables with a "GETBOOK_" prefix.
	// e.g., GETBOOK_DATA_PATH will override the `data.path` key.
	viper.SetEnvPrefix("GETBOOK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("prompt", "Book name: ")
	viper.SetDefault("data.path", "./book-data")
	viper.SetDefault("registry.file", "books.json")
	viper.SetDefault("lock.file", "get-book.lock")
	viper.SetDefault("url.base", "https://example")
	viper.SetDefault("sites.path", "sites")
	viper.SetDefault("open.browser", false)
	viper.SetDefault("open.clipboard", false)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error and use defaults
		} else {
			// Config file was found but another error was produced
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
