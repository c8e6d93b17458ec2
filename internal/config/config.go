package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings for a migration run.
type Config struct {
	// ServerURL is the Immich API base URL. It also serves as the endpoint
	// identity recorded in the checkpoint file.
	ServerURL string `mapstructure:"server_url"`

	// APIKey is the Immich API key sent in the x-api-key header.
	APIKey string `mapstructure:"api_key"`

	// ParallelUploads is the number of concurrent uploads per album batch.
	ParallelUploads int `mapstructure:"parallel_uploads"`

	// DryRun makes the run simulate-only: no network mutations, no
	// checkpoint write.
	DryRun bool `mapstructure:"dry_run"`

	path string `mapstructure:"-"`
}

func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("missing server_url (%s)", c.path)
	}
	if c.APIKey == "" && !c.DryRun {
		return fmt.Errorf("missing api_key (%s)", c.path)
	}
	if c.ParallelUploads <= 0 {
		return fmt.Errorf("parallel_uploads must be positive, got %d (%s)", c.ParallelUploads, c.path)
	}
	return nil
}

// DefaultConfigPath returns the default path for the immichtree config file.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine user config dir: %w", err)
	}
	return filepath.Join(dir, "immichtree", "config.toml"), nil
}

// Load reads the config file, if one exists, and applies environment
// overrides. A missing config file is not an error; all values can come from
// the environment or command-line flags.
func Load(configPathFlag string) (Config, error) {
	v := viper.New()
	// Every key needs a default registered so environment overrides are
	// visible to Unmarshal.
	v.SetDefault("server_url", "")
	v.SetDefault("api_key", "")
	v.SetDefault("parallel_uploads", 4)
	v.SetDefault("dry_run", false)

	// Allow users to override config values with environment variables,
	// e.g. IMMICHTREE_API_KEY.
	v.SetEnvPrefix("IMMICHTREE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := configPathFlag
	if path == "" {
		if p, err := DefaultConfigPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			// The default config file is optional; one named explicitly
			// via the flag is not.
			if configPathFlag != "" || !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("error reading (%s): %w", path, err)
			}
		}
	}

	config := Config{path: path}
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling (%s): %w", path, err)
	}
	return config, nil
}
