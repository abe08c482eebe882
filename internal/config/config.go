// Package config loads application settings from a YAML config file,
// PATHWISE_* environment variables and command-line flags, in
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds everything the app needs at startup.
type Config struct {
	// APIBaseURL is the progress API root, e.g. https://api.example.com.
	// Empty means remote sync is off and attempts stay local.
	APIBaseURL string

	// Token is the bearer token for the progress API.
	Token string

	// DBPath overrides the default local database location.
	DBPath string

	// LogPath overrides the default log file location.
	LogPath string

	// Coach enables AI feedback on freeform sessions. The provider and
	// model come from the coach package's own environment discovery.
	Coach bool
}

// Load builds a Config for a command: defaults, then the config file,
// then environment, then the command's flags.
func Load(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "pathwise"))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("PATHWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("api-url", "")
	v.SetDefault("token", "")
	v.SetDefault("db", "")
	v.SetDefault("log", "")
	v.SetDefault("coach", false)

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		APIBaseURL: strings.TrimRight(v.GetString("api-url"), "/"),
		Token:      v.GetString("token"),
		DBPath:     v.GetString("db"),
		LogPath:    v.GetString("log"),
		Coach:      v.GetBool("coach"),
	}, nil
}
