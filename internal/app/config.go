// Package app provides the application initialization and wiring.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/bnema/infradeploy/internal/adapters/out/telemetry"
)

// Config is the full infradeploy configuration.
type Config struct {
	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
			Compress   bool   `mapstructure:"compress"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`

	Docker struct {
		Host       string `mapstructure:"host"`
		APIVersion string `mapstructure:"api_version"`
	} `mapstructure:"docker"`

	State struct {
		ImagesFile string `mapstructure:"images_file"`
	} `mapstructure:"state"`

	Images struct {
		DefaultRegistry string `mapstructure:"default_registry"`
		PullConcurrency int    `mapstructure:"pull_concurrency"`
	} `mapstructure:"images"`

	Orchestrator struct {
		ConnectNetworks []string `mapstructure:"connect_networks"`
	} `mapstructure:"orchestrator"`

	Telemetry telemetry.Config `mapstructure:"telemetry"`

	Deployment Deployment `mapstructure:"deployment"`
}

// DefaultStateDir returns the directory holding persisted state.
// Uses ~/.infradeploy for user installations, /var/lib/infradeploy as fallback.
func DefaultStateDir() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".infradeploy")
	}
	return "/var/lib/infradeploy"
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: infradeploy.yaml
// Search paths (in order): /etc/infradeploy, ~/.config/infradeploy, current directory
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.SetConfigName("infradeploy")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/infradeploy")
	v.AddConfigPath("$HOME/.config/infradeploy")
	v.AddConfigPath(".")
}

// LoadConfig reads configuration from configPath, or from the default search
// paths when configPath is empty. A missing default file is not an error.
func LoadConfig(configPath string) (Config, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// loadConfig sets defaults, reads the config file and enables INFRADEPLOY_*
// environment overrides.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("logging.file.compress", true)
	v.SetDefault("docker.host", "")
	v.SetDefault("docker.api_version", "")
	v.SetDefault("state.images_file", filepath.Join(DefaultStateDir(), "images.json"))
	v.SetDefault("images.default_registry", "")
	v.SetDefault("images.pull_concurrency", 1)
	v.SetDefault("orchestrator.connect_networks", []string{})
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.traces", true)
	v.SetDefault("telemetry.metrics", true)
	v.SetDefault("telemetry.trace_sample_rate", 1.0)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("INFRADEPLOY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}
