package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Store   StoreConfig   `yaml:"store,omitempty"`
	API     APIConfig     `yaml:"api,omitempty"`
	Digest  DigestConfig  `yaml:"digest,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// StoreConfig locates the persisted username store
type StoreConfig struct {
	// Path to the text file holding the tracked usernames
	Path string `yaml:"path,omitempty"`
}

// APIConfig contains settings for talking to the LeetCode GraphQL API
type APIConfig struct {
	Endpoint string `yaml:"endpoint,omitempty" validate:"omitempty,url"`
	// SubmissionLimit bounds how many recent submissions are requested per user
	SubmissionLimit int `yaml:"submission_limit,omitempty" validate:"omitempty,gte=1"`
	// TimeoutSeconds bounds each remote call.  The upstream design had no
	// timeout at all; this is the hardening knob that replaces it.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty" validate:"omitempty,gte=1"`
	// MaxInFlight caps concurrent requests during batched fetches
	MaxInFlight int `yaml:"max_in_flight,omitempty" validate:"omitempty,gte=1"`
}

// DigestConfig contains settings for the multi-user digest
type DigestConfig struct {
	// MaxUsers is the largest registry size the digest will render in one message
	MaxUsers int `yaml:"max_users,omitempty" validate:"omitempty,gte=1"`
}

// LoggingConfig contains log related settings
type LoggingConfig struct {
	Level    string `yaml:"level,omitempty"`
	FilePath string `yaml:"file_path,omitempty"`
}

// Load builds a configuration struct from multiple sources using these steps:
// 1. Create a base config with default values
// 2. If no config file exists on disk, save the default config to that location
// 3. Apply 'dynamic' properties.  Dynamic properties are those that are determined at runtime, for example the log file location which is different per OS.
// 4. Load & merge the config file, overwriting any defaults with user-specified values
// 5. Apply environment variable overrides
// 6. Validate the result
func Load() (*Config, error) {
	// 1. Start with base defaults
	cfg := createBaseDefaultConfig()

	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("unable to determine config file path: %w", err)
	}

	// 2. If no config file exists on disk, then write a default one
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		// If there is an error saving the default config, then still let the application startup using the defaults.
		_ = save(cfg, configPath)
	}

	// 3. Apply dynamic defaults if necessary
	applyDynamicDefaults(cfg)

	// 4. Load the config from disk and merge it into the base defaults
	fileConfig, err := loadFromDisk(configPath)
	if err != nil {
		return nil, err
	}
	// Overrides the config with any values coming from the loaded file
	if err = mergo.Merge(cfg, fileConfig, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging config loaded from disk: %w", err)
	}

	// 5. Apply the environment variable overrides which take precedence
	applyEnvVarOverrides(cfg)

	// 6. Reject configs that cannot possibly work
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDynamicDefaults sets runtime-determined default values for any properties that haven't been explicitly configured.
// Unlike static defaults, these values might change between runs based on the environment or system configuration.
func applyDynamicDefaults(cfg *Config) {
	cfg.Logging.FilePath = defaultLogFilePath()
	cfg.Store.Path = defaultStorePath()
}

// loadFromDisk loads the YAML config from disk and returns the unmarshalled Config
func loadFromDisk(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	return cfg, nil
}

func save(cfg *Config, configPath string) error {
	// Create config dir if not exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// getConfigPath returns the path to the config file.  Uses the environment variable override if present, else tries
// to use OS config location defaults.
func getConfigPath() (string, error) {
	configPath := os.Getenv("LCWATCH_CONFIG_PATH")
	if configPath != "" {
		return configPath, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	lcwatchConfigDir := filepath.Join(configDir, "lcwatch")
	return filepath.Join(lcwatchConfigDir, "config.yaml"), nil
}

// createBaseDefaultConfig creates a config with all default values
func createBaseDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{},
		API: APIConfig{
			Endpoint:        "https://leetcode.com/graphql",
			SubmissionLimit: 20,
			TimeoutSeconds:  10,
			MaxInFlight:     10,
		},
		Digest: DigestConfig{
			MaxUsers: 5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// defaultStorePath returns the path to the username store, next to the config file.
func defaultStorePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to the current directory if the config directory cannot be determined
		return filepath.Join(".", "users.txt")
	}
	return filepath.Join(configDir, "lcwatch", "users.txt")
}

// defaultLogFilePath returns the path to the log file.  Tries to use expected OS location defaults.
func defaultLogFilePath() string {
	var basePath string
	homedir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to logging in the current directory if home directory cannot be determined
		return filepath.Join(".", "lcwatch.log")
	}

	switch runtime.GOOS {
	case "windows":
		// Windows:  %LOCALAPPDATA%\lcwatch\logs
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			basePath = filepath.Join(appData, "lcwatch", "logs")
		} else {
			basePath = filepath.Join(homedir, "AppData", "local", "lcwatch", "logs")
		}
	case "darwin":
		// macOS:  ~/Library/Logs/lcwatch
		basePath = filepath.Join(homedir, "Library", "Logs", "lcwatch")
	default:
		// Linux/BSD:  XDG_STATE_HOME
		if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
			basePath = filepath.Join(xdgState, "lcwatch", "logs")
		} else {
			basePath = filepath.Join(homedir, ".local", "state", "lcwatch", "logs")
		}
	}

	err = os.MkdirAll(basePath, 0700)
	if err != nil {
		// If we failed to create the directory, fallback to logging in the current directory
		return filepath.Join(".", "lcwatch.log")
	}
	return filepath.Join(basePath, "lcwatch.log")
}
