package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/fsx"
)

// Config holds all configuration options.
type Config struct {
	// Encoding is the default IANA encoding name for the lines command.
	// Empty means UTF-8 with BOM detection.
	Encoding string

	// SkipHidden makes du exclude hidden files and directories by default.
	SkipHidden bool
}

// fileConfig mirrors Config for parsing. Pointer fields distinguish
// "absent" from "explicitly set to the zero value" during merging.
type fileConfig struct {
	Encoding   *string `json:"encoding"`
	SkipHidden *bool   `json:"skip_hidden"` //nolint:tagliatelle // snake_case for config file
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// ConfigFileName is the default project config file name.
const ConfigFileName = ".fsx.json"

var (
	errConfigFileNotFound = errors.New("config file not found")
	errConfigFileRead     = errors.New("cannot read config file")
	errConfigInvalid      = errors.New("invalid config file")
)

// getGlobalConfigPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/fsx/config.json if set, otherwise
// ~/.config/fsx/config.json. Returns empty string if the home directory
// cannot be determined.
func getGlobalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "fsx", "config.json")
	}

	home, err := os.UserHomeDir()
	if err == nil {
		return filepath.Join(home, ".config", "fsx", "config.json")
	}

	return ""
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/fsx/config.json or $XDG_CONFIG_HOME/fsx/config.json)
// 3. Project config file at default location (.fsx.json in workDir, if exists)
// 4. Explicit config file via configPath (if non-empty).
func LoadConfig(workDir, configPath string, env map[string]string) (Config, ConfigSources, error) {
	var (
		cfg     Config
		sources ConfigSources
	)

	globalPath := getGlobalConfigPath(env)
	if globalPath != "" {
		loaded, err := mergeConfigFile(&cfg, globalPath, false)
		if err != nil {
			return Config{}, ConfigSources{}, err
		}

		if loaded {
			sources.Global = globalPath
		}
	}

	projectPath := filepath.Join(workDir, ConfigFileName)
	mustExist := false

	if configPath != "" {
		projectPath = configPath
		if !filepath.IsAbs(projectPath) {
			projectPath = filepath.Join(workDir, projectPath)
		}

		mustExist = true
	}

	loaded, err := mergeConfigFile(&cfg, projectPath, mustExist)
	if err != nil {
		return Config{}, ConfigSources{}, err
	}

	if loaded {
		sources.Project = projectPath
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, ConfigSources{}, err
	}

	return cfg, sources, nil
}

// mergeConfigFile loads a config file and merges its set fields into cfg.
// If mustExist is false, a missing file is not an error.
// Reports whether the file was loaded.
func mergeConfigFile(cfg *Config, path string, mustExist bool) (bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return false, nil
		}

		if mustExist {
			if os.IsNotExist(err) {
				return false, fmt.Errorf("%w: %s", errConfigFileNotFound, path)
			}

			return false, fmt.Errorf("%w: %s", errConfigFileRead, path)
		}

		return false, nil
	}

	fileCfg, err := parseConfig(data)
	if err != nil {
		return false, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}

	if fileCfg.Encoding != nil {
		cfg.Encoding = *fileCfg.Encoding
	}

	if fileCfg.SkipHidden != nil {
		cfg.SkipHidden = *fileCfg.SkipHidden
	}

	return true, nil
}

func parseConfig(data []byte) (fileConfig, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg fileConfig

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}

// validateConfig rejects settings that would only fail later, at use time.
func validateConfig(cfg Config) error {
	if cfg.Encoding != "" {
		if _, err := fsx.EncodingByName(cfg.Encoding); err != nil {
			return fmt.Errorf("%w: %w", errConfigInvalid, err)
		}
	}

	return nil
}
