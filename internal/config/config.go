package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ardriveapp/arnetwork/internal/common"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	FetchConfig      FetchConfig      `json:"fetch_config,omitempty" yaml:"fetch_config,omitempty"`
	HTTPClientConfig HTTPClientConfig `json:"http_client_config,omitempty" yaml:"http_client_config,omitempty"`
	CompareConfig    CompareConfig    `json:"compare_config,omitempty" yaml:"compare_config,omitempty"`
	LogConfig        LogConfig        `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		FetchConfig:      NewDefaultFetchConfig(),
		HTTPClientConfig: NewDefaultHTTPClientConfig(),
		CompareConfig:    NewDefaultCompareConfig(),
		LogConfig:        NewDefaultLogConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// Values missing from the file keep their defaults. YAML is used for .yaml and
// .yml files, JSON otherwise. With no file found the defaults are returned.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	if providedPath != "" && !fileExists(providedPath) {
		return nil, common.NewValidationError("config_file", providedPath, "config file does not exist")
	}

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	data, err := readConfigFile(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	return cfg, nil
}

func readConfigFile(filePath string) ([]byte, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigFileSize {
		return nil, common.NewValidationError("config_file", filePath, "config file exceeds 10MB")
	}
	return os.ReadFile(filePath)
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	if isYAMLFile(filepath.Ext(filePath)) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return common.WrapErrorf(err, "failed to unmarshal YAML from '%s'", filePath)
	}
	return nil
}

func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.WrapErrorf(err, "failed to unmarshal JSON from '%s'", filePath)
	}
	return nil
}
