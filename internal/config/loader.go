package config

import (
	"os"
	"path/filepath"
)

// GetConfigPath determines the configuration file path.
// Priority:
// 1. configFilePathFlag (from --config)
// 2. ARNETWORK_CONFIG_PATH environment variable
// 3. config.yaml, then config.json, in the current working directory
// 4. config.yaml, then config.json, in the executable's directory
// Returns "" when nothing is found.
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" && fileExists(configFilePathFlag) {
		return configFilePathFlag
	}

	if envPath := os.Getenv(ConfigPathEnv); envPath != "" && fileExists(envPath) {
		return envPath
	}

	cwd, errCwd := os.Getwd()
	exeDir := ""
	if exePath, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exePath)
	}

	var locations []string
	if errCwd == nil {
		locations = append(locations, cwd)
	}
	if exeDir != "" && (errCwd != nil || exeDir != cwd) {
		locations = append(locations, exeDir)
	}

	for _, loc := range locations {
		for _, file := range []string{"config.yaml", "config.json"} {
			path := filepath.Join(loc, file)
			if fileExists(path) {
				return path
			}
		}
	}
	return ""
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
