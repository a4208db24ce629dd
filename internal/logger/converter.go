package logger

import (
	"github.com/ardriveapp/arnetwork/internal/config"
)

// ConvertConfig converts the file log section to a LoggerConfig.
// An invalid level is reported but still yields a usable info-level config.
func ConvertConfig(cfg config.LogConfig) (LoggerConfig, error) {
	level, err := ParseLevel(cfg.LogLevel)

	maxSize := cfg.MaxLogSizeMB
	if maxSize <= 0 {
		maxSize = config.DefaultMaxLogSizeMB
	}
	maxBackups := cfg.MaxLogBackups
	if maxBackups <= 0 {
		maxBackups = config.DefaultMaxLogBackups
	}

	return LoggerConfig{
		Level:         level,
		Format:        ParseFormat(cfg.LogFormat),
		EnableConsole: true,
		EnableFile:    cfg.LogFile != "",
		FilePath:      cfg.LogFile,
		MaxSizeMB:     maxSize,
		MaxBackups:    maxBackups,
	}, err
}
