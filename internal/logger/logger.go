package logger

import (
	"github.com/ardriveapp/arnetwork/internal/config"
	"github.com/rs/zerolog"
)

// New builds the application logger from the file log section.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}
