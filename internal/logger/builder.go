package logger

import (
	"io"
	stdlog "log"

	"github.com/ardriveapp/arnetwork/internal/common"
	"github.com/ardriveapp/arnetwork/internal/config"
	"github.com/rs/zerolog"
)

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	config     LoggerConfig
	factory    *WriterFactory
	convertErr error
}

// NewLoggerBuilder creates a new logger builder
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		config:  DefaultLoggerConfig(),
		factory: NewWriterFactory(),
	}
}

// WithConfig sets the logger configuration from the file log section
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	lb.config, lb.convertErr = ConvertConfig(cfg)
	return lb
}

// WithLevel overrides the level
func (lb *LoggerBuilder) WithLevel(level zerolog.Level) *LoggerBuilder {
	lb.config.Level = level
	return lb
}

// WithConsoleOutput redirects console output, mainly for tests
func (lb *LoggerBuilder) WithConsoleOutput(out io.Writer) *LoggerBuilder {
	lb.factory = NewWriterFactoryWithConsole(out)
	return lb
}

// Build creates the logger instance
func (lb *LoggerBuilder) Build() (zerolog.Logger, error) {
	if lb.convertErr != nil {
		return zerolog.Nop(), lb.convertErr
	}
	if err := lb.validateConfig(); err != nil {
		return zerolog.Nop(), err
	}

	writers := lb.createWriters()
	if len(writers) == 0 {
		return zerolog.Nop(), common.NewError("no output writers configured")
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lb.config.Level).
		With().
		Timestamp().
		Logger()

	stdlog.SetOutput(logger)
	stdlog.SetFlags(0)

	return logger, nil
}

func (lb *LoggerBuilder) validateConfig() error {
	if lb.config.EnableFile && lb.config.FilePath == "" {
		return common.NewValidationError("file_path", lb.config.FilePath, "file path required when file logging enabled")
	}
	if lb.config.MaxSizeMB <= 0 {
		return common.NewValidationError("max_size_mb", lb.config.MaxSizeMB, "max size must be positive")
	}
	return nil
}

func (lb *LoggerBuilder) createWriters() []io.Writer {
	var writers []io.Writer
	if lb.config.EnableConsole {
		writers = append(writers, lb.factory.CreateConsoleWriter(lb.config.Format))
	}
	if lb.config.EnableFile {
		writers = append(writers, lb.factory.CreateFileWriter(lb.config))
	}
	return writers
}
