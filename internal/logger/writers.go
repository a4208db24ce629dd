package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterStrategy wraps an output with a log encoding
type WriterStrategy interface {
	CreateWriter(output io.Writer) io.Writer
}

// JSONWriterStrategy writes zerolog's native JSON lines
type JSONWriterStrategy struct{}

func (jws *JSONWriterStrategy) CreateWriter(output io.Writer) io.Writer {
	return output
}

// ConsoleWriterStrategy writes human readable, optionally colored lines
type ConsoleWriterStrategy struct {
	NoColor bool
}

func (cws *ConsoleWriterStrategy) CreateWriter(output io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: time.RFC3339,
		NoColor:    cws.NoColor,
	}
}

// WriterFactory creates writers based on format
type WriterFactory struct {
	strategies map[LogFormat]WriterStrategy
	console    io.Writer
}

// NewWriterFactory creates a factory whose console output is stderr
func NewWriterFactory() *WriterFactory {
	return NewWriterFactoryWithConsole(os.Stderr)
}

// NewWriterFactoryWithConsole creates a factory writing console logs to out
func NewWriterFactoryWithConsole(out io.Writer) *WriterFactory {
	return &WriterFactory{
		strategies: map[LogFormat]WriterStrategy{
			FormatJSON:    &JSONWriterStrategy{},
			FormatConsole: &ConsoleWriterStrategy{NoColor: false},
			FormatText:    &ConsoleWriterStrategy{NoColor: true},
		},
		console: out,
	}
}

func (wf *WriterFactory) CreateConsoleWriter(format LogFormat) io.Writer {
	strategy, exists := wf.strategies[format]
	if !exists {
		strategy = &ConsoleWriterStrategy{NoColor: false}
	}
	return strategy.CreateWriter(wf.console)
}

// CreateFileWriter creates a size-rotated file writer. Console format is
// written without color codes.
func (wf *WriterFactory) CreateFileWriter(cfg LoggerConfig) io.Writer {
	// Best effort; lumberjack reports the failure on first write.
	_ = os.MkdirAll(filepath.Dir(cfg.FilePath), 0755)

	rotating := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	}

	if cfg.Format == FormatConsole {
		return (&ConsoleWriterStrategy{NoColor: true}).CreateWriter(rotating)
	}
	strategy, exists := wf.strategies[cfg.Format]
	if !exists {
		strategy = &JSONWriterStrategy{}
	}
	return strategy.CreateWriter(rotating)
}
