package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	once sync.Once
	log  zerolog.Logger
)

// Get returns the process logger. It is configured on first use from
// LOG_LEVEL and LOG_FILE.
func Get() zerolog.Logger {
	once.Do(func() {
		log = New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FILE"), os.Stderr)
	})

	return log
}

// New builds a logger writing human readable output to console and, when
// file is not empty, JSON lines to a rotated log file.
func New(level, file string, console io.Writer) zerolog.Logger {
	var output io.Writer = zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.RFC3339,
	}

	if file != "" {
		fileLogger := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    5,
			MaxBackups: 10,
			MaxAge:     14,
			Compress:   true,
		}
		output = zerolog.MultiLevelWriter(output, fileLogger)
	}

	return zerolog.New(output).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}

	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return l
}
