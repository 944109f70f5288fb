// Package logger configures the global logrus logger.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogRotationConfig contains log rotation settings
type LogRotationConfig struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

var (
	logFile   *lumberjack.Logger
	logFileMu sync.Mutex
)

// SetupWithOutput sets the level and output of the global logger. Logs always
// go to w; when logFilePath is set they are also written to a rotated file.
func SetupWithOutput(w io.Writer, logLevel string, logFilePath string, rotation LogRotationConfig) error {
	level, err := ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(level)

	logFileMu.Lock()
	defer logFileMu.Unlock()

	// Close previous log file if open
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}

	out := w
	if logFilePath != "" {
		logFile = &lumberjack.Logger{
			Filename:   logFilePath,
			MaxSize:    rotation.MaxSizeMB,
			MaxBackups: rotation.MaxBackups,
			MaxAge:     rotation.MaxAgeDays,
			Compress:   rotation.Compress,
		}
		out = io.MultiWriter(w, logFile)
	}
	logrus.SetOutput(out)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   logFilePath != "",
	})

	logrus.WithFields(logrus.Fields{
		"level":    level.String(),
		"log_file": logFilePath,
	}).Debug("Logger initialized")

	return nil
}

// Close closes the log file and should be called during application shutdown
func Close() error {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// ParseLevel converts string log level to logrus.Level
func ParseLevel(level string) (logrus.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return logrus.DebugLevel, nil
	case "INFO":
		return logrus.InfoLevel, nil
	case "WARNING", "WARN", "":
		return logrus.WarnLevel, nil
	case "ERROR":
		return logrus.ErrorLevel, nil
	default:
		return logrus.WarnLevel, fmt.Errorf("unknown log level: %s", level)
	}
}
