// Package logging provides component loggers backed by logrus. All loggers
// share one writer so the interactive session can hold diagnostics until the
// terminal is restored.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// LevelEnv overrides the log level when set.
const LevelEnv = "STIGEN_LOG_LEVEL"

var (
	rootOnce sync.Once
	root     *logrus.Logger

	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

func rootLogger() *logrus.Logger {
	rootOnce.Do(func() {
		root = logrus.New()
		root.SetOutput(GetGlobalOutput())
		root.SetFormatter(&TextFormatter{})

		level := logrus.WarnLevel
		if env := strings.TrimSpace(os.Getenv(LevelEnv)); env != "" {
			if parsed, err := logrus.ParseLevel(env); err == nil {
				level = parsed
			}
		}
		root.SetLevel(level)
	})
	return root
}

// NewLogger returns the logger for component, creating it on first use.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, ok := loggers[component]; ok {
		return logger
	}
	logger := rootLogger().WithField("component", component)
	loggers[component] = logger
	return logger
}

// SetLevel changes the level of every component logger.
func SetLevel(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	rootLogger().SetLevel(parsed)
	return nil
}
