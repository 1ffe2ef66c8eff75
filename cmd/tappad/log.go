package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// logLevelDefault disables logging so the TUI never shares a terminal
// with log output.
const logLevelDefault = "NONE"

// initialiseLogging routes logrus to the given file, or discards all
// output at the default level.
func initialiseLogging(logLevel, logFilePath string) error {
	if logLevel == logLevelDefault {
		log.SetOutput(io.Discard)
		return nil
	}

	level, err := log.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		return fmt.Errorf("invalid logLevel %q", logLevel)
	}
	log.SetLevel(level)

	file, err := os.OpenFile(logFilePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", logFilePath, err)
	}
	log.SetOutput(file)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return nil
}
