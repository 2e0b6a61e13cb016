package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var logger = log.New(os.Stdout, "", log.LstdFlags)

var debug bool

// setupLogging sends the log to stdout and appends it to path.
func setupLogging(path string) (*os.File, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger = log.New(io.MultiWriter(os.Stdout, logFile), "", log.LstdFlags)

	return logFile, nil
}

func dprint(format string, v ...interface{}) {
	if debug {
		logger.Printf(format, v...)
	}
}
