package verify

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/okian/clicker/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures the structured logger to write to both the
// console and a file. If logFile is empty, a timestamped filename is
// generated.
func SetupLogging(logFile string) error {
	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "verify_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	if err := logger.InitWithWriter(io.MultiWriter(os.Stdout, file)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the verification tool.
func ShowHelp() {
	os.Stdout.WriteString(`Clicker Verification Tool
=========================

Runs consistency checks against a running classification service:
threshold table shapes, classify/threshold agreement, round and score
validation.

Usage:
  go run cmd/verify/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Log file for check output (default: verify_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Verify a local service
  go run cmd/verify/main.go

  # Verify a remote service with verbose output
  go run cmd/verify/main.go -url http://archery.internal:9080 -verbose
`)
}
