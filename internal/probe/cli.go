package probe

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Ayush-07-Mishra/Vasu-Vue/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "probe_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the signal probe tool.
func ShowHelp() {
	os.Stdout.WriteString(`VasoVue Signal Probe
====================

A concurrent tool for exercising the VasoVue prediction and export pipeline
with synthetic rPPG signals.

Usage:
  go run cmd/signal-probe/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:5001")
  -sessions int
        Number of capture sessions to simulate (default 100)
  -samples int
        Samples per synthetic signal (default 150)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Log file for probe output (default: probe_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Probe with default settings
  go run cmd/signal-probe/main.go

  # Probe with custom parameters
  go run cmd/signal-probe/main.go -sessions 500 -workers 16 -url http://localhost:8080

  # Probe with verbose output
  go run cmd/signal-probe/main.go -verbose -sessions 200

  # Probe with custom log file
  go run cmd/signal-probe/main.go -sessions 500 -log my_probe.log
`)
}
