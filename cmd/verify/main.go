package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/clicker/internal/verify"
)

// Default configuration constants.
const (
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9080", "Base URL of the service")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile = flag.String("log", "", "Log file for check output (default: verify_log_TIMESTAMP.log)")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		verify.ShowHelp()
		return
	}

	if err := verify.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &verify.Config{
		BaseURL: *baseURL,
		Timeout: *timeout,
		LogFile: *logFile,
		Verbose: *verbose,
	}

	if err := verify.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Verification failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
