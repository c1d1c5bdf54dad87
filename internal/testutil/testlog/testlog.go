package testlog

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/vjebelev/ibgo/internal/logging"
)

// Start configures process-wide logging for a test run.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
}

// Logger returns a logger that writes through the test harness.
func Logger(t *testing.T) zerolog.Logger {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t))
}
