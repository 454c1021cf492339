// Package testutil holds helpers shared by package tests.
package testutil

import (
	"io"

	"github.com/dtroode/gophfeed-server/internal/logger"
)

// MakeNoopLogger returns a Logger that discards all output.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0)
}
