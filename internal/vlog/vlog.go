// Package vlog centralizes the op/go-logging setup shared by every package
// in this module, so each gets a consistently formatted, independently
// named logger.
package vlog

import (
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module} ▶ %{message}`,
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// Get returns a named logger, typically called once per package as a
// package-level var: var log = vlog.Get("configclient").
func Get(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}

// SetLevel adjusts the global logging verbosity, exposed so applications
// embedding this library can turn on debug-level wire tracing.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, "")
}
