// SPDX-License-Identifier: MIT
// Package: apfabric/internal/applog
//
// applog.go - structured logging shared by every package in this module.
//
// Contract:
//   - New returns a *logrus.Logger with the text formatter apmap uses on
//     both stdout (human-readable progress) and, where a caller redirects
//     it, a log file.
//   - SetVerbose toggles between the terse default (info) and the
//     per-duplication/per-retry detail the coordinator emits while
//     mapping a large automaton.
//   - Fields is a thin helper over logrus.Fields so call sites don't
//     import logrus directly just to build a field map.
package applog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Fields is re-exported so callers depend only on this package.
type Fields = logrus.Fields

// New returns a logger writing to stdout with the text formatter, at
// info level.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    false,
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetVerbose raises l to debug level, surfacing the duplication/retry
// diagnostics the chip coordinator and engine batch loop emit.
func SetVerbose(l *logrus.Logger, verbose bool) {
	if verbose {
		l.SetLevel(logrus.DebugLevel)
		return
	}
	l.SetLevel(logrus.InfoLevel)
}
