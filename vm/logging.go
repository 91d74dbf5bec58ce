package vm

import (
	"sync"

	"go.uber.org/zap"
)

// Grounded on wippyai-wasm-runtime's engine/logger.go: a package-level
// logger behind sync.Once, silent by default so the library never writes
// to stderr unless a host opts in.
var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's logger, defaulting to a no-op core.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs l as the package logger, replacing the no-op default.
// A nil l resets to no-op.
func SetLogger(l *zap.Logger) {
	loggerOnce.Do(func() {})
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
