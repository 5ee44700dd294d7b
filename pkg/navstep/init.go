// Package navstep lets an application change a navigation stack arbitrarily
// (push several screens, pop several, replace the whole stack) while the
// visible stack moves through every intermediate state one step at a time
// on platforms that cannot animate multi-step transitions natively.
//
// The planning and scheduling core lives in package steps; package router
// owns the stack. This package ties them to configuration and logging.
package navstep

import (
	"io"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/navstep/pkg/navstep/constants"
	"github.com/BrandonKowalski/navstep/pkg/navstep/internal"
	"github.com/BrandonKowalski/navstep/pkg/navstep/router"
)

// Options configures logging for navstep.
type Options struct {
	LogPath       string    // Full path for an extra log file including filename (creates parent directories)
	LogOutput     io.Writer // Console log writer; defaults to stderr
	LogLevel      string    // Application log level (debug, info, warn, error)
	DebugInternal bool      // Log planner and scheduler activity at debug level
}

// Init configures logging. Call it before creating routers so the log
// writers are in place when the loggers are first built.
// DebugInternal is also enabled by ENVIRONMENT=DEV.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogOutput != nil {
		internal.SetLogOutput(options.LogOutput)
	}

	level := options.LogLevel
	if level == "" {
		level = os.Getenv(constants.LogLevelEnvVar)
	}
	internal.SetRawLogLevel(level)

	if options.DebugInternal || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CanPushMultiple is the platform capability probe. It honours
// NAVSTEP_PUSH_MULTIPLE and otherwise assumes the platform can push
// several screens in one update.
func CanPushMultiple() bool {
	if v, ok := constants.ParseBool(os.Getenv(constants.PushMultipleEnvVar)); ok {
		return v
	}
	return true
}

// NewRouter creates a router configured from cfg.
func NewRouter[S comparable](cfg Config, screens ...S) *router.Router[S] {
	return router.New(cfg.RouterOptions(), screens...)
}
