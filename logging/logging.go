// Package logging configures the process-wide logger and prints short
// status lines for people running the CLI.
//
// Structured logs go to the writer passed to Setup:
//
//	logging.Debug("block accepted", "base", base, "hostBits", bits)
//	logging.Info("dataset written", "path", path)
//
// Status lines go to stdout (info, success) or stderr (warning, error):
//
//	logging.UserSuccess("wrote %d files to %s", n, dir)
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var (
	Logger  = log.Default()
	Verbose bool
)

const ProgName = "corpusgen"

// Setup replaces the default logger. A nil writer means stderr.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	formatter := log.TextFormatter
	if jsonOutput {
		formatter = log.JSONFormatter
	}
	Verbose = verbose
	Logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		Prefix:          strings.ToUpper(ProgName),
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		ReportCaller:    verbose,
	})
	log.SetDefault(Logger)
}

func With(keyvals ...interface{}) *log.Logger {
	return Logger.With(keyvals...)
}

func Debug(msg string, keyvals ...interface{}) {
	Logger.Helper()
	Logger.Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	Logger.Helper()
	Logger.Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	Logger.Helper()
	Logger.Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	Logger.Helper()
	Logger.Error(msg, keyvals...)
}
