// Package logger is dockit's leveled logger. Every message goes to the log
// file with a timestamp; the console gets INFO and above (DEBUG with
// --verbose, ERROR only with --quiet).
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// consolePrefix is what the console shows in front of a message
func (l Level) consolePrefix() string {
	switch l {
	case LevelDebug:
		return "[DEBUG] "
	case LevelWarn:
		return "⚠️  "
	case LevelError:
		return "❌ "
	default:
		return ""
	}
}

// Logger writes to the console and to a log file
type Logger struct {
	console *log.Logger
	file    *log.Logger
	logFile *os.File
	verbose bool

	// Lowest level shown on the console
	consoleLevel Level

	// WARN and ERROR messages since Init, for the run summary
	warnings atomic.Int64
	errors   atomic.Int64
}

var globalLogger *Logger

// Init replaces the global logger. logFilePath "" disables the file; verbose
// shows DEBUG on the console.
func Init(console io.Writer, logFilePath string, verbose bool) error {
	logFile, err := openLogFile(logFilePath)
	if err != nil {
		return err
	}

	var fileOut io.Writer = io.Discard
	if logFile != nil {
		fileOut = logFile
	}

	globalLogger = &Logger{
		console: log.New(console, "", 0),
		file:    log.New(fileOut, "", log.LstdFlags),
		logFile: logFile,
		verbose: verbose,
	}
	globalLogger.consoleLevel = globalLogger.defaultLevel()
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func (l *Logger) defaultLevel() Level {
	if l.verbose {
		return LevelDebug
	}
	return LevelInfo
}

// SetQuiet limits console output to errors. The log file is unaffected.
func SetQuiet(quiet bool) {
	if globalLogger == nil {
		return
	}
	if quiet {
		globalLogger.consoleLevel = LevelError
		return
	}
	globalLogger.consoleLevel = globalLogger.defaultLevel()
}

// Close closes the log file
func Close() {
	if globalLogger != nil && globalLogger.logFile != nil {
		globalLogger.logFile.Close()
	}
}

func Debug(format string, args ...any) { logAt(LevelDebug, format, args...) }

func Info(format string, args ...any) { logAt(LevelInfo, format, args...) }

// Warn counts towards the warnings reported by Counts
func Warn(format string, args ...any) { logAt(LevelWarn, format, args...) }

// Error counts towards the errors reported by Counts
func Error(format string, args ...any) { logAt(LevelError, format, args...) }

func logAt(level Level, format string, args ...any) {
	if globalLogger == nil {
		// Not initialized: DEBUG is dropped, the rest goes to stdout
		if level > LevelDebug {
			fmt.Printf(level.consolePrefix()+format+"\n", args...)
		}
		return
	}
	globalLogger.log(level, fmt.Sprintf(format, args...))
}

func (l *Logger) log(level Level, message string) {
	switch level {
	case LevelWarn:
		l.warnings.Add(1)
	case LevelError:
		l.errors.Add(1)
	}

	l.file.Printf("[%s] %s", level, message)
	if level >= l.consoleLevel {
		l.console.Print(level.consolePrefix() + message)
	}
}

// LogSkippedFile records a file that could not be processed. Details go to
// the log file; the console only sees them with --verbose.
func LogSkippedFile(filePath string, err error, stage string) {
	if globalLogger == nil {
		return
	}

	globalLogger.warnings.Add(1)
	globalLogger.file.Printf("[SKIPPED] File: %s, Stage: %s, Error: %v", filePath, stage, err)
	Debug("Skipped %s: %v", filePath, err)
}

// Counts returns the number of warnings and errors logged since Init
func Counts() (warnings, errors int64) {
	if globalLogger == nil {
		return 0, 0
	}
	return globalLogger.warnings.Load(), globalLogger.errors.Load()
}

// GetLogFilePath returns the path of the log file, "" when there is none
func GetLogFilePath() string {
	if globalLogger != nil && globalLogger.logFile != nil {
		return globalLogger.logFile.Name()
	}
	return ""
}

func IsVerbose() bool {
	return globalLogger != nil && globalLogger.verbose
}
