// Package runtime provides the context type that holds the logger and the
// ambient configuration for use throughout the application. The behavior
// flags are read from the environment exactly once, here; helpers receive
// them through Options instead of consulting the process environment.
package runtime

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/amannocci/scripty/internal/output"
)

// Options is the ambient configuration resolved at process start.
// Each flag is true when its environment variable is set to a non-empty
// value; the value content itself is never interpreted.
type Options struct {
	// DisableColors suppresses ANSI color codes in all logging output.
	// Set via DISABLE_CONSOLE_COLORS, or implied when stdout is not a terminal.
	DisableColors bool

	// SilentStdout redirects a command's standard output to a null sink
	// during execution, leaving standard error visible. Set via SILENT_STDOUT.
	SilentStdout bool

	// CatchError makes Try swallow a non-zero exit status instead of
	// resolving it into a fatal error. Set via CATCH_ERROR.
	CatchError bool

	// Debug echoes each command line to stderr before execution.
	// Set via SCRIPTY_DEBUG.
	Debug bool

	// LogDebug enables debug-level lines in the logging output. Set via DEBUG.
	LogDebug bool

	// LogFile adds a rotating file sink mirroring all log output.
	// Set via SCRIPTY_LOG_FILE; empty disables file logging.
	LogFile string
}

// OptionsFromEnv resolves the ambient flags from the process environment.
func OptionsFromEnv() Options {
	return Options{
		DisableColors: os.Getenv("DISABLE_CONSOLE_COLORS") != "" || !stdoutIsTerminal(),
		SilentStdout:  os.Getenv("SILENT_STDOUT") != "",
		CatchError:    os.Getenv("CATCH_ERROR") != "",
		Debug:         os.Getenv("SCRIPTY_DEBUG") != "",
		LogDebug:      os.Getenv("DEBUG") != "",
		LogFile:       os.Getenv("SCRIPTY_LOG_FILE"),
	}
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Context provides access to the logger and options for commands
type Context struct {
	Splog   *output.Splog
	Options Options
}

// NewContext creates a new context with the given options
func NewContext(opts Options) *Context {
	return &Context{
		Splog:   output.NewSplog(opts.DisableColors, opts.LogDebug, opts.LogFile),
		Options: opts,
	}
}

// GetContext builds the process context from the environment.
func GetContext() *Context {
	return NewContext(OptionsFromEnv())
}
