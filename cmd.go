package sectionheader

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

// RunFunc defines the arity and return signatures of a function that a Cmd
// will run.
type RunFunc func(cmd *Cmd, args []string) error

// UsageError is returned by a RunFunc when it was invoked with arguments it
// cannot work with. Cmd reacts to it by printing its usage line.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	if e.Reason == "" {
		return "usage error"
	}
	return "usage error: " + e.Reason
}

// Cmd defines the structure of a command that can be run.
//
// Arguments are handed to Run as-is. Cmd does no flag parsing, so "-h" or
// "--" reach Run like any other argument.
type Cmd struct {
	// The name of the command, as shown in the usage line.
	Name string

	// The synopsis of the command's positional arguments, e.g.
	// "<header_text>".
	Usage string

	// Where the command writes its output, and its usage line.
	Stdout io.Writer

	// Where diagnostics are logged.
	Stderr io.Writer

	// The function to run.
	Run RunFunc
}

// New is a convenience function for creating and returning a new *Cmd that
// writes to the process's standard output and standard error.
func New(name, usage string, run RunFunc) *Cmd {
	return &Cmd{
		Name:   name,
		Usage:  usage,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Run:    run,
	}
}

// UsageLine returns the one-line usage message for c.
func (c *Cmd) UsageLine() string {
	if c.Usage == "" {
		return fmt.Sprintf("Usage: %s", c.Name)
	}
	return fmt.Sprintf("Usage: %s %s", c.Name, c.Usage)
}

func (c *Cmd) logger() *slog.Logger {
	w := c.Stderr
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// Exec runs the command with the arguments provided on the command line,
// and exits the process if the command failed. This is the method that
// should be called from main.
//
// It is essentially a short-hand invocation of
//
//	os.Exit(c.ExecArgs(os.Args[1:]))
//
// except that it returns normally on success.
func (c *Cmd) Exec() {
	if code := c.ExecArgs(os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}

// ExecArgs executes c.Run with the given arguments and returns the exit
// status the process should terminate with.
//
// A *UsageError from c.Run prints the usage line to c.Stdout. Any other
// error is logged to c.Stderr. Both yield status 1.
func (c *Cmd) ExecArgs(args []string) int {
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}

	// Without a RunFunc there is nothing to do but tell the user how the
	// command is meant to be called.
	if c.Run == nil {
		fmt.Fprintln(c.Stdout, c.UsageLine())
		return 1
	}

	err := c.Run(c, args)
	if err == nil {
		return 0
	}

	if _, ok := errors.Cause(err).(*UsageError); ok {
		fmt.Fprintln(c.Stdout, c.UsageLine())
		return 1
	}

	c.logger().Error("command failed", "cmd", c.Name, "error", err)
	return 1
}
