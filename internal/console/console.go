// Package console writes the interpreter's user-facing messages, colored
// when the terminal supports it.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow)
	infoColor  = color.New(color.FgCyan)
	aiColor    = color.New(color.FgGreen, color.Bold)
	traceColor = color.New(color.Faint)
)

// SetColor forces colored output on or off for every Console.
// By default color is enabled only when stdout is a terminal.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// Console routes messages to an output and an error stream.
type Console struct {
	Out     io.Writer
	Err     io.Writer
	Verbose bool // show Tracef lines
}

// New creates a Console writing to out and errOut.
func New(out, errOut io.Writer) *Console {
	return &Console{Out: out, Err: errOut}
}

// Stdio returns a Console on the process's standard streams.
func Stdio() *Console {
	return New(os.Stdout, os.Stderr)
}

// Error prints "Error: <err>" to the error stream.
func (c *Console) Error(err error) {
	errorColor.Fprint(c.Err, "Error:")
	fmt.Fprintf(c.Err, " %v\n", err)
}

// Warnf prints a warning to the error stream.
func (c *Console) Warnf(format string, args ...any) {
	warnColor.Fprintf(c.Err, format, args...)
	fmt.Fprintln(c.Err)
}

// Infof prints an informational line to the output stream.
func (c *Console) Infof(format string, args ...any) {
	infoColor.Fprintf(c.Out, format, args...)
	fmt.Fprintln(c.Out)
}

// AI prints a chat reply as "AI: <text>".
func (c *Console) AI(text string) {
	aiColor.Fprint(c.Out, "AI:")
	fmt.Fprintf(c.Out, " %s\n", text)
}

// Tracef prints a trace line to the error stream when Verbose is set.
// It has the shape of eval.Logf.
func (c *Console) Tracef(format string, args ...any) {
	if !c.Verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	traceColor.Fprintf(c.Err, "trace: %s\n", strings.TrimRight(msg, "\n"))
}
