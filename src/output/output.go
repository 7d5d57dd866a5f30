package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Colors for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorBold   = "\033[1m"
)

// CheckResult is the outcome of validating one configuration file.
type CheckResult struct {
	Path     string
	Warnings []string
	Err      error
}

// Printer formats and writes config-check results.
type Printer struct {
	Writer io.Writer
	Color  bool
}

// NewPrinter creates a printer writing to stdout with color auto-detection.
func NewPrinter() *Printer {
	return &Printer{
		Writer: os.Stdout,
		Color:  UseColor(),
	}
}

// Print outputs results sorted by path, returns true if any file failed
// validation.
func (p *Printer) Print(results []CheckResult) bool {
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	hasError := false
	for _, r := range results {
		switch {
		case r.Err != nil:
			hasError = true
			fmt.Fprintf(p.Writer, "%s %s\n", p.colorize("FAIL", colorRed), p.colorize(r.Path, colorBold))
			for _, msg := range strings.Split(r.Err.Error(), "; ") {
				fmt.Fprintf(p.Writer, "  %s\n", msg)
			}
		case len(r.Warnings) > 0:
			fmt.Fprintf(p.Writer, "%s %s\n", p.colorize("WARN", colorYellow), p.colorize(r.Path, colorBold))
			for _, w := range r.Warnings {
				fmt.Fprintf(p.Writer, "  %s\n", w)
			}
		default:
			fmt.Fprintf(p.Writer, "%s %s\n", p.colorize("OK", colorGreen), r.Path)
		}
	}
	return hasError
}

// Summary prints a final summary line.
func (p *Printer) Summary(total, failed, warned int) {
	status := "all valid"
	if failed > 0 {
		status = fmt.Sprintf("%d invalid", failed)
		if p.Color {
			status = colorRed + status + colorReset
		}
	} else if warned > 0 {
		status = fmt.Sprintf("%d with warnings", warned)
		if p.Color {
			status = colorYellow + status + colorReset
		}
	}
	fmt.Fprintf(p.Writer, "\n%d configs checked: %s\n", total, status)
}

func (p *Printer) colorize(text, color string) string {
	if !p.Color {
		return text
	}
	return color + text + colorReset
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal()
}
