package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// All commands use these functions to ensure consistent icon usage and
// indentation throughout netfolio's CLI output.
//
// Icon semantics:
//   ✓  success / saved
//   ✗  error / failure          (written to stderr)
//   ⚠  warning
//   ○  skipped / not applicable
//   -  not found / missing
//   ~  neutral info / state change
//
// Icons are colored unless --no-color or NO_COLOR is set.

var (
	colorTitle = color.New(color.FgRed, color.Bold)
	colorOK    = color.New(color.FgGreen)
	colorErr   = color.New(color.FgRed)
	colorWarn  = color.New(color.FgYellow)
	colorMuted = color.New(color.FgHiBlack)
	colorInfo  = color.New(color.FgCyan)
)

// printSection prints a top-level section header, e.g. "=== Status ===".
func printSection(title string) {
	fmt.Printf("\n%s\n", colorTitle.Sprintf("=== %s ===", title))
}

// printBullet prints a grouped-section bullet, e.g. "● Skills:".
func printBullet(title string) {
	fmt.Printf("\n● %s\n", title)
}

// printLine writes one icon-prefixed line.
//   name = "" → "  ✓  msg"
//   name set  → "  ✓  [name] msg"
func printLine(f *os.File, icon string, c *color.Color, name, msg string) {
	if name == "" {
		fmt.Fprintf(f, "  %s  %s\n", c.Sprint(icon), msg)
	} else {
		fmt.Fprintf(f, "  %s  [%s] %s\n", c.Sprint(icon), name, msg)
	}
}

// printOK prints a success line.
func printOK(name, msg string) { printLine(os.Stdout, "✓", colorOK, name, msg) }

// printErr prints an error line to stderr.
func printErr(name, msg string) { printLine(os.Stderr, "✗", colorErr, name, msg) }

// printWarn prints a warning line.
func printWarn(name, msg string) { printLine(os.Stdout, "⚠", colorWarn, name, msg) }

// printSkip prints a skipped / not-applicable line.
func printSkip(name, msg string) { printLine(os.Stdout, "○", colorMuted, name, msg) }

// printMiss prints a not-found / missing line.
func printMiss(name, msg string) { printLine(os.Stdout, "-", colorMuted, name, msg) }

// printInfo prints a neutral informational / state-change line.
func printInfo(name, msg string) { printLine(os.Stdout, "~", colorInfo, name, msg) }
