// terminal.go - Terminal detection and colored output for the campus CLI.
//
// Colors are used only when stdout is a TTY and NO_COLOR is unset, so
// piped output stays plain.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY reports whether stdin is a terminal. Interactive prompts (login
// password entry) require this.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY reports whether stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// DefaultTerminalWidth is the fallback when width detection fails.
const DefaultTerminalWidth = 80

// TerminalWidth returns the current terminal width, or the default when it
// cannot be determined.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}

// =============================================================================
// COLORED OUTPUT
// =============================================================================

var (
	colorOnce    sync.Once
	colorProfile termenv.Profile
)

func profile() termenv.Profile {
	colorOnce.Do(func() {
		if !IsStdoutTTY() || os.Getenv("NO_COLOR") != "" {
			colorProfile = termenv.Ascii
			return
		}
		colorProfile = termenv.ColorProfile()
	})
	return colorProfile
}

func colored(color, s string) string {
	p := profile()
	if p == termenv.Ascii {
		return s
	}
	return termenv.String(s).Foreground(p.Color(color)).String()
}

// Successf prints a green success line to stdout.
func Successf(format string, a ...interface{}) {
	fmt.Println(colored("2", fmt.Sprintf(format, a...)))
}

// Warnf prints a yellow warning line to stderr.
func Warnf(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, colored("3", fmt.Sprintf(format, a...)))
}

// Errorf prints a red error line to stderr.
func Errorf(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, colored("1", fmt.Sprintf(format, a...)))
}

// Mutedf prints a dimmed line to stdout.
func Mutedf(format string, a ...interface{}) {
	s := fmt.Sprintf(format, a...)
	if profile() == termenv.Ascii {
		fmt.Println(s)
		return
	}
	fmt.Println(termenv.String(s).Faint().String())
}

// ReadPassword prompts on stderr and reads a password from the terminal
// without echo.
func ReadPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}
