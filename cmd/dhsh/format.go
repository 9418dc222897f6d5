package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Colors for output
var (
	colorCyan     = color.New(color.FgCyan)
	colorYellow   = color.New(color.FgYellow)
	colorBoldBlue = color.New(color.FgBlue, color.Bold)
)

// formatColumns formats items in columns like ls
func formatColumns(items []string) string {
	if len(items) == 0 {
		return ""
	}

	// Get terminal width
	width := 100 // default
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}

	// Calculate column width (accounting for ANSI codes)
	maxLen := 0
	for _, item := range items {
		stripped := stripAnsi(item)
		if len(stripped) > maxLen {
			maxLen = len(stripped)
		}
	}

	colWidth := maxLen + 2
	numCols := width / colWidth
	if numCols < 1 {
		numCols = 1
	}

	var result strings.Builder
	for i, item := range items {
		result.WriteString(item)
		if (i+1)%numCols == 0 {
			result.WriteString("\n")
		} else if i < len(items)-1 {
			stripped := stripAnsi(item)
			padding := colWidth - len(stripped)
			result.WriteString(strings.Repeat(" ", padding))
		}
	}

	return result.String()
}

// stripAnsi removes ANSI escape codes from text
func stripAnsi(text string) string {
	var result strings.Builder
	inCode := false
	for _, ch := range text {
		if ch == '\033' {
			inCode = true
		} else if inCode {
			if ch == 'm' {
				inCode = false
			}
		} else {
			result.WriteRune(ch)
		}
	}
	return result.String()
}
