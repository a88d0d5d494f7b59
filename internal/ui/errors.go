package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	errorPrefix    = "Error: "
	maxErrorLines  = 2
	minErrorWidth  = 10
	truncationMark = "..."
)

// formatErrorForDisplay word-wraps an error to maxWidth and keeps at most
// maxErrorLines lines, ending with "..." when text was dropped
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}
	if maxWidth < minErrorWidth {
		maxWidth = minErrorWidth
	}

	lines := []string{errorPrefix}
	truncated := false
	for _, word := range words {
		last := len(lines) - 1
		current := lines[last]
		sep := " "
		if current == "" || current == errorPrefix {
			sep = ""
		}
		if utf8.RuneCountInString(current)+len(sep)+utf8.RuneCountInString(word) <= maxWidth || current == "" {
			lines[last] = current + sep + word
			continue
		}
		if len(lines) == maxErrorLines {
			truncated = true
			break
		}
		lines = append(lines, word)
	}

	if truncated {
		last := lines[len(lines)-1]
		keep := maxWidth - len(truncationMark)
		if utf8.RuneCountInString(last) > keep {
			last = string([]rune(last)[:keep])
		}
		lines[len(lines)-1] = last + truncationMark
	}
	return strings.Join(lines, "\n")
}
