package monkey

import (
	"fmt"
	"strconv"
	"strings"
)

// formatCodeFrame renders the source line at pos with a caret under the
// column. Columns count bytes, matching the lexer.
func formatCodeFrame(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}

	lineText := strings.TrimRight(lines[pos.Line-1], "\r")
	column := min(max(pos.Column, 1), len(lineText)+1)

	lineLabel := strconv.Itoa(pos.Line)
	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s^",
		pos.Line,
		column,
		lineLabel,
		lineText,
		strings.Repeat(" ", len(lineLabel)),
		caretPadding(lineText, column),
	)
}

// caretPadding keeps tabs from the source line so the caret lines up.
func caretPadding(line string, column int) string {
	var b strings.Builder
	for i := 0; i < column-1; i++ {
		if line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
