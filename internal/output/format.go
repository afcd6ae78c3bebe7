// Package output provides formatters for CLI output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"todocsv/internal/todo"
)

// FormatSummary writes the status line.
// Format: "{DONE}/{TOTAL} COMPLETE" with " (ACTIVE: {ID})" when a row is active.
func FormatSummary(w io.Writer, s todo.Summary) {
	fmt.Fprintf(w, "%d/%d %s", s.Completed, s.Total, todo.StatusComplete)
	if s.HasActive {
		fmt.Fprintf(w, " (%s: %s)", todo.StatusActive, s.ActiveID)
	}
	fmt.Fprintln(w)
}

// FormatRow writes one verbose status line.
// Format: "{ID}. [{STATUS}] {ITEM}"
func FormatRow(w io.Writer, r todo.Row) {
	fmt.Fprintf(w, "%s. [%s] %s\n", r.ID, r.Status, normalizeItem(r.Item))
}

// WritePlan writes the plan payload as indented JSON followed by a newline.
// Non-ASCII text and HTML characters are written as-is.
func WritePlan(w io.Writer, p todo.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// normalizeItem keeps a verbose line on one line.
// Newlines are replaced with spaces.
func normalizeItem(item string) string {
	item = strings.ReplaceAll(item, "\r\n", " ")
	item = strings.ReplaceAll(item, "\r", " ")
	return strings.ReplaceAll(item, "\n", " ")
}
