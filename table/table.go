// Package table renders column-aligned text tables for terminal output.
package table

import (
	"fmt"
	"io"
	"strings"
)

// FormatFunc is a callback to format/colorize cell values
type FormatFunc func(value string) string

// ColumnSpec defines a column's properties
type ColumnSpec struct {
	Header     string
	BlankValue string     // Value to show for empty cells (default: "-")
	FormatFunc FormatFunc // Optional formatter/colorizer, applied at render time
	MinWidth   int        // Minimum column width
	AlignRight bool       // Right-align, for numeric columns
}

// Table represents a formatted table
type Table struct {
	columns []ColumnSpec
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with the given column specifications
func NewTable(cols ...ColumnSpec) *Table {
	t := &Table{
		columns: cols,
		rows:    make([][]string, 0),
		widths:  make([]int, len(cols)),
	}

	for i, col := range cols {
		t.widths[i] = max(col.MinWidth, len(col.Header))
		if t.columns[i].BlankValue == "" {
			t.columns[i].BlankValue = "-"
		}
	}

	return t
}

// AddRow adds a row of data to the table. Missing cells are blank, extra
// cells are dropped.
func (t *Table) AddRow(data ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(data) && data[i] != "" {
			row[i] = data[i]
		} else {
			row[i] = t.columns[i].BlankValue
		}

		if visLen := visibleLength(row[i]); visLen > t.widths[i] {
			t.widths[i] = visLen
		}
	}

	t.rows = append(t.rows, row)
}

// Len returns the number of rows added so far
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to the given writer
func (t *Table) Render(w io.Writer) error {
	headers := make([]string, len(t.columns))
	sep := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = t.pad(i, col.Header)
		sep[i] = strings.Repeat("-", t.widths[i])
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(headers, " "), " ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Join(sep, " ")); err != nil {
		return err
	}

	for _, row := range t.rows {
		formatted := make([]string, len(row))
		for i, val := range row {
			// pad first so colour codes do not disturb the width
			formatted[i] = t.pad(i, val)
			if t.columns[i].FormatFunc != nil && val != t.columns[i].BlankValue {
				formatted[i] = strings.Replace(formatted[i], val, t.columns[i].FormatFunc(val), 1)
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(formatted, " "), " ")); err != nil {
			return err
		}
	}

	return nil
}

// pad pads s to the width of column i
func (t *Table) pad(i int, s string) string {
	visibleLen := visibleLength(s)
	if visibleLen >= t.widths[i] {
		return s
	}
	fill := strings.Repeat(" ", t.widths[i]-visibleLen)
	if t.columns[i].AlignRight {
		return fill + s
	}
	return s + fill
}

// visibleLength calculates the visible length of a string, skipping ANSI
// SGR escape sequences.
func visibleLength(s string) int {
	length := 0
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
		} else if inEscape {
			if r == 'm' {
				inEscape = false
			}
		} else {
			length++
		}
	}
	return length
}

func ColorRed(s string) string {
	return fmt.Sprintf("\033[31m%s\033[0m", s)
}

func ColorGreen(s string) string {
	return fmt.Sprintf("\033[32m%s\033[0m", s)
}

func ColorYellow(s string) string {
	return fmt.Sprintf("\033[33m%s\033[0m", s)
}

func ColorGray(s string) string {
	return fmt.Sprintf("\033[90m%s\033[0m", s)
}
