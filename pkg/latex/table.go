// Package latex renders simple tables as standalone LaTeX documents.
package latex

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// cellPadding is the space added around every cell value.
const cellPadding = 2

var escaper = strings.NewReplacer(`#`, `\#`, `_`, `\_`)

// Escape quotes the characters that have a special meaning in LaTeX text
// and appear in pin, port and net names.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Row is a table line: either a literal separator such as `\hline` or a list
// of cell values.
type Row struct {
	separator string
	cells     []string
}

// Separator returns a row emitted verbatim.
func Separator(latex string) Row {
	return Row{separator: latex}
}

// Cells returns a row of values formatted with fmt.Sprint.
func Cells(values ...any) Row {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = fmt.Sprint(v)
	}
	return Row{cells: cells}
}

// IsSeparator reports whether the row is a literal separator.
func (r Row) IsSeparator() bool {
	return r.cells == nil
}

// Values returns the raw (unescaped) cell values.
func (r Row) Values() []string {
	out := make([]string, len(r.cells))
	copy(out, r.cells)
	return out
}

// Table is an ordered list of rows. ColumnSpec is the tabular column
// specification; when empty the first column is left aligned and the rest
// right aligned.
type Table struct {
	Rows       []Row
	ColumnSpec string
}

// Columns returns the width in cells of the widest row.
func (t Table) Columns() int {
	n := 0
	for _, row := range t.Rows {
		if len(row.cells) > n {
			n = len(row.cells)
		}
	}
	return n
}

func (t Table) columnSpec() string {
	if t.ColumnSpec != "" {
		return t.ColumnSpec
	}
	n := t.Columns()
	if n == 0 {
		return ""
	}
	return "l" + strings.Repeat("r", n-1)
}

// widths returns the escaped display width of each column. East Asian wide
// runes count as two columns.
func (t Table) widths() []int {
	widths := make([]int, t.Columns())
	for _, row := range t.Rows {
		for i, cell := range row.cells {
			if w := text.RuneWidthWithoutEscSequences(Escape(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Render returns the complete LaTeX document for the table.
func Render(t Table) []byte {
	widths := t.widths()

	var buf bytes.Buffer
	buf.WriteString("\\documentclass[10pt,oneside]{report}\n")
	buf.WriteString("\\usepackage{booktabs}\n")
	buf.WriteString("\\usepackage[active,tightpage]{preview}\n")
	buf.WriteString("\\begin{document}\n")
	buf.WriteString("\\begin{preview}\n")
	buf.WriteString("\\begin{tabular}{" + t.columnSpec() + "}\n")

	for _, row := range t.Rows {
		if row.IsSeparator() {
			buf.WriteString(row.separator)
			buf.WriteString("\n")
			continue
		}
		cells := make([]string, len(row.cells))
		for i, cell := range row.cells {
			cells[i] = padRight(" "+Escape(cell)+" ", widths[i]+cellPadding)
		}
		buf.WriteString(strings.Join(cells, "&"))
		buf.WriteString("\\\\\n")
	}

	buf.WriteString("\\end{tabular}\n")
	buf.WriteString("\\end{preview}\n")
	buf.WriteString("\\end{document}\n")
	return buf.Bytes()
}

func padRight(s string, width int) string {
	if w := text.RuneWidthWithoutEscSequences(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
