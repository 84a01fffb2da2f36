// Package workbook exports a pin summary as an .xlsx workbook.
//
// The workbook carries the same three tables as the LaTeX output, one per
// sheet, plus a sheet listing every classified pin.
package workbook

import (
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/OpenTraceLab/pinreport/pkg/latex"
	"github.com/OpenTraceLab/pinreport/pkg/pinclass"
	"github.com/OpenTraceLab/pinreport/pkg/summary"
)

// Sheet names, in workbook order.
const (
	SheetPinTypes = "Pin types"
	SheetNoNet    = "Ports without net"
	SheetBanks    = "IO banks"
	SheetPins     = "Pins"
)

// PinColumns is the header of the pin list sheet.
var PinColumns = []string{
	"Pin", "Function", "Category", "Site", "Site type", "Bank", "Direction", "Port", "Net",
}

// Render builds the workbook in memory and returns the encoded file.
func Render(s *summary.Summary, pins []pinclass.Pin) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("workbook: header style: %w", err)
	}

	w := &writer{file: f, header: header}
	w.table(SheetPinTypes, s.PinCountByType())
	w.table(SheetNoNet, s.PortsWithNoNet())
	w.table(SheetBanks, s.IOPinCountByBank())
	w.pins(pins)
	if w.err != nil {
		return nil, w.err
	}

	// NewFile starts with a default sheet that none of ours replaced.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("workbook: remove default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex(SheetPinTypes); err == nil {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("workbook: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes an encoded workbook to path, replacing any existing file.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("workbook: write %s: %w", path, err)
	}
	return nil
}

// writer keeps the first error so sheet building reads top to bottom.
type writer struct {
	file   *excelize.File
	header int
	err    error
}

func (w *writer) table(sheet string, t latex.Table) {
	var rows [][]any
	for _, row := range t.Rows {
		if row.IsSeparator() {
			continue
		}
		values := row.Values()
		cells := make([]any, len(values))
		for i, v := range values {
			cells[i] = cellValue(v)
		}
		rows = append(rows, cells)
	}
	w.sheet(sheet, rows)
}

func (w *writer) pins(pins []pinclass.Pin) {
	header := make([]any, len(PinColumns))
	for i, c := range PinColumns {
		header[i] = c
	}
	rows := [][]any{header}
	for _, p := range pins {
		rec := p.Record
		var bank any = ""
		if b, ok := rec.BankNumber(); ok {
			bank = b
		}
		rows = append(rows, []any{
			rec.PackagePin,
			rec.PinFunc,
			p.Category.Label(),
			deref(rec.Site),
			deref(rec.SiteType),
			bank,
			deref(rec.Direction),
			rec.PortName(),
			rec.NetName(),
		})
	}
	w.sheet(SheetPins, rows)
}

// sheet creates a sheet holding rows; the first row is the header.
func (w *writer) sheet(name string, rows [][]any) {
	if w.err != nil {
		return
	}
	if _, err := w.file.NewSheet(name); err != nil {
		w.err = fmt.Errorf("workbook: new sheet %q: %w", name, err)
		return
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			w.err = fmt.Errorf("workbook: %s row %d: %w", name, i+1, err)
			return
		}
		if err := w.file.SetSheetRow(name, cell, &row); err != nil {
			w.err = fmt.Errorf("workbook: %s row %d: %w", name, i+1, err)
			return
		}
	}
	if len(rows) > 0 {
		if err := w.file.SetRowStyle(name, 1, 1, w.header); err != nil {
			w.err = fmt.Errorf("workbook: %s header style: %w", name, err)
		}
	}
}

// cellValue stores integer cells as numbers.
func cellValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
