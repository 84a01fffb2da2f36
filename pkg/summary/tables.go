package summary

import (
	"github.com/OpenTraceLab/pinreport/pkg/latex"
	"github.com/OpenTraceLab/pinreport/pkg/pinclass"
)

const (
	doubleRule = `\hline\hline`
	singleRule = `\hline`
)

// PinCountByType lists every category with its port and net breakdown
// followed by a total row. The unknown row only appears when unknown pins
// exist.
func (s *Summary) PinCountByType() latex.Table {
	rows := []latex.Row{
		latex.Separator(doubleRule),
		latex.Cells("Pin type", "# pins", "# pins with PORT", "# pins with NET"),
		latex.Separator(singleRule),
	}
	for _, c := range pinclass.Categories() {
		counts := s.Category(c)
		if c == pinclass.Unknown && counts.Total == 0 {
			continue
		}
		rows = append(rows, latex.Cells(c.Label(), counts.Total, counts.WithPort, counts.WithNet))
	}
	total := s.Totals()
	rows = append(rows,
		latex.Cells("Total", total.Total, total.WithPort, total.WithNet),
		latex.Separator(doubleRule),
	)
	return latex.Table{Rows: rows}
}

// PortsWithNoNet lists ports whose pin has no net, numbered from 1.
func (s *Summary) PortsWithNoNet() latex.Table {
	rows := []latex.Row{
		latex.Separator(doubleRule),
		latex.Cells("Index", "Port", "Pin"),
		latex.Separator(singleRule),
	}
	for i, pp := range s.PortWithoutNet {
		rows = append(rows, latex.Cells(i+1, pp.Port, pp.Pin))
	}
	rows = append(rows, latex.Separator(doubleRule))
	return latex.Table{Rows: rows}
}

// IOPinCountByBank has one column per bank holding I/O pins and a total
// column.
func (s *Summary) IOPinCountByBank() latex.Table {
	header := []any{"Bank"}
	all := []any{"# I/O pins"}
	withPort := []any{"# I/O pins with PORT"}
	withNet := []any{"# I/O pins with NET"}
	for _, b := range s.Banks {
		header = append(header, b.Bank)
		all = append(all, b.Total)
		withPort = append(withPort, b.WithPort)
		withNet = append(withNet, b.WithNet)
	}
	total := s.BankTotals()
	header = append(header, "Total")
	all = append(all, total.Total)
	withPort = append(withPort, total.WithPort)
	withNet = append(withNet, total.WithNet)

	return latex.Table{Rows: []latex.Row{
		latex.Separator(doubleRule),
		latex.Cells(header...),
		latex.Separator(singleRule),
		latex.Cells(all...),
		latex.Cells(withPort...),
		latex.Cells(withNet...),
		latex.Separator(doubleRule),
	}}
}
