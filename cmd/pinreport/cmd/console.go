package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/OpenTraceLab/pinreport/pkg/pinclass"
	"github.com/OpenTraceLab/pinreport/pkg/summary"
)

// SummaryJSON is the --json view of a summarize run
type SummaryJSON struct {
	Report string `json:"report"`
	*summary.Summary
	Unknown []pinclass.Pin `json:"unknown,omitempty"`
}

func printJSON(w io.Writer, reportPath string, s *summary.Summary, unknown []pinclass.Pin) error {
	data, err := json.MarshalIndent(SummaryJSON{
		Report:  reportPath,
		Summary: s,
		Unknown: unknown,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// printCountReport prints the per-category counts, one row for all pins,
// pins with a port and pins with a net.
func printCountReport(w io.Writer, s *summary.Summary) {
	categories := pinclass.Categories()

	header := table.Row{""}
	all := table.Row{"[All ]"}
	withPort := table.Row{"[PORT]"}
	withNet := table.Row{"[NET ]"}
	for _, c := range categories {
		counts := s.Category(c)
		header = append(header, c.Label())
		all = append(all, counts.Total)
		withPort = append(withPort, counts.WithPort)
		withNet = append(withNet, counts.WithNet)
	}

	fmt.Fprintln(w, "Count report")
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows([]table.Row{all, withPort, withNet})
	t.Render()
	fmt.Fprintf(w, "  Number of NETs  with no PORT: %d\n", len(s.NetWithoutPort))
	fmt.Fprintf(w, "  Number of PORTs with no NET: %d\n\n", len(s.PortWithoutNet))
}
