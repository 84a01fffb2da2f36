// Package summary aggregates classified pins into the count tables of the
// pin report.
package summary

import (
	"sort"

	"github.com/OpenTraceLab/pinreport/pkg/pinclass"
)

// Counts is the pin count of a group, split by port and net binding.
type Counts struct {
	Total    int `json:"total"`
	WithPort int `json:"with_port"`
	WithNet  int `json:"with_net"`
}

// Add returns the element-wise sum.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Total:    c.Total + o.Total,
		WithPort: c.WithPort + o.WithPort,
		WithNet:  c.WithNet + o.WithNet,
	}
}

// PortPin is a port bound to a package pin.
type PortPin struct {
	Pin  string `json:"pin"`
	Port string `json:"port"`
}

// BankCounts holds the I/O pin counts of one bank.
type BankCounts struct {
	Bank int `json:"bank"`
	Counts
}

// Summary is derived from a classified pin list; it is rebuilt on every run.
// List fields are never nil.
type Summary struct {
	Pins           int                          `json:"pins"`
	Categories     map[pinclass.Category]Counts `json:"categories"`
	NetWithoutPort []pinclass.Pin               `json:"net_without_port"`
	PortWithoutNet []PortPin                    `json:"port_without_net"`
	Banks          []BankCounts                 `json:"banks"`
}

// Build aggregates pins.
func Build(pins []pinclass.Pin) *Summary {
	s := &Summary{
		Pins:           len(pins),
		Categories:     make(map[pinclass.Category]Counts),
		NetWithoutPort: []pinclass.Pin{},
		PortWithoutNet: []PortPin{},
		Banks:          []BankCounts{},
	}

	for _, c := range distinctCategories(pins) {
		s.Categories[c] = countOf(pins, InCategory(c))
	}

	s.NetWithoutPort = append(s.NetWithoutPort, Filter(pins, And(HasNet, Not(HasPort)))...)

	for _, p := range Filter(pins, And(HasPort, Not(HasNet))) {
		s.PortWithoutNet = append(s.PortWithoutNet, PortPin{
			Pin:  p.Record.PackagePin,
			Port: p.Record.PortName(),
		})
	}
	sort.SliceStable(s.PortWithoutNet, func(i, j int) bool {
		return s.PortWithoutNet[i].Pin < s.PortWithoutNet[j].Pin
	})

	isIO := InCategory(pinclass.IO)
	for _, bank := range distinctBanks(pins) {
		counts := countOf(pins, And(isIO, InBank(bank)))
		if counts.Total == 0 {
			continue
		}
		s.Banks = append(s.Banks, BankCounts{Bank: bank, Counts: counts})
	}

	return s
}

// Category returns the counts for c; zero when no pin has that category.
func (s *Summary) Category(c pinclass.Category) Counts {
	return s.Categories[c]
}

// Totals sums the counts of every category.
func (s *Summary) Totals() Counts {
	var total Counts
	for _, c := range s.Categories {
		total = total.Add(c)
	}
	return total
}

// BankTotals sums the I/O counts of every listed bank.
func (s *Summary) BankTotals() Counts {
	var total Counts
	for _, b := range s.Banks {
		total = total.Add(b.Counts)
	}
	return total
}

func countOf(pins []pinclass.Pin, pred Predicate) Counts {
	return Counts{
		Total:    Count(pins, pred),
		WithPort: Count(pins, And(pred, HasPort)),
		WithNet:  Count(pins, And(pred, HasNet)),
	}
}

// distinctCategories returns the categories present, in first-seen order.
func distinctCategories(pins []pinclass.Pin) []pinclass.Category {
	seen := make(map[pinclass.Category]bool)
	var out []pinclass.Category
	for _, p := range pins {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// distinctBanks returns the banks present on any pin, ascending.
func distinctBanks(pins []pinclass.Pin) []int {
	seen := make(map[int]bool)
	var out []int
	for _, p := range pins {
		if b, ok := p.Record.BankNumber(); ok && !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	sort.Ints(out)
	return out
}
