package summary

import "github.com/OpenTraceLab/pinreport/pkg/pinclass"

// Predicate selects pins.
type Predicate func(pinclass.Pin) bool

// All matches every pin.
func All(pinclass.Pin) bool { return true }

// HasPort matches pins bound to a design port.
func HasPort(p pinclass.Pin) bool { return p.Record.HasPort() }

// HasNet matches pins connected to a net.
func HasNet(p pinclass.Pin) bool { return p.Record.HasNet() }

// InCategory matches pins of category c.
func InCategory(c pinclass.Category) Predicate {
	return func(p pinclass.Pin) bool { return p.Category == c }
}

// InBank matches pins in the given bank. Pins without a bank never match.
func InBank(bank int) Predicate {
	return func(p pinclass.Pin) bool {
		b, ok := p.Record.BankNumber()
		return ok && b == bank
	}
}

// And matches pins satisfying every predicate.
func And(preds ...Predicate) Predicate {
	return func(p pinclass.Pin) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// Not inverts a predicate.
func Not(pred Predicate) Predicate {
	return func(p pinclass.Pin) bool { return !pred(p) }
}

// Filter returns the pins matching pred, in input order.
func Filter(pins []pinclass.Pin, pred Predicate) []pinclass.Pin {
	var out []pinclass.Pin
	for _, p := range pins {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// Count returns the number of pins matching pred.
func Count(pins []pinclass.Pin, pred Predicate) int {
	n := 0
	for _, p := range pins {
		if pred(p) {
			n++
		}
	}
	return n
}
