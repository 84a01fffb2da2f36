package report

import (
	"fmt"
)

// PinSet holds the parsed records keyed by package pin, preserving the
// order in which rows appeared in the report.
type PinSet struct {
	records []PinRecord
	index   map[string]int
}

// NewPinSet creates an empty set.
func NewPinSet() *PinSet {
	return &PinSet{
		index: make(map[string]int),
	}
}

// Add registers a record. A package pin that is already present is rejected
// with ErrDuplicatePin.
func (s *PinSet) Add(rec PinRecord) error {
	if _, ok := s.index[rec.PackagePin]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePin, rec.PackagePin)
	}
	s.index[rec.PackagePin] = len(s.records)
	s.records = append(s.records, rec)
	return nil
}

// Lookup returns the record for a package pin.
func (s *PinSet) Lookup(pin string) (PinRecord, bool) {
	i, ok := s.index[pin]
	if !ok {
		return PinRecord{}, false
	}
	return s.records[i], true
}

// Records returns a copy of all records in report order.
func (s *PinSet) Records() []PinRecord {
	out := make([]PinRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *PinSet) Len() int {
	return len(s.records)
}
