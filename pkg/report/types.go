// Package report parses the pin table written by report_package_pins.tcl.
package report

// SummaryMarker identifies the section of a report_package_pins output that
// holds the pin table.
const SummaryMarker = "Package Pins Summary"

// FieldCount is the number of columns in a pin table row.
const FieldCount = 8

// Column order of the pin table.
var Columns = [FieldCount]string{
	"package_pin", "pin_func", "site", "site_type", "bank", "direction", "port", "net",
}

// PinRecord is one row of the Package Pins Summary table.
// Optional columns are nil when the report cell is blank.
type PinRecord struct {
	PackagePin string  `json:"package_pin"`         // Package pin designator, e.g. "AA12"
	PinFunc    string  `json:"pin_func"`            // Vendor pin function, e.g. "IO_L1P_T0L_N0_DBC_65"
	Site       *string `json:"site,omitempty"`      // Site name, e.g. "IOB_X1Y25"
	SiteType   *string `json:"site_type,omitempty"` // Site type, e.g. "HPIOB"
	Bank       *int    `json:"bank,omitempty"`      // I/O bank number
	Direction  *string `json:"direction,omitempty"` // IN, OUT, INOUT
	Port       *string `json:"port,omitempty"`      // Top-level design port bound to the pin
	Net        *string `json:"net,omitempty"`       // Net connected to the pin
}

// HasPort reports whether a design port is bound to the pin.
func (r PinRecord) HasPort() bool { return r.Port != nil }

// HasNet reports whether a net is connected to the pin.
func (r PinRecord) HasNet() bool { return r.Net != nil }

// PortName returns the port name or "" when absent.
func (r PinRecord) PortName() string { return deref(r.Port) }

// NetName returns the net name or "" when absent.
func (r PinRecord) NetName() string { return deref(r.Net) }

// BankNumber returns the bank and whether the pin has one.
func (r PinRecord) BankNumber() (int, bool) {
	if r.Bank == nil {
		return 0, false
	}
	return *r.Bank, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
