package pinclass

import "github.com/OpenTraceLab/pinreport/pkg/report"

// Category is the functional group of a package pin.
type Category string

const (
	IO            Category = "io"
	NotConnected  Category = "not_connected"
	Configuration Category = "configuration"
	Monitor       Category = "monitor"
	PowerGND      Category = "power_gnd"
	MGTRefclk     Category = "mgt_refclk"
	MGTRxTx       Category = "mgt_rx_tx"
	Unknown       Category = "unknown"
)

// categoryOrder is the row order used in summary tables.
var categoryOrder = []Category{
	IO, MGTRxTx, MGTRefclk, Configuration, Monitor, PowerGND, NotConnected, Unknown,
}

var labels = map[Category]string{
	IO:            "I/O",
	MGTRxTx:       "MGT rx/tx",
	MGTRefclk:     "MGT refclk",
	Configuration: "Config",
	Monitor:       "Monitor",
	PowerGND:      "Power/GND",
	NotConnected:  "Not Connected",
	Unknown:       "Unknown",
}

// Categories returns every category in table order. Unknown is last.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Label returns the human readable name used in tables.
func (c Category) Label() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return string(c)
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	_, ok := labels[c]
	return ok
}

// Pin is a report record together with its category.
type Pin struct {
	Record   report.PinRecord `json:"record"`
	Category Category         `json:"category"`
}
