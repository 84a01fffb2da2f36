// Package config loads pinreport settings from defaults, an optional YAML
// file, PINREPORT_ environment variables and command line flags.
package config

import "github.com/OpenTraceLab/pinreport/internal/logging"

// Default values.
const (
	DefaultOutputDir        = "./table"
	DefaultPinCountByType   = "table_pin_count_by_type.tex"
	DefaultPortWithNoNet    = "table_port_with_no_net.tex"
	DefaultIOPinCountByBank = "table_io_pin_count_by_bank.tex"
	DefaultWorkbook         = "pin_summary.xlsx"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "console"
)

// Config is the merged configuration of a pinreport run.
type Config struct {
	Report    string         `koanf:"report"`     // report_package_pins.tcl output
	OutputDir string         `koanf:"output_dir"` // created if absent
	Force     bool           `koanf:"force"`      // overwrite existing outputs
	Verbose   bool           `koanf:"verbose"`
	XLSX      bool           `koanf:"xlsx"` // also write the workbook
	JSON      bool           `koanf:"json"` // print the summary as JSON
	Log       logging.Config `koanf:"log"`
	Files     Files          `koanf:"files"`
}

// Files names the output files inside OutputDir.
type Files struct {
	PinCountByType   string `koanf:"pin_count_by_type"`
	PortWithNoNet    string `koanf:"port_with_no_net"`
	IOPinCountByBank string `koanf:"io_pin_count_by_bank"`
	Workbook         string `koanf:"workbook"`
}
