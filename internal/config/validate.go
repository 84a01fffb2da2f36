package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
)

// Validate checks the output settings. All problems are reported together.
func (c *Config) Validate() error {
	var err error
	if c.OutputDir == "" {
		err = multierr.Append(err, fmt.Errorf("config: output_dir is required"))
	}
	for _, entry := range c.Files.entries() {
		key, name := entry[0], entry[1]
		switch {
		case name == "":
			err = multierr.Append(err, fmt.Errorf("config: files.%s is required", key))
		case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
			err = multierr.Append(err, fmt.Errorf("config: files.%s %q must be a file name, not a path", key, name))
		}
	}
	return err
}

// Paths of the output files inside OutputDir.

func (c *Config) PinCountByTypePath() string {
	return filepath.Join(c.OutputDir, c.Files.PinCountByType)
}

func (c *Config) PortWithNoNetPath() string {
	return filepath.Join(c.OutputDir, c.Files.PortWithNoNet)
}

func (c *Config) IOPinCountByBankPath() string {
	return filepath.Join(c.OutputDir, c.Files.IOPinCountByBank)
}

func (c *Config) WorkbookPath() string {
	return filepath.Join(c.OutputDir, c.Files.Workbook)
}

// entries pairs each config key with its file name.
func (f Files) entries() [][2]string {
	return [][2]string{
		{"pin_count_by_type", f.PinCountByType},
		{"port_with_no_net", f.PortWithNoNet},
		{"io_pin_count_by_bank", f.IOPinCountByBank},
		{"workbook", f.Workbook},
	}
}
