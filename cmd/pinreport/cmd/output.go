package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/OpenTraceLab/pinreport/internal/config"
	"github.com/OpenTraceLab/pinreport/pkg/latex"
	"github.com/OpenTraceLab/pinreport/pkg/pinclass"
	"github.com/OpenTraceLab/pinreport/pkg/summary"
	"github.com/OpenTraceLab/pinreport/pkg/workbook"
)

// output is one file written by summarize.
type output struct {
	path  string
	table func(*summary.Summary) latex.Table // nil for the workbook
	hint  string

	write func(path string) error // set by prepare
}

func plannedOutputs(cfg *config.Config) []*output {
	outputs := []*output{
		{path: cfg.PinCountByTypePath(), table: (*summary.Summary).PinCountByType},
		{path: cfg.PortWithNoNetPath(), table: (*summary.Summary).PortsWithNoNet},
		{path: cfg.IOPinCountByBankPath(), table: (*summary.Summary).IOPinCountByBank},
	}
	for _, o := range outputs {
		o.hint = latex.CompileHint(o.path)
	}
	if cfg.XLSX {
		outputs = append(outputs, &output{path: cfg.WorkbookPath()})
	}
	return outputs
}

// checkPaths verifies the report exists and that every output can be
// replaced: an existing output is a conflict unless force is set, and an
// existing non-regular file always is. Every problem is reported.
func checkPaths(reportPath string, outputs []*output, force bool) error {
	var err error
	if reportPath == "" {
		err = multierr.Append(err, errors.New("required flag \"report\" not set"))
	} else if _, statErr := os.Stat(reportPath); statErr != nil {
		err = multierr.Append(err, fmt.Errorf("input file (report: %s) does not exist\n  Run 'report_package_pins.tcl' to produce 'report_package_pins.txt'", reportPath))
	}
	conflict := false
	for _, o := range outputs {
		info, statErr := os.Stat(o.path)
		switch {
		case statErr == nil && !info.Mode().IsRegular():
			err = multierr.Append(err, fmt.Errorf("output path %s exists and is not a regular file", o.path))
		case statErr == nil && !force:
			err = multierr.Append(err, fmt.Errorf("output file %s exists", o.path))
			conflict = true
		case statErr != nil && !errors.Is(statErr, fs.ErrNotExist):
			err = multierr.Append(err, fmt.Errorf("output file %s: %w", o.path, statErr))
		}
	}
	if conflict {
		err = multierr.Append(err, errors.New("rename or remove the output files or use --force"))
	}
	return err
}

// prepare builds every output in memory so nothing is written when one
// fails.
func prepare(outputs []*output, s *summary.Summary, pins []pinclass.Pin) error {
	for _, o := range outputs {
		if o.table != nil {
			table := o.table(s)
			o.write = func(path string) error { return latex.WriteFile(path, table) }
			continue
		}
		data, err := workbook.Render(s, pins)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", o.path, err)
		}
		o.write = func(path string) error { return workbook.WriteFile(path, data) }
	}
	return nil
}

// writeOutputs stages every output as a temporary file next to its target
// and renames them into place only after all writes succeeded.
func writeOutputs(dir string, outputs []*output) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output folder: %w", err)
	}

	var staged []string
	cleanup := func() {
		for _, path := range staged {
			os.Remove(path)
		}
	}

	for _, o := range outputs {
		tmp, err := os.CreateTemp(filepath.Dir(o.path), "."+filepath.Base(o.path)+".*")
		if err != nil {
			cleanup()
			return fmt.Errorf("failed to stage %s: %w", o.path, err)
		}
		staged = append(staged, tmp.Name())
		err = tmp.Chmod(0o644)
		if closeErr := tmp.Close(); err == nil {
			err = closeErr
		}
		if err == nil {
			err = o.write(tmp.Name())
		}
		if err != nil {
			cleanup()
			return fmt.Errorf("failed to stage %s: %w", o.path, err)
		}
	}

	for i, o := range outputs {
		if err := os.Rename(staged[i], o.path); err != nil {
			cleanup()
			return fmt.Errorf("failed to move %s into place: %w", o.path, err)
		}
	}
	return nil
}
