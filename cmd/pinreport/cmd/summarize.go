package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/pinreport/internal/config"
	"github.com/OpenTraceLab/pinreport/pkg/pinclass"
	"github.com/OpenTraceLab/pinreport/pkg/report"
	"github.com/OpenTraceLab/pinreport/pkg/summary"
)

var (
	reportFile string
	outputDir  string
	force      bool
	writeXLSX  bool
	outputJSON bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Write pin summary tables from a package pin report",
	Long: `Parse the "Package Pins Summary" section of a report_package_pins.tcl
report, classify every pin and write three LaTeX tables:

  table_pin_count_by_type.tex     pins per type, with PORT and with NET
  table_port_with_no_net.tex      ports whose pin has no net
  table_io_pin_count_by_bank.tex  I/O pins per bank

Existing files are left alone unless --force is given.

Examples:
  pinreport summarize -r report_package_pins.txt
  pinreport summarize -r report.txt -o docs/tables --force
  pinreport summarize -r report.txt --xlsx --json`,
	Args: cobra.NoArgs,
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().StringVarP(&reportFile, "report", "r", "",
		"txt file of 'report_package_pins.tcl' output")
	summarizeCmd.Flags().StringVarP(&outputDir, "output-dir", "o", config.DefaultOutputDir,
		"output folder for the table files")
	summarizeCmd.Flags().BoolVarP(&force, "force", "f", false,
		"write outputs even if the files exist")
	summarizeCmd.Flags().BoolVar(&writeXLSX, "xlsx", false,
		"also write the summary as an .xlsx workbook")
	summarizeCmd.Flags().BoolVar(&outputJSON, "json", false,
		"print the summary as JSON")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	outputs := plannedOutputs(cfg)
	if err := checkPaths(cfg.Report, outputs, cfg.Force); err != nil {
		return err
	}

	parser, err := report.NewParser()
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	set, err := parser.ParseFile(cfg.Report)
	if err != nil {
		return fmt.Errorf("failed to parse report: %w", err)
	}
	logger.Debug("parsed report", zap.String("file", cfg.Report), zap.Int("pins", set.Len()))

	result := pinclass.NewClassifier(logger).ClassifyAll(set)
	s := summary.Build(result.Pins)

	if err := prepare(outputs, s, result.Pins); err != nil {
		return err
	}
	if err := writeOutputs(cfg.OutputDir, outputs); err != nil {
		return err
	}

	// Nothing is printed before every output is in place.
	out := cmd.OutOrStdout()
	status := out
	if cfg.JSON {
		// Keep stdout parseable.
		status = cmd.ErrOrStderr()
	}
	for _, o := range outputs {
		logger.Debug("wrote output", zap.String("file", o.path))
		printWrote(status, o)
	}
	if cfg.Verbose {
		printCountReport(status, s)
	}
	if cfg.JSON {
		return printJSON(out, cfg.Report, s, result.Unknown)
	}
	return nil
}

// printWrote reports a written file; LaTeX outputs get the compile command.
func printWrote(w io.Writer, o *output) {
	fmt.Fprintf(w, "Wrote to %s\n", o.path)
	if o.hint != "" {
		fmt.Fprintln(w, "Run below command to compile")
		fmt.Fprintf(w, "  %s\n\n", o.hint)
	}
}
