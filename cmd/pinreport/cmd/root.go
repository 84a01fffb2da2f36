package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/pinreport/internal/config"
	"github.com/OpenTraceLab/pinreport/internal/logging"
)

var (
	// Global flags
	verbose   bool
	cfgFile   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "pinreport",
	Short: "FPGA package pin summary tables",
	Long: `Summarize the package pin report written by Vivado's report_package_pins.tcl.

Pins are classified by function (I/O, MGT, config, monitor, power, NC) and
counted with and without a bound port or net. The counts are written as
standalone LaTeX tables, optionally as an .xlsx workbook.

Examples:
  pinreport summarize -r report_package_pins.txt          # Write tables to ./table
  pinreport summarize -v -r report.txt -o out --xlsx      # Also print counts and write a workbook
  pinreport classify IO_L1P_T0L_N0_DBC_65 MGTREFCLK0P_224 # Show pin function categories`,
	Version: "0.9.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintln(os.Stderr, "Error:", e)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print the count report and debug logs")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default pinreport.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", config.DefaultLogFormat, "log format (console, json)")
}

// loadConfig merges config file, environment and the flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if cfg.Verbose && !cmd.Flags().Changed("log-level") {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds the logger for cmd; logs go to its error stream.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}
