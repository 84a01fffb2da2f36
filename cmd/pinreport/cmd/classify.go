package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/pinreport/pkg/pinclass"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <pin-function>...",
	Short: "Show the category of pin function names",
	Long: `Classify pin function names with the built-in rule table. Useful to check
how a new device's pin names are counted before running summarize.

Examples:
  pinreport classify IO_L1P_T0L_N0_DBC_65
  pinreport classify MGTREFCLK0P_224 MGTHRXP0_224 RSVDGND`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	classifier := pinclass.NewClassifier(logger)

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Pin function", "Category", "Label"})
	unknown := 0
	for _, fn := range args {
		c := classifier.Classify(fn)
		if c == pinclass.Unknown {
			logger.Warn("unknown pin type", zap.String("pin_func", fn))
			unknown++
		}
		t.AppendRow(table.Row{fn, string(c), c.Label()})
	}
	t.Render()

	if cfg.Verbose && unknown > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d of %d function(s) matched no rule\n", unknown, len(args))
	}
	return nil
}
