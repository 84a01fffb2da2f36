package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("report", "r", "", "")
	flags.StringP("output-dir", "o", DefaultOutputDir, "")
	flags.BoolP("force", "f", false, "")
	flags.Bool("xlsx", false, "")
	flags.String("log-level", DefaultLogLevel, "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Report)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.False(t, cfg.Force)
	assert.False(t, cfg.XLSX)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, Files{
		PinCountByType:   DefaultPinCountByType,
		PortWithNoNet:    DefaultPortWithNoNet,
		IOPinCountByBank: DefaultIOPinCountByBank,
		Workbook:         DefaultWorkbook,
	}, cfg.Files)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := "report: from_file.txt\noutput_dir: file_out\nxlsx: true\nlog:\n  level: warn\nfiles:\n  workbook: pins.xlsx\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pinreport.yaml"), []byte(yaml), 0o644))

	t.Setenv("PINREPORT_OUTPUT_DIR", "env_out")
	t.Setenv("PINREPORT_LOG_LEVEL", "error")

	cfg, err := Load("", testFlags(t, "-r", "flag.txt", "--log-level", "debug"))
	require.NoError(t, err)

	assert.Equal(t, "flag.txt", cfg.Report, "flag beats file")
	assert.Equal(t, "env_out", cfg.OutputDir, "env beats file, unset flag ignored")
	assert.Equal(t, "debug", cfg.Log.Level, "flag beats env")
	assert.True(t, cfg.XLSX, "file beats default")
	assert.Equal(t, "pins.xlsx", cfg.Files.Workbook)
	assert.Equal(t, DefaultPortWithNoNet, cfg.Files.PortWithNoNet)
}

func TestLoadExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("force: true\n"), 0o644))

	cfg, err := Load(path, testFlags(t))
	require.NoError(t, err)
	assert.True(t, cfg.Force)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := Load("nope.yaml", nil)
	assert.ErrorContains(t, err, "config: error reading config file nope.yaml")
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pinreport.yaml"), []byte("output_dir: [\n"), 0o644))

	_, err := Load("", nil)
	assert.ErrorContains(t, err, "pinreport.yaml")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			OutputDir: "out",
			Files: Files{
				PinCountByType:   "a.tex",
				PortWithNoNet:    "b.tex",
				IOPinCountByBank: "c.tex",
				Workbook:         "d.xlsx",
			},
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr []string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:      "empty output dir",
			mutate:    func(c *Config) { c.OutputDir = "" },
			errSubstr: []string{"output_dir is required"},
		},
		{
			name:      "empty file name",
			mutate:    func(c *Config) { c.Files.Workbook = "" },
			errSubstr: []string{"files.workbook is required"},
		},
		{
			name: "path instead of name",
			mutate: func(c *Config) {
				c.Files.PinCountByType = "sub/a.tex"
				c.Files.PortWithNoNet = ""
			},
			errSubstr: []string{`files.pin_count_by_type "sub/a.tex" must be a file name`, "files.port_with_no_net is required"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if len(tt.errSubstr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, s := range tt.errSubstr {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	cfg := Config{OutputDir: "out", Files: Files{
		PinCountByType:   "a.tex",
		PortWithNoNet:    "b.tex",
		IOPinCountByBank: "c.tex",
		Workbook:         "d.xlsx",
	}}
	assert.Equal(t, filepath.Join("out", "a.tex"), cfg.PinCountByTypePath())
	assert.Equal(t, filepath.Join("out", "b.tex"), cfg.PortWithNoNetPath())
	assert.Equal(t, filepath.Join("out", "c.tex"), cfg.IOPinCountByBankPath())
	assert.Equal(t, filepath.Join("out", "d.xlsx"), cfg.WorkbookPath())
}

func TestFlagKey(t *testing.T) {
	assert.Equal(t, "output_dir", flagKey("output-dir"))
	assert.Equal(t, "log.level", flagKey("log-level"))
	assert.Equal(t, "files.workbook", flagKey("files-workbook"))
	assert.Equal(t, "log.format", envKey("PINREPORT_LOG_FORMAT"))
	assert.Equal(t, "files.pin_count_by_type", envKey("PINREPORT_FILES_PIN_COUNT_BY_TYPE"))
}
