package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PINREPORT_"

// configNames are looked up in the working directory when no file is given.
var configNames = []string{"pinreport.yaml", "pinreport.yml"}

// findConfigFile returns the explicit path, else the first default name
// present, else "".
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load merges the configuration sources.
// Precedence (highest to lowest): flags > env vars > config file > defaults
// Only flags that were set on the command line take part.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output_dir":                 DefaultOutputDir,
		"force":                      false,
		"verbose":                    false,
		"xlsx":                       false,
		"json":                       false,
		"log.level":                  DefaultLogLevel,
		"log.format":                 DefaultLogFormat,
		"files.pin_count_by_type":    DefaultPinCountByType,
		"files.port_with_no_net":     DefaultPortWithNoNet,
		"files.io_pin_count_by_bank": DefaultIOPinCountByBank,
		"files.workbook":             DefaultWorkbook,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("config: failed to load defaults: %w", err)
	}

	// 2. Config file
	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: error reading config file %s: %w", path, err)
		}
	}

	// 3. Environment: PINREPORT_OUTPUT_DIR -> output_dir, PINREPORT_LOG_LEVEL -> log.level
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return flagKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unable to decode config: %w", err)
	}
	return &cfg, nil
}

// sections are the nested key groups; their env and flag names use "_" or
// "-" where the key uses ".".
var sections = []string{"log", "files"}

func envKey(s string) string {
	return nestKey(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)))
}

// flagKey maps kebab-case flag names to config keys: output-dir -> output_dir,
// log-level -> log.level.
func flagKey(name string) string {
	return nestKey(strings.ReplaceAll(name, "-", "_"))
}

func nestKey(key string) string {
	for _, section := range sections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}
	return key
}
