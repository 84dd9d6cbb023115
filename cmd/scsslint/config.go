package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/scsslint"
)

const (
	defaultConfigPath = ".scsslint.yaml"
	envPrefix         = "SCSSLINT_"
)

var k = koanf.New(".")

// flagKeys maps command line flags onto their config file keys. Flags not
// listed here share their name with the key.
var flagKeys = map[string]string{
	"paths":             "lint.paths",
	"strict":            "lint.strict",
	"output-format":     "lint.output-format",
	"max-same-issues":   "lint.max-same-issues",
	"print-lines":       "lint.print-lines",
	"print-linter-name": "lint.print-linter-name",
	"enable":            "linters.enable",
	"disable":           "linters.disable",
}

// configKeys lists every scalar key, used to resolve hyphenated names from
// environment variables.
var configKeys = []string{
	"verbose",
	"quiet",
	"color",
	"lint.paths",
	"lint.strict",
	"lint.output-format",
	"lint.max-same-issues",
	"lint.print-lines",
	"lint.print-linter-name",
	"linters.enable",
	"linters.disable",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Unchanged flags only fill keys
	// that no other provider set.
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		return flagKey(f.Name), posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (SCSSLINT_* prefix)
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// flagKey returns the config key for a flag. The config flag itself is not
// a setting and is dropped.
func flagKey(name string) string {
	if name == "config" {
		return ""
	}
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return name
}

// envKey converts an environment variable name to a config key:
//
//	SCSSLINT_LINT_STRICT          -> lint.strict
//	SCSSLINT_LINT_MAX_SAME_ISSUES -> lint.max-same-issues
//	SCSSLINT_VERBOSE              -> verbose
func envKey(s string) string {
	dotted := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	for _, key := range configKeys {
		if strings.ReplaceAll(key, "-", ".") == dotted {
			return key
		}
	}
	return dotted
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
func buildLintConfig() scsslint.LintConfig {
	paths := k.Strings("lint.paths")
	if len(paths) == 0 {
		paths = scsslint.DefaultPaths
	}

	return scsslint.LintConfig{
		Paths:            paths,
		Enable:           k.Strings("linters.enable"),
		Disable:          k.Strings("linters.disable"),
		Severities:       k.StringMap("linters.severity"),
		Strict:           getBool("lint.strict", false),
		MaxSameIssues:    getInt("lint.max-same-issues", 0),
		PrintIssuedLines: getBool("lint.print-lines", true),
		PrintLinterName:  getBool("lint.print-linter-name", true),
		UseColors:        getBool("color", false),
	}
}

// getString returns the config value for key, or the default when unset.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the config value for key, or the default when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getInt returns the config value for key, or the default when unset.
func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
