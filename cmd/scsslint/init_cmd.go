package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .scsslint.yaml config file",
	Long:  `Create a .scsslint.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return writeDefaultConfig(defaultConfigPath, force)
	},
}

func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

const defaultConfig = `# scsslint configuration
# Precedence: flags > SCSSLINT_* environment > this file > defaults

verbose: false
color: false

# Linting settings
lint:
  paths:
    - "**/*.scss"
  output-format: issues    # issues | json
  strict: false            # exit 1 on any issue, not only errors
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true

# Rule selection
linters:
  enable: []               # empty = all rules
  disable: []
  severity:                # error | warning | info (default: warning)
    deprecated-variables: error
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
