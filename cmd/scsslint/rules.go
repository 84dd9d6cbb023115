package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/scsslint"
	"github.com/yacobolo/scsslint/internal/lint/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List available rules",
	Long:  `List every rule with its configured severity and whether it is enabled.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		config := buildLintConfig()
		enabled, err := rules.Select(config.Enable, config.Disable)
		if err != nil {
			return err
		}
		active := make(map[string]bool, len(enabled))
		for _, r := range enabled {
			active[r.Name()] = true
		}

		useColors := config.UseColors
		for _, r := range rules.All() {
			severity := config.Severities[r.Name()]
			if severity == "" {
				severity = scsslint.DefaultSeverity
			}
			state := scsslint.RenderStyle(scsslint.StyleGreen, "enabled ", useColors)
			if !active[r.Name()] {
				state = scsslint.RenderStyle(scsslint.StyleGray, "disabled", useColors)
			}
			fmt.Fprintf(os.Stdout, "%s %s %-8s %s\n",
				state,
				scsslint.RenderStyle(scsslint.StyleCyan, fmt.Sprintf("%-32s", r.Name()), useColors),
				severity,
				r.Description())
		}
		return nil
	},
}
