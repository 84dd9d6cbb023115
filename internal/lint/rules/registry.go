package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yacobolo/scsslint/internal/lint"
)

// All returns one instance of every rule in a fixed order.
func All() []lint.Rule {
	return []lint.Rule{
		NewColorKeywordsRule(),
		NewColorLiteralsRule(),
		NewDeprecatedVariablesRule(),
	}
}

// Names returns the names of all rules.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, r := range all {
		names[i] = r.Name()
	}
	return names
}

// Select returns the rules named in enable (all rules when enable is
// empty) minus those in disable. Unknown names are an error.
func Select(enable, disable []string) ([]lint.Rule, error) {
	known := Names()
	var unknown []string
	for _, name := range append(slices.Clone(enable), disable...) {
		if !slices.Contains(known, name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown rule(s) %s; available: %s",
			strings.Join(unknown, ", "), strings.Join(known, ", "))
	}

	var selected []lint.Rule
	for _, r := range All() {
		if len(enable) > 0 && !slices.Contains(enable, r.Name()) {
			continue
		}
		if slices.Contains(disable, r.Name()) {
			continue
		}
		selected = append(selected, r)
	}
	return selected, nil
}
