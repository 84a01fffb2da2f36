package pinclass

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule maps pin functions matching any of its patterns to a category.
// Patterns are regular expressions matched case-insensitively against the
// start of the pin function; use "$" to require an exact name.
type Rule struct {
	Category Category
	Patterns []string

	re *regexp.Regexp
}

// NewRule compiles a rule.
func NewRule(category Category, patterns ...string) (Rule, error) {
	if !category.Valid() || category == Unknown {
		return Rule{}, fmt.Errorf("pinclass: rule category %q is not assignable", category)
	}
	if len(patterns) == 0 {
		return Rule{}, fmt.Errorf("pinclass: rule for %s has no patterns", category)
	}
	re, err := regexp.Compile(`(?i)^(?:` + strings.Join(patterns, "|") + `)`)
	if err != nil {
		return Rule{}, fmt.Errorf("pinclass: rule for %s: %w", category, err)
	}
	return Rule{Category: category, Patterns: patterns, re: re}, nil
}

// Match reports whether the pin function matches the rule.
func (r Rule) Match(pinFunc string) bool {
	return r.re != nil && r.re.MatchString(pinFunc)
}

func mustRule(category Category, patterns ...string) Rule {
	r, err := NewRule(category, patterns...)
	if err != nil {
		panic(err)
	}
	return r
}

// defaultRules is evaluated top to bottom; the first match wins.
var defaultRules = []Rule{
	mustRule(IO, `io`),
	mustRule(MGTRefclk, `mgtrefclk`),
	mustRule(MGTRxTx, `mgth[rt]`),
	mustRule(Configuration,
		`m[0-2]_0$`, `d0[0-9]`, `cclk_0$`, `done_0$`, `tdo_0$`, `tms_0$`, `tdi_0$`,
		`tck_0$`, `init_b_0$`, `pudc_b_0$`, `program_b_0$`, `por_override$`,
		`cfgbvs_0$`, `rdwr_fcs_b_0$`),
	mustRule(Monitor, `vn$`, `vp$`, `dxn$`, `dxp$`, `gndadc$`),
	mustRule(PowerGND, `vcc`, `vref`, `vbatt$`, `gnd$`),
	mustRule(PowerGND, `mgtavtt`, `mgtavcc`, `mgtvccaux`, `mgtrref_r$`),
	mustRule(NotConnected, `nc$`),
}

// DefaultRules returns the rule table for UltraScale style pin functions.
func DefaultRules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}

// Classify returns the category of a pin function using DefaultRules.
func Classify(pinFunc string) Category {
	return classify(defaultRules, pinFunc)
}

func classify(rules []Rule, pinFunc string) Category {
	for _, r := range rules {
		if r.Match(pinFunc) {
			return r.Category
		}
	}
	return Unknown
}
