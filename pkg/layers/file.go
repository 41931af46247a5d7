package layers

import (
	"fmt"
	"strconv"
	"strings"

	"tedjust-go/pkg/config"
)

// SectionPrefix marks rule sections in a rules file: [layer 0.25],
// [layer 3-5], [layer 10+].
const SectionPrefix = "layer "

// TokensFromConfig translates rule sections, in file order, into the
// same L/F/S tokens accepted on the command line. Sections that are not
// rules and options nobody read come back as warnings.
func TokensFromConfig(cfg *config.Config) (tokens []string, warnings []error, err error) {
	for _, sec := range cfg.GetPrefixSections(SectionPrefix) {
		sel := strings.TrimSpace(strings.TrimPrefix(sec.Name(), SectionPrefix))
		tokens = append(tokens, "L"+sel)

		if sec.Has("flow") {
			flow, err := sec.NonNegative("flow")
			if err != nil {
				return nil, nil, err
			}
			tokens = append(tokens, "F"+strconv.FormatFloat(flow, 'f', -1, 64))
		}
		if sec.Has("speed") {
			speed, err := sec.NonNegative("speed")
			if err != nil {
				return nil, nil, err
			}
			tokens = append(tokens, "S"+strconv.FormatFloat(speed, 'f', -1, 64))
		}
	}

	for _, name := range cfg.GetUnusedSections() {
		warnings = append(warnings, config.NewConfigError(name, "", "not a rule section, ignored"))
	}
	if err := cfg.CheckUnusedOptions(); err != nil {
		warnings = append(warnings, err)
	}
	if len(tokens) == 0 {
		return nil, warnings, fmt.Errorf("no [%s...] sections", SectionPrefix)
	}
	return tokens, warnings, nil
}
