package route

import (
	"fmt"
	"slices"
	"strings"
)

// validateGroups checks the options found against the option groups of the selected segment.
// Segments without groups accept any option. The help option is always accepted, and when it's present the groups
// aren't checked at all, so usage can be shown for an otherwise incomplete invocation.
func (c *Context) validateGroups() error {
	r := c.Router
	start, end := r.Groups(c.Selected)
	if start == end || c.HelpRequested() {
		return nil
	}
	member := make([]bool, len(r.Options))
	for g := start; g < end; g++ {
		var hits []uint16
		for _, opt := range r.OptGroups[g] {
			member[opt] = true
			if c.occurrences[opt] > 0 && !slices.Contains(hits, opt) {
				hits = append(hits, opt)
			}
		}
		rules := r.GroupRules[g]
		if rules.Has(RuleOneOf) && len(hits) > 1 {
			return fmt.Errorf("%w: %s, %s", ErrMutuallyExclusive, c.optionLabel(hits[0]), c.optionLabel(hits[1]))
		}
		if rules.Has(RuleRequired) && len(hits) == 0 {
			return fmt.Errorf("%w: one of %s", ErrMissingRequired, c.groupLabel(g))
		}
	}
	for opt, count := range c.occurrences {
		if count == 0 || member[opt] || opt == r.HelpOpt {
			continue
		}
		return fmt.Errorf("%w: %s", ErrInvalidOption, c.optionLabel(uint16(opt)))
	}
	return nil
}

func (c *Context) optionLabel(opt uint16) string {
	return "--" + c.Router.OptionName(opt)
}

func (c *Context) groupLabel(group int) string {
	labels := make([]string, len(c.Router.OptGroups[group]))
	for i, opt := range c.Router.OptGroups[group] {
		labels[i] = c.optionLabel(opt)
	}
	return strings.Join(labels, ", ")
}
