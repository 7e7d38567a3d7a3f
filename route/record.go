package route

import (
	"fmt"
	"slices"
)

// found counts an occurrence of opt, reporting whether it's the first one.
func (c *Context) found(opt uint16) (first bool) {
	first = c.occurrences[opt] == 0
	if c.occurrences[opt] < 0xFF {
		c.occurrences[opt]++
	}
	return first
}

// record saves a value for a [Single] or [Multiple] option.
//
// All values share one backing slice, and a [Multiple] option's values must stay contiguous.
// When a new value can't be appended to the end of an option's range, it's inserted at the end of the range
// and every value index recorded after that point is shifted by one.
// Values are indexed with 16 bits, so adding more than [MaxArgs] of them fails.
func (c *Context) record(opt uint16, val string) error {
	kind := c.Router.Options[opt].Kind
	found := -1
	for i, oa := range c.optionArgs {
		if oa.opt == opt {
			found = i
			break
		}
	}
	if (found < 0 || kind == Multiple) && len(c.savedArgs) >= MaxArgs {
		return fmt.Errorf("%w: more than %d option values", ErrTooManyArgs, MaxArgs)
	}
	switch {
	case found < 0 && kind == Multiple:
		c.optionArgs = append(c.optionArgs, optionArg{opt: opt, index: uint16(len(c.argRanges))})
		c.argRanges = append(c.argRanges, argRange{start: uint16(len(c.savedArgs)), end: uint16(len(c.savedArgs) + 1)})
		c.savedArgs = append(c.savedArgs, val)
	case found < 0:
		c.optionArgs = append(c.optionArgs, optionArg{opt: opt, index: uint16(len(c.savedArgs))})
		c.savedArgs = append(c.savedArgs, val)
	case kind == Multiple:
		rng := &c.argRanges[c.optionArgs[found].index]
		if int(rng.end) == len(c.savedArgs) {
			c.savedArgs = append(c.savedArgs, val)
			rng.end++
			return nil
		}
		at := rng.end
		c.savedArgs = slices.Insert(c.savedArgs, int(at), val)
		rng.end++
		for i, oa := range c.optionArgs {
			if i == found {
				continue
			}
			switch c.Router.Options[oa.opt].Kind {
			case Single:
				if oa.index >= at {
					c.optionArgs[i].index++
				}
			case Multiple:
				other := &c.argRanges[oa.index]
				if other.start >= at {
					other.start++
					other.end++
				}
			}
		}
	default:
		c.savedArgs[c.optionArgs[found].index] = val
	}
	return nil
}
