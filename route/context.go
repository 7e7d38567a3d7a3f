package route

import (
	"fmt"
	"slices"
)

// optionArg relates an option to its value, an index into [Context.savedArgs] for [Single] options, or into [Context.argRanges] for [Multiple] options.
type optionArg struct {
	opt   uint16
	index uint16
}

// argRange is the contiguous range of [Context.savedArgs] holding one [Multiple] option's values.
type argRange struct {
	start, end uint16
}

func (r argRange) len() int {
	return int(r.end) - int(r.start)
}

// Context is the result of a parse.
// It's created fresh for each parse, and owned by the caller from then on.
type Context struct {
	Router *Router
	// Selected is the index of the selected segment.
	Selected uint16
	// The selected segment's path parameters, then operands, then any arguments found after a terminator.
	operands    []string
	operandsEnd uint16
	pathParams  uint8
	terminated  bool
	// How many times each option was found, index aligned with Router.Options.
	occurrences []uint8
	// Backing store for all option values.
	savedArgs  []string
	optionArgs []optionArg
	argRanges  []argRange
}

func newContext(r *Router, hint int) *Context {
	return &Context{
		Router:      r,
		occurrences: make([]uint8, len(r.Options)),
		savedArgs:   make([]string, 0, hint),
		optionArgs:  make([]optionArg, 0, hint),
	}
}

// Segment returns the selected [Segment].
func (c *Context) Segment() Segment {
	return c.Router.Segments[c.Selected]
}

// SegmentName returns the name of the selected segment.
func (c *Context) SegmentName() string {
	return c.Router.Name(c.Selected)
}

// Run executes the [Action] bound to the selected segment.
func (c *Context) Run() error {
	return c.Router.Actions[c.Selected](c)
}

// Operands returns the selected segment's operands, excluding path parameters and terminated arguments.
func (c *Context) Operands() []string {
	return c.operands[c.pathParams:c.operandsEnd]
}

// addOperands appends operands, which are bounded by [MaxArgs] so their boundary fits in 16 bits.
func (c *Context) addOperands(vals ...string) error {
	if len(c.operands)+len(vals) > MaxArgs {
		return fmt.Errorf("%w: more than %d operands", ErrTooManyArgs, MaxArgs)
	}
	c.operands = append(c.operands, vals...)
	return nil
}

// addPathParam keeps path parameters ahead of any "-" operand found before them.
func (c *Context) addPathParam(param string) error {
	if len(c.operands) >= MaxArgs {
		return fmt.Errorf("%w: more than %d operands", ErrTooManyArgs, MaxArgs)
	}
	c.operands = slices.Insert(c.operands, int(c.pathParams), param)
	c.pathParams++
	return nil
}

// PathParams returns the values matched by wildcard segments, in order.
func (c *Context) PathParams() []string {
	return c.operands[:c.pathParams]
}

// TerminatedArgs returns the arguments found after a "--" terminator.
func (c *Context) TerminatedArgs() []string {
	return c.operands[c.operandsEnd:]
}

// OperandsEnd is the boundary between operands and arguments found after a terminator.
func (c *Context) OperandsEnd() uint16 {
	return c.operandsEnd
}

// Terminated reports whether a "--" terminator was found.
func (c *Context) Terminated() bool {
	return c.terminated
}

// Occurrences returns how many times the option was given.
func (c *Context) Occurrences(opt uint16) uint8 {
	if int(opt) >= len(c.occurrences) {
		return 0
	}
	return c.occurrences[opt]
}

// Has reports whether the option was given at least once.
func (c *Context) Has(opt uint16) bool {
	return c.Occurrences(opt) > 0
}

// HelpRequested reports whether the router's help option was given.
func (c *Context) HelpRequested() bool {
	return c.Router.HelpOpt >= 0 && c.Has(uint16(c.Router.HelpOpt))
}

// Opt returns an [Arg] to iterate the option's values.
// The [Arg] is empty if the option wasn't given, or is [KeyOnly].
func (c *Context) Opt(opt uint16) Arg {
	arg := Arg{context: c}
	if !c.Has(opt) {
		return arg
	}
	kind := c.Router.Options[opt].Kind
	if kind == KeyOnly {
		return arg
	}
	for _, oa := range c.optionArgs {
		if oa.opt != opt {
			continue
		}
		if kind == Multiple {
			rng := c.argRanges[oa.index]
			arg.start, arg.end = rng.start, rng.end
		} else {
			arg.start, arg.end = oa.index, oa.index+1
		}
		break
	}
	return arg
}

// Values returns a copy of all values given for the option, in the order they were found.
func (c *Context) Values(opt uint16) []string {
	arg := c.Opt(opt)
	if arg.Len() == 0 {
		return nil
	}
	vals := make([]string, arg.Len())
	copy(vals, c.savedArgs[arg.start:arg.end])
	return vals
}

// Value returns the option's first value.
func (c *Context) Value(opt uint16) (string, bool) {
	arg := c.Opt(opt)
	val, ok := arg.Next()
	return val, ok
}
