package route

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Parser holds the settings that change how arguments are recognized.
// The zero value expects "--name" long options, "-c" short options, and option-arguments as separate arguments.
// A Parser has no parse state, so it may be shared.
type Parser struct {
	// EqSeparator allows giving an option-argument in the same argument, separated with '=', as in "--name=value" or "-c=value".
	EqSeparator bool
	// SingleHyphen makes long options use a single '-' prefix, as in "-name", and disables short options.
	SingleHyphen bool
	// Logger receives debug messages about ignored options and segments. Nothing is logged if it's nil.
	Logger *slog.Logger
}

// DefaultParser is used by [Router.Parse] and [Router.ParseURI].
var DefaultParser = Parser{}

// Parse finds the selected segment, its operands, and its options in args, using [DefaultParser].
// The args should not include the program name.
func (r *Router) Parse(args []string) (*Context, error) {
	return DefaultParser.Parse(r, args)
}

// ParseArgs is like [Router.Parse], but skips the first argument, which is the program name in [os.Args].
func (r *Router) ParseArgs(argv []string) (*Context, error) {
	return DefaultParser.ParseArgs(r, argv)
}

// ParseArgs is like [Parser.Parse], but skips the first argument, which is the program name in [os.Args].
func (p Parser) ParseArgs(r *Router, argv []string) (*Context, error) {
	if len(argv) > 0 {
		argv = argv[1:]
	}
	return p.Parse(r, argv)
}

func (p Parser) debug(msg string, args ...any) {
	if p.Logger == nil {
		return
	}
	p.Logger.Log(context.Background(), slog.LevelDebug, msg, args...)
}

// Parse finds the selected segment, its operands, and its options in args.
// The args should not include the program name.
//
// Unrecognized options and segments are ignored.
// A "--" argument ends parsing, and everything after it is available from [Context.TerminatedArgs].
// A "-" argument is always an operand.
func (p Parser) Parse(r *Router, args []string) (*Context, error) {
	if r == nil || len(r.Tree) == 0 {
		return nil, fmt.Errorf("%w: empty router", ErrConfig)
	}
	var (
		c = newContext(r, len(args))
		// Next candidate when a segment name is found.
		treeIndex uint16 = 1
		// Operands consumed by the selected segment.
		consumed int
	)
	wantsOperand := func() bool {
		want := r.Segments[c.Selected].Operands
		return want == Unbounded || consumed < int(want)
	}

scan:
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case !utf8.ValidString(arg):
			// Segment and option names are always valid text, so this can only be an operand.
			if !wantsOperand() {
				p.debug("Ignoring argument that isn't valid text", "index", i)
				continue
			}
			if err := c.addOperands(arg); err != nil {
				return nil, err
			}
			consumed++
		case arg == "-":
			if err := c.addOperands(arg); err != nil {
				return nil, err
			}
			consumed++
		case arg == "--":
			c.operandsEnd = uint16(len(c.operands))
			c.terminated = true
			if err := c.addOperands(args[i+1:]...); err != nil {
				return nil, err
			}
			break scan
		case strings.HasPrefix(arg, "--") || (p.SingleHyphen && strings.HasPrefix(arg, "-")):
			next, err := p.parseLong(c, arg, args, i)
			if err != nil {
				return nil, err
			}
			i = next
		case strings.HasPrefix(arg, "-"):
			next, err := p.parseShorts(c, arg, args, i)
			if err != nil {
				return nil, err
			}
			i = next
		case wantsOperand():
			if err := c.addOperands(arg); err != nil {
				return nil, err
			}
			consumed++
		default:
			wildcard, ok := r.descend(&c.Selected, &treeIndex, arg)
			if !ok {
				p.debug("Ignoring unrecognized segment", "segment", arg, "selected", r.Name(c.Selected))
				continue
			}
			consumed = 0
			if wildcard {
				if err := c.addPathParam(arg); err != nil {
					return nil, err
				}
			}
		}
	}
	if !c.terminated {
		c.operandsEnd = uint16(len(c.operands))
	}
	if err := c.validateGroups(); err != nil {
		return nil, err
	}
	return c, nil
}

// parseLong handles a long option at args[i], and returns the index of the last argument it consumed.
func (p Parser) parseLong(c *Context, arg string, args []string, i int) (int, error) {
	prefix := 2
	if p.SingleHyphen {
		prefix = 1
	}
	name := arg[prefix:]
	var (
		value    string
		hasValue bool
	)
	if p.EqSeparator {
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name, value, hasValue = name[:eq], name[eq+1:], true
		}
	}
	opt, ok := c.Router.lookupOption(name)
	if !ok {
		p.debug("Ignoring unrecognized option", "option", arg)
		return i, nil
	}
	c.found(opt)
	if c.Router.Options[opt].Kind == KeyOnly {
		if hasValue {
			p.debug("Ignoring value of an option that doesn't take one", "option", name, "value", value)
		}
		return i, nil
	}
	if !hasValue {
		if i+1 >= len(args) {
			return i, fmt.Errorf("%w: %s", ErrMissingValue, arg)
		}
		i++
		value = args[i]
	}
	if err := c.record(opt, value); err != nil {
		return i, err
	}
	return i, nil
}

// parseShorts handles a cluster of short options at args[i], and returns the index of the last argument it consumed.
// Only the last option in a cluster may expect an option-argument.
func (p Parser) parseShorts(c *Context, arg string, args []string, i int) (int, error) {
	cluster := arg[1:]
	var (
		value    string
		hasValue bool
	)
	if p.EqSeparator {
		if eq := strings.IndexByte(cluster, '='); eq >= 0 {
			cluster, value, hasValue = cluster[:eq], cluster[eq+1:], true
		}
	}
	shorts := []rune(cluster)
	for j, ch := range shorts {
		opt, ok := c.Router.lookupShort(ch)
		if !ok {
			p.debug("Ignoring unrecognized short option", "option", string(ch), "argument", arg)
			continue
		}
		c.found(opt)
		if c.Router.Options[opt].Kind == KeyOnly {
			if hasValue && j == len(shorts)-1 {
				p.debug("Ignoring value of an option that doesn't take one", "option", string(ch), "value", value)
			}
			continue
		}
		if j != len(shorts)-1 {
			return i, fmt.Errorf("%w: -%c expects a value, but isn't last in %s", ErrAmbiguousShort, ch, arg)
		}
		if !hasValue {
			if i+1 >= len(args) {
				return i, fmt.Errorf("%w: -%c", ErrMissingValue, ch)
			}
			i++
			value = args[i]
		}
		if err := c.record(opt, value); err != nil {
			return i, err
		}
	}
	return i, nil
}
