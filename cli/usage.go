package cli

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/saylorsolutions/segroute/route"
	"github.com/saylorsolutions/segroute/structures/set"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
)

var heading = color.New(color.Bold)

// TerminalWidth returns the column width of STDOUT, or 0 if it's not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// Usage renders usage information for the segment at index.
// Option descriptions are wrapped to width columns, and not wrapped at all if width is 0.
//
// Only options the segment accepts are listed, along with any rules about how they may be combined.
func Usage(r *route.Router, segment uint16, width int) string {
	var (
		buf     strings.Builder
		allowed = acceptedOptions(r, segment)
	)
	buf.WriteString(heading.Sprint("SYNOPSIS"))
	buf.WriteString("\n  ")
	buf.WriteString(strings.TrimSpace(strings.Join(r.Path(segment), " ")))
	if len(allowed) > 0 {
		buf.WriteString(" [options...]")
	}
	if r.Tree[segment].ChildSpan > 0 {
		buf.WriteString(" [command]")
	} else {
		buf.WriteString(operandHint(r.Segments[segment].Operands))
	}
	buf.WriteString("\n")
	if summary := r.Summary(segment); len(summary) > 0 {
		buf.WriteString("\n  " + summary + "\n")
	}
	if len(allowed) > 0 {
		buf.WriteString("\n" + heading.Sprint("OPTIONS") + "\n")
		buf.WriteString(optionUsages(r, segment, allowed, width))
		buf.WriteString(groupRules(r, segment))
	}
	if r.Tree[segment].ChildSpan > 0 {
		buf.WriteString("\n" + heading.Sprint("COMMANDS") + "\n")
		buf.WriteString(commandUsages(r, segment))
	}
	return buf.String()
}

func operandHint(operands uint16) string {
	switch operands {
	case 0:
		return ""
	case 1:
		return " <operand>"
	case route.Unbounded:
		return " <operands...>"
	default:
		return fmt.Sprintf(" <operands; %d>", operands)
	}
}

// acceptedOptions lists the options in any of the segment's groups, plus the help option.
// Every option is accepted by a segment without groups.
func acceptedOptions(r *route.Router, segment uint16) []uint16 {
	start, end := r.Groups(segment)
	if start == end {
		all := make([]uint16, len(r.Options))
		for i := range all {
			all[i] = uint16(i)
		}
		return all
	}
	accepted := set.New[uint16]()
	for g := start; g < end; g++ {
		for _, opt := range r.OptGroups[g] {
			accepted.Add(opt)
		}
	}
	if r.HelpOpt >= 0 {
		accepted.Add(uint16(r.HelpOpt))
	}
	return set.Sorted(accepted)
}

// placeholder is a [flag.Value] that only exists to name an option's argument in usage output.
type placeholder string

func (p placeholder) String() string   { return "" }
func (p placeholder) Set(string) error { return nil }
func (p placeholder) Type() string     { return string(p) }

// optionUsages renders options through a [flag.FlagSet], so they're laid out like any other pflag based tool.
func optionUsages(r *route.Router, segment uint16, allowed []uint16, width int) string {
	fs := flag.NewFlagSet(r.Name(segment), flag.ContinueOnError)
	for _, opt := range allowed {
		var (
			name    = r.OptionName(opt)
			summary = r.OptionSummary(opt)
			short   string
		)
		// pflag only supports ASCII shorthands.
		if ch, ok := r.Short(opt); ok && ch < utf8.RuneSelf {
			short = string(ch)
		}
		switch r.Options[opt].Kind {
		case route.KeyOnly:
			fs.BoolP(name, short, false, summary)
		case route.Single:
			fs.VarP(placeholder("value"), name, short, summary)
		case route.Multiple:
			fs.VarP(placeholder("values"), name, short, summary)
		}
	}
	return fs.FlagUsagesWrapped(width)
}

func groupRules(r *route.Router, segment uint16) string {
	var buf strings.Builder
	start, end := r.Groups(segment)
	for g := start; g < end; g++ {
		rules := r.GroupRules[g]
		if rules == route.RuleAnyOf || len(r.OptGroups[g]) == 0 {
			continue
		}
		names := make([]string, len(r.OptGroups[g]))
		for i, opt := range r.OptGroups[g] {
			names[i] = "--" + r.OptionName(opt)
		}
		switch {
		case rules.Has(route.RuleOneOf) && rules.Has(route.RuleRequired):
			buf.WriteString("  Exactly one of: ")
		case rules.Has(route.RuleOneOf):
			buf.WriteString("  At most one of: ")
		default:
			buf.WriteString("  At least one of: ")
		}
		buf.WriteString(strings.Join(names, ", ") + "\n")
	}
	if buf.Len() == 0 {
		return ""
	}
	return "\n" + buf.String()
}

func commandUsages(r *route.Router, segment uint16) string {
	var (
		buf      strings.Builder
		children []uint16
		maxLen   int
	)
	r.Children(segment, func(child uint16) bool {
		children = append(children, child)
		maxLen = max(maxLen, len(r.Name(child)))
		return true
	})
	for _, child := range children {
		line := fmt.Sprintf("  %-*s   %s", maxLen, r.Name(child), r.Summary(child))
		buf.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return buf.String()
}
