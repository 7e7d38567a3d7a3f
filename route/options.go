package route

import (
	"fmt"
	"slices"
	"strings"

	"github.com/saylorsolutions/segroute/assert"
	"github.com/saylorsolutions/segroute/structures/bidimap"
	"github.com/saylorsolutions/segroute/structures/set"
)

// OptionSpec declares an option before it's placed in an [OptionTable].
type OptionSpec struct {
	name    string
	summary string
	short   rune
	kind    OptArgKind
	help    bool
}

// Option starts the declaration of an option with the given long name.
// The option is [KeyOnly] unless [OptionSpec.Takes] is used.
func Option(name string) *OptionSpec {
	return &OptionSpec{name: name}
}

// Short sets a single character alias, used as "-c".
func (o *OptionSpec) Short(ch rune) *OptionSpec {
	o.short = ch
	return o
}

// Takes sets how many option-arguments the option expects.
func (o *OptionSpec) Takes(kind OptArgKind) *OptionSpec {
	o.kind = kind
	return o
}

// Summary sets the text shown next to the option in usage output.
func (o *OptionSpec) Summary(text string) *OptionSpec {
	o.summary = text
	return o
}

// Help marks this option as the one that requests usage information.
func (o *OptionSpec) Help() *OptionSpec {
	o.help = true
	return o
}

// OptionTable is the sorted option list consumed by [Build].
type OptionTable struct {
	options   []Opt
	shorts    []ShortMapper
	names     []string
	summaries []string
	helpOpt   int
}

// NewOptions validates and sorts option declarations by name.
// Names must be unique, non-empty, must not start with '-' and must not contain '='.
// Short aliases must be unique, and at most one option may be marked with [OptionSpec.Help].
func NewOptions(specs ...*OptionSpec) (*OptionTable, error) {
	var (
		errs   = assert.CollectErrors("; ")
		seen   = set.New[string]()
		shorts = bidimap.New[rune, string]()
		sorted = slices.Clone(specs)
	)
	sorted = slices.DeleteFunc(sorted, func(spec *OptionSpec) bool {
		return spec == nil
	})
	slices.SortStableFunc(sorted, func(a, b *OptionSpec) int {
		return strings.Compare(a.name, b.name)
	})
	table := &OptionTable{
		options:   make([]Opt, len(sorted)),
		names:     make([]string, len(sorted)),
		summaries: make([]string, len(sorted)),
		helpOpt:   -1,
	}
	for i, spec := range sorted {
		switch {
		case len(spec.name) == 0:
			errs.AddString("%w: option %d has an empty name", ErrConfig, i)
		case strings.HasPrefix(spec.name, "-"):
			errs.AddString("%w: option name '%s' must not start with '-'", ErrConfig, spec.name)
		case strings.ContainsRune(spec.name, '='):
			errs.AddString("%w: option name '%s' must not contain '='", ErrConfig, spec.name)
		case seen.Has(spec.name):
			errs.AddString("%w: duplicate option name '%s'", ErrConfig, spec.name)
		}
		seen.Add(spec.name)
		if spec.kind > Multiple {
			errs.AddString("%w: option '%s' has unknown kind %d", ErrConfig, spec.name, spec.kind)
		}
		if spec.short != 0 {
			switch {
			case spec.short == '-' || spec.short == '=':
				errs.AddString("%w: option '%s' can't use '%c' as a short alias", ErrConfig, spec.name, spec.short)
			case !shorts.TryAdd(spec.short, spec.name):
				errs.AddString("%w: short alias '%c' of '%s' is already used by '%s'", ErrConfig, spec.short, spec.name, shorts.Value(spec.short))
			default:
				table.shorts = append(table.shorts, ShortMapper{Option: uint16(i), Short: spec.short})
			}
		}
		if spec.help {
			if table.helpOpt >= 0 {
				errs.AddString("%w: both '%s' and '%s' are marked as the help option", ErrConfig, table.names[table.helpOpt], spec.name)
			}
			table.helpOpt = i
		}
		table.options[i] = Opt{Name: uint16(i), Kind: spec.kind}
		table.names[i] = spec.name
		table.summaries[i] = spec.summary
	}
	if len(sorted) > Unbounded {
		errs.AddString("%w: too many options (%d)", ErrConfig, len(sorted))
	}
	if err := errs.Result(); err != nil {
		return nil, err
	}
	return table, nil
}

// MustOptions is like [NewOptions], but panics on error.
func MustOptions(specs ...*OptionSpec) *OptionTable {
	table, err := NewOptions(specs...)
	if err != nil {
		panic(err)
	}
	return table
}

// Len is the number of options in the table.
func (t *OptionTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.options)
}

// Index returns the sorted index of the named option.
func (t *OptionTable) Index(name string) (uint16, bool) {
	if t == nil {
		return 0, false
	}
	i, found := slices.BinarySearch(t.names, name)
	return uint16(i), found
}

// MustIndex is like [OptionTable.Index], but panics if the option doesn't exist.
func (t *OptionTable) MustIndex(name string) uint16 {
	i, ok := t.Index(name)
	if !ok {
		panic(fmt.Sprintf("unknown option '%s'", name))
	}
	return i
}
