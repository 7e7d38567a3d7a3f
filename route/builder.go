package route

import (
	"math"
	"strings"

	"github.com/saylorsolutions/segroute/assert"
	"github.com/saylorsolutions/segroute/structures/set"
)

// OptGroup declares a set of options a [Seg] accepts, and how they may be combined.
// Options are referenced by name and resolved when the tree is built.
type OptGroup struct {
	options []string
	rules   GroupRule
}

// AnyOf declares a group where any of the options may be present.
func AnyOf(options ...string) OptGroup {
	return OptGroup{options: options, rules: RuleAnyOf}
}

// OneOf declares a group where the options are exclusive, only one of them may be present.
func OneOf(options ...string) OptGroup {
	return OptGroup{options: options, rules: RuleOneOf}
}

// Required makes at least one option of the group required.
func (g OptGroup) Required() OptGroup {
	g.rules |= RuleRequired
	return g
}

// Rules returns the group's rule bitmask.
func (g OptGroup) Rules() GroupRule {
	return g.rules
}

// Seg describes a segment of the routing tree before it's flattened.
// It can be an action, a nesting structure leading to other segments, or both.
type Seg struct {
	name     string
	summary  string
	children []*Seg
	groups   []OptGroup
	action   Action
	operands uint16
}

// New starts the description of a segment.
func New(name string) *Seg {
	return &Seg{name: name}
}

// Summary sets the one line description shown in usage output.
func (s *Seg) Summary(text string) *Seg {
	s.summary = text
	return s
}

// Nest adds child segments.
func (s *Seg) Nest(children ...*Seg) *Seg {
	for _, child := range children {
		if child != nil {
			s.children = append(s.children, child)
		}
	}
	return s
}

// Operands sets how many operands the segment consumes. Use [Unbounded] for any number.
// A segment with children never consumes operands, so this is ignored for them.
func (s *Seg) Operands(n uint16) *Seg {
	s.operands = n
	return s
}

// Options declares the option groups this segment accepts.
// A segment without groups accepts any option.
func (s *Seg) Options(groups ...OptGroup) *Seg {
	s.groups = append(s.groups, groups...)
	return s
}

// Action binds the function run when this segment is selected.
func (s *Seg) Action(fn Action) *Seg {
	s.action = fn
	return s
}

// DefaultAction does nothing, and is bound to segments without an [Action].
func DefaultAction(*Context) error {
	return nil
}

type breadcrumb struct {
	seg *Seg
	// The next child of seg to visit.
	childIndex int
	// Where seg landed in the output.
	finalIndex int
}

// Count walks the tree depth first, counting all segments and their option groups.
// The walk uses an explicit stack bounded by maxDepth, and exceeded reports whether any nesting went deeper.
func (s *Seg) Count(maxDepth int) (segments, groups int, exceeded bool) {
	if maxDepth < 1 {
		return 0, 0, true
	}
	stack := make([]breadcrumb, maxDepth)
	depth := 0
	segments, groups = 1, len(s.groups)
	stack[0] = breadcrumb{seg: s}
	for {
		top := &stack[depth]
		if top.childIndex < len(top.seg.children) {
			child := top.seg.children[top.childIndex]
			top.childIndex++
			segments++
			groups += len(child.groups)
			if len(child.children) > 0 {
				if depth+1 == maxDepth {
					exceeded = true
					continue
				}
				depth++
				stack[depth] = breadcrumb{seg: child}
			}
			continue
		}
		if depth == 0 {
			break
		}
		depth--
	}
	return segments, groups, exceeded
}

// Build flattens a [Seg] tree into a [Router], using the given options.
// All configuration problems found are returned together, wrapping [ErrConfig].
func Build(root *Seg, options *OptionTable) (*Router, error) {
	errs := assert.CollectErrors("; ")
	if root == nil {
		return nil, errs.AddString("%w: nil root segment", ErrConfig)
	}
	if options == nil {
		options = &OptionTable{helpOpt: -1}
	}
	count, groupCount, exceeded := root.Count(MaxDepth)
	if exceeded {
		errs.AddString("%w: segments nest deeper than %d", ErrConfig, MaxDepth)
	}
	if count > Unbounded {
		errs.AddString("%w: too many segments (%d)", ErrConfig, count)
	}
	if groupCount > MaxGroupTable {
		errs.AddString("%w: too many option groups (%d), the limit is %d", ErrConfig, groupCount, MaxGroupTable)
	}
	// Options and segments share one name table, indexed with 16 bits.
	if names := len(options.names) + count; names > math.MaxUint16+1 {
		errs.AddString("%w: too many names (%d options and %d segments), the limit is %d", ErrConfig, len(options.names), count, math.MaxUint16+1)
	}
	if err := errs.Result(); err != nil {
		return nil, err
	}

	optCount := len(options.names)
	r := &Router{
		Tree:       make([]TreeNode, count),
		Segments:   make([]Segment, count),
		Actions:    make([]Action, count),
		bound:      make([]bool, count),
		GroupRules: make([]GroupRule, 0, groupCount),
		OptGroups:  make([][]uint16, 0, groupCount),
		Options:    options.options,
		Shorts:     options.shorts,
		Names:      make([]string, optCount, optCount+count),
		Summaries:  make([]string, optCount, optCount+count),
		HelpOpt:    options.helpOpt,
	}
	copy(r.Names, options.names)
	copy(r.Summaries, options.summaries)

	var (
		stack   = make([]breadcrumb, MaxDepth)
		depth   = 0
		emitted = 0
	)
	emit := func(seg *Seg, parent int) int {
		index := emitted
		emitted++
		if index > 0 && len(seg.name) == 0 {
			errs.AddString("%w: segment %d under '%s' has an empty name", ErrConfig, index, r.Names[r.Segments[parent].Name])
		}
		r.Names = append(r.Names, seg.name)
		r.Summaries = append(r.Summaries, seg.summary)
		r.Segments[index].Name = uint16(optCount + index)
		r.Tree[index].Parent = uint16(parent)
		r.Actions[index] = seg.action
		r.bound[index] = seg.action != nil
		if r.Actions[index] == nil {
			r.Actions[index] = DefaultAction
		}
		if len(seg.children) > 0 {
			// Segments with children dispatch, they don't consume operands.
			r.Segments[index].Operands = 0
		} else {
			r.Segments[index].Operands = seg.operands
		}
		if len(seg.groups) > 0 {
			if len(seg.groups) > MaxGroupsPerSegment {
				errs.AddString("%w: segment '%s' declares %d option groups, the limit is %d", ErrConfig, seg.name, len(seg.groups), MaxGroupsPerSegment)
			}
			r.Segments[index].OptGroups = PackGroups(uint16(len(seg.groups)), uint16(len(r.OptGroups)))
			for _, grp := range seg.groups {
				resolved := make([]uint16, 0, len(grp.options))
				for _, name := range grp.options {
					opt, ok := options.Index(name)
					if !ok {
						errs.AddString("%w: segment '%s' references unknown option '%s'", ErrConfig, seg.name, name)
						continue
					}
					resolved = append(resolved, opt)
				}
				r.OptGroups = append(r.OptGroups, resolved)
				r.GroupRules = append(r.GroupRules, grp.rules)
			}
		}
		checkSiblings(errs, seg)
		return index
	}

	stack[0] = breadcrumb{seg: root, finalIndex: emit(root, 0)}
	for {
		top := &stack[depth]
		if top.childIndex < len(top.seg.children) {
			child := top.seg.children[top.childIndex]
			top.childIndex++
			index := emit(child, top.finalIndex)
			if len(child.children) > 0 {
				depth++
				stack[depth] = breadcrumb{seg: child, finalIndex: index}
			}
			continue
		}
		// Everything emitted since this segment was entered is a descendant.
		r.Tree[top.finalIndex].ChildSpan = uint16(emitted - top.finalIndex - 1)
		if depth == 0 {
			break
		}
		depth--
	}
	assert.True("every counted segment is emitted", emitted == count)
	if err := errs.Result(); err != nil {
		return nil, err
	}
	return r, nil
}

// MustBuild is like [Build], but panics with the configuration error.
func MustBuild(root *Seg, options *OptionTable) *Router {
	r, err := Build(root, options)
	if err != nil {
		panic(err)
	}
	return r
}

func checkSiblings(errs *assert.Collector, seg *Seg) {
	if len(seg.children) < 2 {
		return
	}
	var (
		names    = set.New[string]()
		wildcard string
	)
	for _, child := range seg.children {
		isWildcard := strings.HasPrefix(child.name, string(WildcardPrefix))
		switch {
		case names.Has(child.name) && !isWildcard:
			errs.AddString("%w: segment '%s' has more than one child named '%s'", ErrConfig, seg.name, child.name)
		case len(wildcard) > 0 && !isWildcard:
			// Children are matched in order, and a wildcard matches everything.
			errs.AddString("%w: child '%s' of segment '%s' is unreachable after wildcard '%s'", ErrConfig, child.name, seg.name, wildcard)
		}
		if isWildcard && len(wildcard) == 0 {
			wildcard = child.name
		}
		names.Add(child.name)
	}
}
