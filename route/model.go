package route

import (
	"math"
	"slices"
	"strings"
)

const (
	MaxGroupsPerSegment = 15             // MaxGroupsPerSegment is the most option groups a single [Segment] can declare.
	MaxGroupTable       = 4095           // MaxGroupTable is the most option groups a [Router] can hold in total.
	MaxDepth            = 16             // MaxDepth bounds how deeply a [Seg] tree may nest.
	Unbounded           = math.MaxUint16 // Unbounded is the operand count for a [Segment] that takes any number of operands.
	MaxArgs             = math.MaxUint16 // MaxArgs is the most operands, and separately the most option values, one parse keeps.

	// WildcardPrefix marks a segment name that matches any input, capturing it as a path parameter.
	WildcardPrefix = ':'

	groupCountShift = 12
	groupStartMask  = 0x0FFF
)

// Action is the function bound to a [Segment], executed with the [Context] that selected it.
type Action func(c *Context) error

// OptArgKind specifies whether, and how many, option-arguments an option expects.
type OptArgKind uint8

const (
	KeyOnly  OptArgKind = iota // KeyOnly options carry no value.
	Single                     // Single options keep one value, and a later occurrence overwrites an earlier one.
	Multiple                   // Multiple options accumulate values across occurrences, in order.
)

func (k OptArgKind) String() string {
	switch k {
	case KeyOnly:
		return "key-only"
	case Single:
		return "single"
	case Multiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// GroupRule is a bitmask describing how options in an option group may be combined.
type GroupRule uint8

const (
	RuleAnyOf    GroupRule = 0      // RuleAnyOf places no exclusivity constraint on the group.
	RuleOneOf    GroupRule = 1 << 0 // RuleOneOf allows at most one option of the group.
	RuleRequired GroupRule = 1 << 1 // RuleRequired needs at least one option of the group.
)

func (r GroupRule) Has(rule GroupRule) bool {
	return r&rule != 0
}

func (r GroupRule) String() string {
	var parts []string
	if r.Has(RuleOneOf) {
		parts = append(parts, "one-of")
	} else {
		parts = append(parts, "any-of")
	}
	if r.Has(RuleRequired) {
		parts = append(parts, "required")
	}
	return strings.Join(parts, "+")
}

// TreeNode is the structural half of a flattened segment.
// Nodes are stored in pre-order, so a node's descendants are the ChildSpan nodes that immediately follow it.
type TreeNode struct {
	ChildSpan uint16 // Count of all descendants, not only direct children.
	Parent    uint16
}

// Segment holds what the parsers need at runtime for a node in the routing tree.
type Segment struct {
	// Operands is the exact number of operands the segment consumes, or [Unbounded].
	// Always 0 for a segment with children.
	Operands uint16
	// OptGroups packs a group count in the high 4 bits and a start index into the group table in the low 12 bits.
	// It's 0 when the segment declares no groups.
	OptGroups uint16
	// Name indexes the shared name table.
	Name uint16
}

// PackGroups packs an option group count and start index into a [Segment.OptGroups] value.
// The count is truncated to 4 bits and the start to 12 bits, so callers must check [MaxGroupsPerSegment] and [MaxGroupTable] first.
func PackGroups(count, start uint16) uint16 {
	if count == 0 {
		return 0
	}
	return count<<groupCountShift | start&groupStartMask
}

// GroupCount is the number of option groups declared by the segment.
func (s Segment) GroupCount() uint16 {
	return s.OptGroups >> groupCountShift
}

// GroupStart is the index of the segment's first group in [Router.OptGroups].
func (s Segment) GroupStart() uint16 {
	return s.OptGroups & groupStartMask
}

// Opt maps a parsed argument to an option.
type Opt struct {
	Name uint16 // Name indexes the shared name table.
	Kind OptArgKind
}

// ShortMapper relates a single character alias to an option index.
type ShortMapper struct {
	Option uint16
	Short  rune
}

// Router is the immutable, flattened routing tree.
// It's built once with [Build] and may be shared by any number of concurrent parses.
type Router struct {
	Tree       []TreeNode
	Segments   []Segment // Index aligned with Tree.
	Actions    []Action  // Index aligned with Tree.
	GroupRules []GroupRule
	OptGroups  [][]uint16
	// Options are sorted by name to allow binary search.
	Options []Opt
	Shorts  []ShortMapper
	// Names starts with every option name, followed by segment names in flattening order.
	Names []string
	// Summaries is index aligned with Names.
	Summaries []string
	// HelpOpt is the index of the help option, or -1 if there isn't one.
	HelpOpt int
	// Whether an action was bound to each segment, rather than DefaultAction.
	bound []bool
}

// HasAction reports whether an [Action] was bound to the segment at index with [Seg.Action].
func (r *Router) HasAction(index uint16) bool {
	return int(index) < len(r.bound) && r.bound[index]
}

// Name returns the name of the segment at index.
func (r *Router) Name(index uint16) string {
	return r.Names[r.Segments[index].Name]
}

// Summary returns the summary of the segment at index.
func (r *Router) Summary(index uint16) string {
	return r.Summaries[r.Segments[index].Name]
}

// OptionName returns the name of the option at index.
func (r *Router) OptionName(opt uint16) string {
	return r.Names[r.Options[opt].Name]
}

// OptionSummary returns the summary of the option at index.
func (r *Router) OptionSummary(opt uint16) string {
	return r.Summaries[r.Options[opt].Name]
}

// Short returns the short alias for an option, if it has one.
func (r *Router) Short(opt uint16) (rune, bool) {
	for _, m := range r.Shorts {
		if m.Option == opt {
			return m.Short, true
		}
	}
	return 0, false
}

// Groups returns the option group indexes declared by the segment at index, as a range into [Router.OptGroups].
func (r *Router) Groups(index uint16) (start, end int) {
	seg := r.Segments[index]
	start = int(seg.GroupStart())
	return start, start + int(seg.GroupCount())
}

// Children calls fn with the index of each direct child of the segment at index.
// Iteration stops early if fn returns false.
func (r *Router) Children(index uint16, fn func(child uint16) bool) {
	end := int(index) + int(r.Tree[index].ChildSpan) + 1
	for child := int(index) + 1; child < end; child += int(r.Tree[child].ChildSpan) + 1 {
		if !fn(uint16(child)) {
			return
		}
	}
}

// Lookup resolves a path of literal segment names, starting below the root, to a segment index.
// Wildcard segments match any path element.
func (r *Router) Lookup(path ...string) (uint16, bool) {
	if len(r.Tree) == 0 {
		return 0, false
	}
	var (
		selected  uint16
		treeIndex uint16 = 1
	)
	for _, elem := range path {
		if _, ok := r.descend(&selected, &treeIndex, elem); !ok {
			return 0, false
		}
	}
	return selected, true
}

// Path returns the segment names from the root down to the segment at index.
func (r *Router) Path(index uint16) []string {
	var path []string
	for {
		path = append(path, r.Name(index))
		if index == 0 {
			break
		}
		index = r.Tree[index].Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// OptionIndex finds an option by its long name.
func (r *Router) OptionIndex(name string) (uint16, bool) {
	return r.lookupOption(name)
}

// lookupOption binary searches the sorted option table.
func (r *Router) lookupOption(name string) (uint16, bool) {
	i, found := slices.BinarySearchFunc(r.Options, name, func(o Opt, target string) int {
		return strings.Compare(r.Names[o.Name], target)
	})
	return uint16(i), found
}

func (r *Router) lookupShort(ch rune) (uint16, bool) {
	for _, m := range r.Shorts {
		if m.Short == ch {
			return m.Option, true
		}
	}
	return 0, false
}

// descend scans the direct children of the selected segment, starting at treeIndex, for one matching elem.
// On a match selected and treeIndex are advanced, and wildcard reports whether the match was a path parameter.
// On a miss both are left unchanged.
func (r *Router) descend(selected, treeIndex *uint16, elem string) (wildcard bool, ok bool) {
	end := int(*selected) + int(r.Tree[*selected].ChildSpan) + 1
	restore := *treeIndex
	for int(*treeIndex) < end {
		name := r.Names[r.Segments[*treeIndex].Name]
		if len(name) > 0 && name[0] == WildcardPrefix {
			*selected = *treeIndex
			*treeIndex++
			return true, true
		}
		if name == elem {
			*selected = *treeIndex
			*treeIndex++
			return false, true
		}
		// Skip to the next sibling.
		*treeIndex += r.Tree[*treeIndex].ChildSpan + 1
	}
	*treeIndex = restore
	return false, false
}
