package treefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/saylorsolutions/segroute/assert"
	"github.com/saylorsolutions/segroute/route"
	"gopkg.in/yaml.v3"
)

var ErrFormat = errors.New("unsupported format")

type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf chooses a format from a file extension.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, true
	case ".toml":
		return TOML, true
	default:
		return "", false
	}
}

// Document is the decoded form of a tree description.
type Document struct {
	Options []OptionDoc `yaml:"options" toml:"options"`
	Root    SegmentDoc  `yaml:"root" toml:"root"`
}

type OptionDoc struct {
	Name    string `yaml:"name" toml:"name"`
	Short   string `yaml:"short,omitempty" toml:"short,omitempty"`
	Kind    string `yaml:"kind,omitempty" toml:"kind,omitempty"`
	Summary string `yaml:"summary,omitempty" toml:"summary,omitempty"`
	Help    bool   `yaml:"help,omitempty" toml:"help,omitempty"`
}

type SegmentDoc struct {
	Name     string       `yaml:"name" toml:"name"`
	Summary  string       `yaml:"summary,omitempty" toml:"summary,omitempty"`
	Operands Operands     `yaml:"operands,omitempty" toml:"operands,omitempty"`
	Action   string       `yaml:"action,omitempty" toml:"action,omitempty"`
	Groups   []GroupDoc   `yaml:"groups,omitempty" toml:"groups,omitempty"`
	Segments []SegmentDoc `yaml:"segments,omitempty" toml:"segments,omitempty"`
}

type GroupDoc struct {
	Rules   []string `yaml:"rules,omitempty" toml:"rules,omitempty"`
	Options []string `yaml:"options" toml:"options"`
}

// Operands is an operand count that may be written as "*" or -1 to mean [route.Unbounded].
type Operands uint16

func (o *Operands) set(text string) error {
	text = strings.TrimSpace(text)
	if text == "*" || text == "-1" {
		*o = Operands(route.Unbounded)
		return nil
	}
	n, err := strconv.ParseUint(text, 10, 16)
	if err != nil || n >= route.Unbounded {
		return fmt.Errorf("%w: invalid operand count '%s'", route.ErrConfig, text)
	}
	*o = Operands(n)
	return nil
}

func (o *Operands) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: operands must be a number or '*'", route.ErrConfig, node.Line)
	}
	return o.set(node.Value)
}

func (o *Operands) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case int64:
		return o.set(strconv.FormatInt(v, 10))
	case string:
		return o.set(v)
	default:
		return fmt.Errorf("%w: operands must be a number or '*', got %T", route.ErrConfig, data)
	}
}

// Parse decodes a document in the given format.
// Unknown keys are errors in both formats.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: decoding YAML: %w", route.ErrConfig, err)
		}
	case TOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("%w: decoding TOML: %w", route.ErrConfig, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown TOML key '%s'", route.ErrConfig, undecoded[0])
		}
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrFormat, format)
	}
	return &doc, nil
}

// Load reads and decodes a document, then builds a router from it.
func Load(r io.Reader, format Format, actions map[string]route.Action) (*route.Router, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	return doc.Build(actions)
}

// LoadFile is like [Load], choosing the format from the file extension.
func LoadFile(path string, actions map[string]route.Action) (*route.Router, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, fmt.Errorf("%w: file extension of '%s'", ErrFormat, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f, format, actions)
}

// Build creates a router from the document, resolving segment actions by name.
// All problems found in the document are returned together, wrapping [route.ErrConfig].
func (d *Document) Build(actions map[string]route.Action) (*route.Router, error) {
	errs := assert.CollectErrors("; ")
	specs := make([]*route.OptionSpec, 0, len(d.Options))
	for _, od := range d.Options {
		spec, err := od.spec()
		if err != nil {
			errs.Add(err)
			continue
		}
		specs = append(specs, spec)
	}
	root := d.Root.seg(errs, actions)
	if err := errs.Result(); err != nil {
		return nil, err
	}
	options, err := route.NewOptions(specs...)
	if err != nil {
		return nil, err
	}
	return route.Build(root, options)
}

func (od OptionDoc) spec() (*route.OptionSpec, error) {
	spec := route.Option(od.Name).Summary(od.Summary)
	switch strings.ToLower(od.Kind) {
	case "", "key-only":
	case "single":
		spec.Takes(route.Single)
	case "multiple":
		spec.Takes(route.Multiple)
	default:
		return nil, fmt.Errorf("%w: option '%s' has unknown kind '%s'", route.ErrConfig, od.Name, od.Kind)
	}
	if len(od.Short) > 0 {
		ch, size := utf8.DecodeRuneInString(od.Short)
		if size != len(od.Short) || ch == utf8.RuneError {
			return nil, fmt.Errorf("%w: short alias of option '%s' must be a single character", route.ErrConfig, od.Name)
		}
		spec.Short(ch)
	}
	if od.Help {
		spec.Help()
	}
	return spec, nil
}

func (sd SegmentDoc) seg(errs *assert.Collector, actions map[string]route.Action) *route.Seg {
	seg := route.New(sd.Name).Summary(sd.Summary).Operands(uint16(sd.Operands))
	if len(sd.Action) > 0 {
		action, ok := actions[sd.Action]
		if ok && action != nil {
			seg.Action(action)
		} else {
			errs.AddString("%w: segment '%s' uses unknown action '%s'", route.ErrConfig, sd.Name, sd.Action)
		}
	}
	groups := make([]route.OptGroup, 0, len(sd.Groups))
	for _, gd := range sd.Groups {
		var rules route.GroupRule
		for _, rule := range gd.Rules {
			switch strings.ToLower(rule) {
			case "any-of":
			case "one-of":
				rules |= route.RuleOneOf
			case "required":
				rules |= route.RuleRequired
			default:
				errs.AddString("%w: segment '%s' has a group with unknown rule '%s'", route.ErrConfig, sd.Name, rule)
			}
		}
		group := route.AnyOf(gd.Options...)
		if rules.Has(route.RuleOneOf) {
			group = route.OneOf(gd.Options...)
		}
		if rules.Has(route.RuleRequired) {
			group = group.Required()
		}
		groups = append(groups, group)
	}
	if len(groups) > 0 {
		seg.Options(groups...)
	}
	for _, child := range sd.Segments {
		seg.Nest(child.seg(errs, actions))
	}
	return seg
}
