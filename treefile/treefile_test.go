package treefile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/saylorsolutions/segroute/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	optHelp uint16 = iota
	optOutput
	optTag
	optVerbose
)

type recorder struct {
	ran []string
}

func (rec *recorder) actions() map[string]route.Action {
	return map[string]route.Action{
		"build": func(c *route.Context) error {
			rec.ran = append(rec.ran, "build "+c.Operands()[0])
			return nil
		},
		"remove": func(c *route.Context) error {
			rec.ran = append(rec.ran, "remove "+strings.Join(c.Operands(), ","))
			return nil
		},
	}
}

func TestLoadFile(t *testing.T) {
	for _, path := range []string{"testdata/tool.yaml", "testdata/tool.toml"} {
		t.Run(path, func(t *testing.T) {
			rec := new(recorder)
			r, err := LoadFile(path, rec.actions())
			require.NoError(t, err)

			assert.Equal(t, []route.TreeNode{
				{ChildSpan: 3, Parent: 0},
				{ChildSpan: 2, Parent: 0},
				{ChildSpan: 0, Parent: 1},
				{ChildSpan: 0, Parent: 1},
			}, r.Tree)
			assert.Equal(t, []route.Opt{
				{Name: optHelp, Kind: route.KeyOnly},
				{Name: optOutput, Kind: route.Single},
				{Name: optTag, Kind: route.Multiple},
				{Name: optVerbose, Kind: route.KeyOnly},
			}, r.Options)
			assert.Equal(t, int(optHelp), r.HelpOpt)
			assert.Equal(t, uint16(route.Unbounded), r.Segments[3].Operands)
			assert.Equal(t, []route.GroupRule{route.RuleAnyOf, route.RuleOneOf}, r.GroupRules)
			assert.Equal(t, "Builds an image", r.Summary(2))

			c, err := r.Parse([]string{"image", "build", "-t", "v1", ".", "--verbose"})
			require.NoError(t, err)
			require.NoError(t, c.Run())
			assert.Equal(t, []string{"v1"}, c.Values(optTag))

			c, err = r.Parse([]string{"image", "rm", "a", "b", "c"})
			require.NoError(t, err)
			require.NoError(t, c.Run())
			assert.Equal(t, []string{"build .", "remove a,b,c"}, rec.ran)

			_, err = r.Parse([]string{"image", "build", "-v", "--output", "x", "."})
			assert.ErrorIs(t, err, route.ErrMutuallyExclusive)
		})
	}
}

func TestFormatsAgree(t *testing.T) {
	rec := new(recorder)
	fromYAML, err := LoadFile("testdata/tool.yaml", rec.actions())
	require.NoError(t, err)
	fromTOML, err := LoadFile("testdata/tool.toml", rec.actions())
	require.NoError(t, err)

	if diff := cmp.Diff(fromYAML.Tree, fromTOML.Tree); diff != "" {
		t.Errorf("Tree mismatch (-yaml +toml):\n%s", diff)
	}
	if diff := cmp.Diff(fromYAML.Segments, fromTOML.Segments); diff != "" {
		t.Errorf("Segments mismatch (-yaml +toml):\n%s", diff)
	}
	if diff := cmp.Diff(fromYAML.OptGroups, fromTOML.OptGroups); diff != "" {
		t.Errorf("OptGroups mismatch (-yaml +toml):\n%s", diff)
	}
	if diff := cmp.Diff(fromYAML.Shorts, fromTOML.Shorts); diff != "" {
		t.Errorf("Shorts mismatch (-yaml +toml):\n%s", diff)
	}
	if diff := cmp.Diff(fromYAML.Names, fromTOML.Names); diff != "" {
		t.Errorf("Names mismatch (-yaml +toml):\n%s", diff)
	}
	if diff := cmp.Diff(fromYAML.Summaries, fromTOML.Summaries); diff != "" {
		t.Errorf("Summaries mismatch (-yaml +toml):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]struct {
		format Format
		doc    string
	}{
		"Unknown YAML key": {
			format: YAML,
			doc:    "root:\n  name: tool\n  operand: 1\n",
		},
		"Unknown TOML key": {
			format: TOML,
			doc:    "[root]\nname = \"tool\"\noperand = 1\n",
		},
		"Bad YAML operands": {
			format: YAML,
			doc:    "root:\n  name: tool\n  operands: many\n",
		},
		"YAML operands list": {
			format: YAML,
			doc:    "root:\n  name: tool\n  operands: [1]\n",
		},
		"Bad TOML operands": {
			format: TOML,
			doc:    "[root]\nname = \"tool\"\noperands = 70000\n",
		},
		"Malformed YAML": {
			format: YAML,
			doc:    "root: [",
		},
		"Malformed TOML": {
			format: TOML,
			doc:    "[root",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc), tc.format)
			assert.ErrorIs(t, err, route.ErrConfig)
		})
	}

	_, err := Parse(nil, "json")
	assert.ErrorIs(t, err, ErrFormat)
	_, err = LoadFile("testdata/tool.json", nil)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestDocument_Build(t *testing.T) {
	doc, err := Parse([]byte(`
options:
  - name: tag
    kind: several
  - name: verbose
    short: vv
  - name: quiet
root:
  name: tool
  action: missing
  groups:
    - rules: [sometimes]
      options: [quiet]
`), YAML)
	require.NoError(t, err)
	_, err = doc.Build(nil)
	assert.ErrorIs(t, err, route.ErrConfig)
	assert.ErrorContains(t, err, "unknown kind 'several'")
	assert.ErrorContains(t, err, "short alias of option 'verbose'")
	assert.ErrorContains(t, err, "unknown action 'missing'")
	assert.ErrorContains(t, err, "unknown rule 'sometimes'")

	doc, err = Parse([]byte("root:\n  name: tool\n  groups:\n    - options: [nothing]\n"), YAML)
	require.NoError(t, err)
	_, err = doc.Build(nil)
	assert.ErrorIs(t, err, route.ErrConfig)
	assert.ErrorContains(t, err, "unknown option 'nothing'")
}

func TestParse_Empty(t *testing.T) {
	doc, err := Parse(nil, YAML)
	require.NoError(t, err)
	r, err := doc.Build(nil)
	require.NoError(t, err)
	assert.Len(t, r.Tree, 1)
	assert.Equal(t, -1, r.HelpOpt)
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"tree.yaml":     YAML,
		"tree.YML":      YAML,
		"dir/tree.toml": TOML,
	}
	for path, want := range tests {
		got, ok := FormatOf(path)
		assert.True(t, ok, path)
		assert.Equal(t, want, got, path)
	}
	_, ok := FormatOf("tree.json")
	assert.False(t, ok)
}
