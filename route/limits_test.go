package route

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeatArgs(args []string, n int, each ...string) []string {
	for range n {
		args = append(args, each...)
	}
	return args
}

func TestParse_OperandLimit(t *testing.T) {
	r := testRouter(t)
	c, err := r.Parse(repeatArgs([]string{"c"}, MaxArgs, "x"))
	require.NoError(t, err)
	assert.Len(t, c.Operands(), MaxArgs)
	assert.Equal(t, uint16(MaxArgs), c.OperandsEnd())
	assert.False(t, c.Terminated())
	assert.Empty(t, c.TerminatedArgs())

	tests := map[string][]string{
		"Operands":            repeatArgs([]string{"c"}, MaxArgs+1, "x"),
		"Terminated":          repeatArgs([]string{"c", "--"}, MaxArgs+1, "x"),
		"Operands and after":  repeatArgs([]string{"c", "x", "--"}, MaxArgs, "x"),
		"Stdin operands":      repeatArgs([]string{"b"}, MaxArgs+1, "-"),
		"Path param at limit": append(repeatArgs([]string{"get"}, MaxArgs, "-"), "42"),
	}
	wild := MustBuild(New("p").Nest(New("get").Nest(New(":id"))), nil)
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			router := r
			if args[0] == "get" {
				router = wild
			}
			_, err := router.Parse(args)
			assert.ErrorIs(t, err, ErrTooManyArgs)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParse_ValueLimit(t *testing.T) {
	r := testRouter(t)
	args := repeatArgs([]string{"c"}, MaxArgs-1, "-m", "v")
	args = append(args, "--single1", "S", "--single1", "T")
	c, err := r.Parse(args)
	require.NoError(t, err, "replacing a single value doesn't add one")
	assert.Len(t, c.Values(optMulti1), MaxArgs-1)
	val, ok := c.Value(optSingle1)
	assert.True(t, ok)
	assert.Equal(t, "T", val)

	args = repeatArgs([]string{"c"}, MaxArgs, "-m", "v")
	_, err = r.Parse(append(args, "--single1", "S"))
	assert.ErrorIs(t, err, ErrTooManyArgs)
	_, err = r.Parse(append(args, "--multi1", "v"))
	assert.ErrorIs(t, err, ErrTooManyArgs)
}

func TestParseURI_Limits(t *testing.T) {
	r := uriRouter(t)
	_, err := r.ParseURI("/path/c/" + strings.Repeat("x/", MaxArgs+1))
	assert.ErrorIs(t, err, ErrTooManyArgs)
	_, err = r.ParseURI("/path/c?" + strings.Repeat("multi1=v&", MaxArgs+1))
	assert.ErrorIs(t, err, ErrTooManyArgs)

	c, err := r.ParseURI("/path/c/" + strings.Repeat("x/", MaxArgs))
	require.NoError(t, err)
	assert.Len(t, c.Operands(), MaxArgs)
}

func TestParse_LogsIgnoredValue(t *testing.T) {
	var buf bytes.Buffer
	p := Parser{
		EqSeparator: true,
		Logger:      slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	r := testRouter(t)
	c, err := p.Parse(r, []string{"c", "--key-only=x", "-k=y"})
	require.NoError(t, err)
	assert.Equal(t, uint8(2), c.Occurrences(optKeyOnly))
	assert.Empty(t, c.Values(optKeyOnly))
	out := buf.String()
	assert.Contains(t, out, "option=key-only value=x")
	assert.Contains(t, out, "option=k value=y")

	buf.Reset()
	c, err = p.ParseURI(uriRouter(t), "/path/c?key-only=z")
	require.NoError(t, err)
	assert.True(t, c.Has(optKeyOnly))
	assert.Contains(t, buf.String(), "parameter=key-only")
}
