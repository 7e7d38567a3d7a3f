package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uriRouter(t *testing.T) *Router {
	t.Helper()
	r, err := Build(New("").Nest(testTree("path")), testOptions(t))
	require.NoError(t, err)
	return r
}

func TestParseURI_MatchesCLI(t *testing.T) {
	r := uriRouter(t)
	tests := map[string][]string{
		"/path/a/a2":                     {"path", "a", "a2"},
		"https://example.com/path/b/b1":  {"path", "b", "b1"},
		"http://[::1]:8080/path/c?x#top": {"path", "c"},
		"//path//a":                      {"path", "a"},
		"":                               nil,
	}
	for uri, args := range tests {
		t.Run(uri, func(t *testing.T) {
			fromURI, err := r.ParseURI(uri)
			require.NoError(t, err)
			fromArgs, err := r.Parse(args)
			require.NoError(t, err)
			assert.Equal(t, fromArgs.Selected, fromURI.Selected)
		})
	}
}

func TestParseURI_Query(t *testing.T) {
	r := uriRouter(t)
	c, err := r.ParseURI("https://example.com:443/path/b/b1?single1=x&multi1=y&nope=1&multi1=z#frag")
	require.NoError(t, err)
	assert.Equal(t, "b1", c.SegmentName())
	assert.Equal(t, []string{"x"}, c.Values(optSingle1))
	assert.Equal(t, uint8(2), c.Occurrences(optMulti1))
	assert.Equal(t, []string{"y", "z"}, c.Values(optMulti1))

	c, err = r.ParseURI("/path/c?single1=a%20b+c&&key-only")
	require.NoError(t, err)
	assert.Equal(t, []string{"a b c"}, c.Values(optSingle1))
	assert.True(t, c.Has(optKeyOnly))

	_, err = r.ParseURI("/path/c?single1")
	assert.ErrorIs(t, err, ErrMissingValue)
	_, err = r.ParseURI("/path/c?single1=%zz")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseURI_Operands(t *testing.T) {
	r := uriRouter(t)
	c, err := r.ParseURI("/path/a/a2/x/y/z")
	require.NoError(t, err)
	assert.Equal(t, "a2", c.SegmentName())
	assert.Equal(t, []string{"x", "y"}, c.Operands())
	assert.False(t, c.Terminated())

	c, err = r.ParseURI("/path/c/one/two%2Fthree")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two/three"}, c.Operands())

	_, err = r.ParseURI("/path/c/%zz")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseURI_MismatchStopsPath(t *testing.T) {
	r := uriRouter(t)
	c, err := r.ParseURI("/path/zzz/b/b1?key-only")
	require.NoError(t, err)
	assert.Equal(t, "path", c.SegmentName())
	assert.True(t, c.Has(optKeyOnly), "the query is still parsed")
}

func TestParseURI_Groups(t *testing.T) {
	r := uriRouter(t)
	_, err := r.ParseURI("/path/b/b2")
	assert.ErrorIs(t, err, ErrMissingRequired)
	_, err = r.ParseURI("/path/b/b2?key-only")
	assert.NoError(t, err)
	_, err = r.ParseURI("/path/b/b2?key-only&single1=x")
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestParseURI_Wildcards(t *testing.T) {
	r, err := Build(New("").Nest(
		New("users").Nest(
			New("me"),
			New(":id").Nest(New("posts")),
		),
	), nil)
	require.NoError(t, err)

	c, err := r.ParseURI("/users/42/posts")
	require.NoError(t, err)
	assert.Equal(t, "posts", c.SegmentName())
	assert.Equal(t, []string{"42"}, c.PathParams())
	assert.Empty(t, c.Operands())

	c, err = r.ParseURI("/users/me")
	require.NoError(t, err)
	assert.Equal(t, "me", c.SegmentName())
	assert.Empty(t, c.PathParams())

	c, err = r.ParseURI("/users/a%2Fb/posts")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/b"}, c.PathParams())

	fromArgs, err := r.Parse([]string{"users", "42", "posts"})
	require.NoError(t, err)
	assert.Equal(t, c.Selected, fromArgs.Selected)
	assert.Equal(t, []string{"42"}, fromArgs.PathParams())
}

func TestParse_WildcardExtension(t *testing.T) {
	r, err := Build(New("program").Nest(
		New("built-in").Nest(New("fun")),
		New(":extension").Nest(New("fun")),
	), nil)
	require.NoError(t, err)

	c, err := r.Parse([]string{"built-in", "fun"})
	require.NoError(t, err)
	assert.Equal(t, []string{"program", "built-in", "fun"}, r.Path(c.Selected))
	assert.Empty(t, c.PathParams())

	c, err = r.Parse([]string{"plugin", "fun"})
	require.NoError(t, err)
	assert.Equal(t, []string{"program", ":extension", "fun"}, r.Path(c.Selected))
	assert.Equal(t, []string{"plugin"}, c.PathParams())
}

func TestParseURI_EmptyRouter(t *testing.T) {
	_, err := DefaultParser.ParseURI(&Router{}, "/x")
	assert.ErrorIs(t, err, ErrConfig)
}
