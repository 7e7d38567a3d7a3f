package httpx

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/saylorsolutions/segroute/route"
)

// HandlerFunc handles a request routed to a segment, with the [route.Context] produced for it.
// A returned error is passed to the [Mux]'s error policy.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, c *route.Context) error

type contextKey struct{}

// FromRequest returns the [route.Context] stored on a request routed by a [Mux].
func FromRequest(r *http.Request) (*route.Context, bool) {
	c, ok := r.Context().Value(contextKey{}).(*route.Context)
	return c, ok
}

// Mux routes requests by parsing their URI with a [route.Router].
// Path components select segments, and query parameters are options.
type Mux struct {
	router   *route.Router
	parser   route.Parser
	handlers []HandlerFunc
	policy   ErrPolicyFunc
}

// MuxOption configures a [Mux] created with [NewMux].
type MuxOption func(m *Mux)

// WithParser replaces the [route.DefaultParser] used to parse request URIs.
func WithParser(p route.Parser) MuxOption {
	return func(m *Mux) {
		m.parser = p
	}
}

// WithErrPolicy replaces [DefaultErrPolicy].
func WithErrPolicy(policy ErrPolicyFunc) MuxOption {
	return func(m *Mux) {
		m.policy = policy
	}
}

// WithLogger sets the logger that receives debug messages from parsing.
func WithLogger(log *slog.Logger) MuxOption {
	return func(m *Mux) {
		m.parser.Logger = log
	}
}

// NewMux creates a [Mux] with no handlers bound.
func NewMux(router *route.Router, opts ...MuxOption) *Mux {
	if router == nil {
		panic("nil router")
	}
	m := &Mux{
		router:   router,
		parser:   route.DefaultParser,
		handlers: make([]HandlerFunc, len(router.Tree)),
		policy:   DefaultErrPolicy,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle binds a handler to the segment at path, which is a '/' separated list of segment names below the root.
// A path component matches a wildcard segment by using the wildcard's name, like "/users/:id".
// An error wrapping [route.ErrConfig] is returned if the path doesn't name a segment.
func (m *Mux) Handle(path string, handler HandlerFunc) error {
	if handler == nil {
		return fmt.Errorf("%w: nil handler for '%s'", route.ErrConfig, path)
	}
	var elems []string
	for _, elem := range strings.Split(path, "/") {
		if len(elem) > 0 {
			elems = append(elems, elem)
		}
	}
	index, ok := m.router.Lookup(elems...)
	if !ok {
		return fmt.Errorf("%w: no segment at '%s'", route.ErrConfig, path)
	}
	m.handlers[index] = handler
	return nil
}

// MustHandle is like [Mux.Handle], but panics on error.
func (m *Mux) MustHandle(path string, handler HandlerFunc) *Mux {
	if err := m.Handle(path, handler); err != nil {
		panic(err)
	}
	return m
}

func (m *Mux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := m.parser.ParseURI(m.router, r.URL.RequestURI())
	if err != nil {
		m.policy(w, r, fmt.Errorf("%w: %w", ErrClientError, err))
		return
	}
	handler := m.handlers[c.Selected]
	if handler == nil {
		m.policy(w, r, fmt.Errorf("%w: %s", ErrNotFound, r.URL.Path))
		return
	}
	r = r.WithContext(context.WithValue(r.Context(), contextKey{}, c))
	if err := handler(w, r, c); err != nil {
		m.policy(w, r, err)
	}
}
