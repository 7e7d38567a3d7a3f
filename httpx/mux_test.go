package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saylorsolutions/segroute/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	optFields uint16 = iota
	optLimit
)

func testMux(t *testing.T) *Mux {
	t.Helper()
	options := route.MustOptions(
		route.Option("fields").Takes(route.Multiple),
		route.Option("limit").Takes(route.Single),
	)
	router := route.MustBuild(route.New("").Nest(
		route.New("health"),
		route.New("users").Options(route.AnyOf("limit")).Nest(
			route.New(":id").Options(route.AnyOf("fields")),
		),
	), options)
	m := NewMux(router)
	require.NoError(t, m.Handle("/health", func(w http.ResponseWriter, _ *http.Request, _ *route.Context) error {
		_, err := fmt.Fprint(w, "ok")
		return err
	}))
	require.NoError(t, m.Handle("users", func(w http.ResponseWriter, _ *http.Request, c *route.Context) error {
		limit := c.Opt(optLimit)
		n, ok, err := limit.Int()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrClientError, err)
		}
		if !ok {
			n = 10
		}
		_, err = fmt.Fprintf(w, "limit %d", n)
		return err
	}))
	require.NoError(t, m.Handle("/users/:id", func(w http.ResponseWriter, r *http.Request, c *route.Context) error {
		stored, ok := FromRequest(r)
		if !ok || stored != c {
			return errors.New("context not stored on request")
		}
		if c.PathParams()[0] == "0" {
			return ErrNotFound
		}
		_, err := fmt.Fprintf(w, "%s %v", c.PathParams()[0], c.Values(optFields))
		return err
	}))
	return m
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestMux_ServeHTTP(t *testing.T) {
	m := testMux(t)
	tests := map[string]struct {
		target string
		status int
		body   string
	}{
		"Literal segment": {
			target: "/health",
			status: http.StatusOK,
			body:   "ok",
		},
		"Wildcard with query": {
			target: "/users/42?fields=name&fields=email",
			status: http.StatusOK,
			body:   "42 [name email]",
		},
		"Escaped path param": {
			target: "/users/a%20b",
			status: http.StatusOK,
			body:   "a b []",
		},
		"Default option value": {
			target: "/users",
			status: http.StatusOK,
			body:   "limit 10",
		},
		"Option value": {
			target: "/users?limit=3",
			status: http.StatusOK,
			body:   "limit 3",
		},
		"Bad option value": {
			target: "/users?limit=many",
			status: http.StatusBadRequest,
		},
		"Option outside groups": {
			target: "/users/42?limit=3",
			status: http.StatusBadRequest,
		},
		"Missing value": {
			target: "/users/42?fields",
			status: http.StatusBadRequest,
		},
		"Unbound root": {
			target: "/",
			status: http.StatusNotFound,
		},
		"Unknown path stops at root": {
			target: "/nothing/here",
			status: http.StatusNotFound,
		},
		"Handler error": {
			target: "/users/0",
			status: http.StatusNotFound,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rec := serve(m, tc.target)
			assert.Equal(t, tc.status, rec.Code)
			if len(tc.body) > 0 {
				assert.Equal(t, tc.body, rec.Body.String())
			}
		})
	}
}

func TestMux_Handle(t *testing.T) {
	m := testMux(t)
	err := m.Handle("/users/42/posts", func(http.ResponseWriter, *http.Request, *route.Context) error { return nil })
	assert.ErrorIs(t, err, route.ErrConfig)
	err = m.Handle("/health", nil)
	assert.ErrorIs(t, err, route.ErrConfig)
	assert.Panics(t, func() {
		m.MustHandle("/missing", func(http.ResponseWriter, *http.Request, *route.Context) error { return nil })
	})
	assert.Panics(t, func() {
		NewMux(nil)
	})
}

func TestMux_WithErrPolicy(t *testing.T) {
	var got error
	m := testMux(t)
	WithErrPolicy(func(w http.ResponseWriter, _ *http.Request, err error) {
		got = err
		w.WriteHeader(http.StatusTeapot)
	})(m)
	rec := serve(m, "/users/42?fields")
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.ErrorIs(t, got, route.ErrMissingValue)
	assert.ErrorIs(t, got, ErrClientError)
}

func TestStatusFor(t *testing.T) {
	tests := map[error]int{
		ErrNotFound:                        http.StatusNotFound,
		ErrClientError:                     http.StatusBadRequest,
		route.ErrMissingRequired:           http.StatusBadRequest,
		route.ErrInvalidData:               http.StatusBadRequest,
		ErrAuthentication:                  http.StatusUnauthorized,
		ErrAuthorization:                   http.StatusForbidden,
		ErrServerError:                     http.StatusInternalServerError,
		errors.New("something went wrong"): http.StatusInternalServerError,
	}
	for err, status := range tests {
		assert.Equal(t, status, StatusFor(err), err.Error())
	}
}

func TestDefaultErrPolicy(t *testing.T) {
	rec := httptest.NewRecorder()
	DefaultErrPolicy(rec, nil, fmt.Errorf("%w: bad field", ErrClientError))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "client error: bad field", strings.TrimSpace(rec.Body.String()))

	rec = httptest.NewRecorder()
	DefaultErrPolicy(rec, nil, errors.New("database password is hunter2"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), strings.TrimSpace(rec.Body.String()))
}
