package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saylorsolutions/segroute/cli"
	"github.com/saylorsolutions/segroute/route"
	"github.com/saylorsolutions/segroute/treefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testApp(t *testing.T) (*cli.App, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	out := cli.NewPrinter()
	out.Redirect(&buf)
	app, err := newApp(testLogger(), out, cli.WithWidth(0))
	require.NoError(t, err)
	return app, &buf
}

func TestRouteCommand(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"Wildcard with values": {
			args: []string{"route", "/users/2?fields=name&fields=email", "-v"},
			want: "segment: /users/:id\nparams:  2\noption:  fields x2 [name email]\n",
		},
		"Authority is skipped": {
			args: []string{"route", "http://localhost:8080/users?limit=2"},
			want: "segment: /users\noption:  limit x1\n",
		},
		"Root": {
			args: []string{"route", "/"},
			want: "segment: /\n",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			app, buf := testApp(t)
			require.NoError(t, app.Exec(tc.args))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestRouteCommand_Invalid(t *testing.T) {
	app, _ := testApp(t)
	err := app.Exec([]string{"route", "/users/1?limit=2"})
	assert.ErrorIs(t, err, route.ErrInvalidOption)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))

	err = app.Exec([]string{"route", "--addr", ":80", "/users"})
	assert.ErrorIs(t, err, route.ErrInvalidOption)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestTreeCommand(t *testing.T) {
	app, buf := testApp(t)
	require.NoError(t, app.Exec([]string{"tree"}))
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		rows = append(rows, strings.Fields(line))
	}
	assert.Equal(t, [][]string{
		{"INDEX", "SPAN", "PARENT", "OPERANDS", "PATH"},
		{"0", "3", "0", "0", "/"},
		{"1", "0", "0", "0", "/health"},
		{"2", "1", "0", "0", "/users"},
		{"3", "0", "2", "0", "/users/:id"},
	}, rows)
}

func TestAPI(t *testing.T) {
	api, err := treefile.Load(bytes.NewReader(apiTree), treefile.TOML, nil)
	require.NoError(t, err)
	handler, err := newAPI(api, testLogger())
	require.NoError(t, err)

	tests := map[string]struct {
		target string
		status int
		body   string
	}{
		"Health": {
			target: "/health",
			status: http.StatusOK,
			body:   "ok\n",
		},
		"Limited list": {
			target: "/users?limit=2",
			status: http.StatusOK,
			body:   `[{"id":"1","name":"Ada","email":"ada@example.com"},{"id":"2","name":"Grace","email":"grace@example.com"}]`,
		},
		"Selected fields": {
			target: "/users/2?fields=name",
			status: http.StatusOK,
			body:   `{"name":"Grace"}`,
		},
		"All fields": {
			target: "/users/3",
			status: http.StatusOK,
			body:   `{"id":"3","name":"Linus","email":"linus@example.com"}`,
		},
		"Unknown user": {
			target: "/users/9",
			status: http.StatusNotFound,
		},
		"Unknown field": {
			target: "/users/1?fields=age",
			status: http.StatusBadRequest,
		},
		"Negative limit": {
			target: "/users?limit=-1",
			status: http.StatusBadRequest,
		},
		"Limit isn't a number": {
			target: "/users?limit=all",
			status: http.StatusBadRequest,
		},
		"No handler at root": {
			target: "/",
			status: http.StatusNotFound,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))
			assert.Equal(t, tc.status, rec.Code)
			if len(tc.body) == 0 {
				return
			}
			if strings.HasPrefix(tc.body, "[") || strings.HasPrefix(tc.body, "{") {
				assert.JSONEq(t, tc.body, rec.Body.String())
				return
			}
			assert.Equal(t, tc.body, rec.Body.String())
		})
	}
}
