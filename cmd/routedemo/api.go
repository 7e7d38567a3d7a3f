package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/saylorsolutions/segroute/httpx"
	"github.com/saylorsolutions/segroute/route"
)

type user struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

var users = []user{
	{ID: "1", Name: "Ada", Email: "ada@example.com"},
	{ID: "2", Name: "Grace", Email: "grace@example.com"},
	{ID: "3", Name: "Linus", Email: "linus@example.com"},
}

// newAPI binds the API handlers to the segments of router, with request logging and panic recovery.
func newAPI(router *route.Router, log *slog.Logger) (http.Handler, error) {
	var (
		optFields, _ = router.OptionIndex("fields")
		optLimit, _  = router.OptionIndex("limit")
		mux          = httpx.NewMux(router, httpx.WithLogger(log))
	)
	err := mux.Handle("/health", func(w http.ResponseWriter, _ *http.Request, _ *route.Context) error {
		_, err := io.WriteString(w, "ok\n")
		return err
	})
	if err != nil {
		return nil, err
	}
	err = mux.Handle("/users", httpx.HandleJSON(func(_ *http.Request, c *route.Context) (*[]user, error) {
		limit := c.Opt(optLimit)
		n, ok, err := limit.Int()
		switch {
		case err != nil:
			return nil, err
		case !ok || n > len(users):
			n = len(users)
		case n < 0:
			return nil, fmt.Errorf("%w: negative limit %d", httpx.ErrClientError, n)
		}
		list := users[:n]
		return &list, nil
	}))
	if err != nil {
		return nil, err
	}
	err = mux.Handle("/users/:id", httpx.HandleJSON(func(_ *http.Request, c *route.Context) (*map[string]string, error) {
		id := c.PathParams()[0]
		for _, u := range users {
			if u.ID != id {
				continue
			}
			return selectFields(u, c.Values(optFields))
		}
		return nil, fmt.Errorf("%w: no user with id '%s'", httpx.ErrNotFound, id)
	}))
	if err != nil {
		return nil, err
	}
	return httpx.Wrap(mux,
		httpx.LoggingMiddleware(httpx.SlogLogger(log, slog.LevelInfo)),
		httpx.RecoveryMiddleware(httpx.SlogPanicHandler(log)),
	), nil
}

func selectFields(u user, fields []string) (*map[string]string, error) {
	all := map[string]string{"id": u.ID, "name": u.Name, "email": u.Email}
	if len(fields) == 0 {
		return &all, nil
	}
	selected := make(map[string]string, len(fields))
	for _, field := range fields {
		val, ok := all[field]
		if !ok {
			return nil, fmt.Errorf("%w: unknown field '%s'", httpx.ErrClientError, field)
		}
		selected[field] = val
	}
	return &selected, nil
}
