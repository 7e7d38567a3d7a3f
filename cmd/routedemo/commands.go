package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/saylorsolutions/segroute/cli"
	"github.com/saylorsolutions/segroute/httpx"
	"github.com/saylorsolutions/segroute/route"
	"github.com/saylorsolutions/segroute/signalx"
)

const readHeaderTimeout = 10 * time.Second

type demo struct {
	api *route.Router
	log *slog.Logger
	out *cli.Printer
}

func (d *demo) actions() map[string]route.Action {
	return map[string]route.Action{
		"serve": d.serve,
		"route": d.route,
		"tree":  d.tree,
	}
}

func (d *demo) serve(c *route.Context) error {
	addr := ":8080"
	if opt, ok := c.Router.OptionIndex("addr"); ok {
		if val, ok := c.Value(opt); ok {
			addr = val
		}
	}
	handler, err := newAPI(d.api, d.log)
	if err != nil {
		return err
	}
	ctx, stop := signalx.ShutdownContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	d.log.Info("Serving API", "addr", addr)
	if err := httpx.ListenAndServe(ctx, srv); err != nil {
		return err
	}
	d.log.Info("Server stopped")
	return nil
}

// route reports the segment, path parameters, and options the API would select for a URI.
func (d *demo) route(c *route.Context) error {
	var uri string
	if err := cli.MapOperands(c, 1, &uri); err != nil {
		return err
	}
	parser := route.Parser{Logger: d.log}
	routed, err := parser.ParseURI(d.api, uri)
	if err != nil {
		return fmt.Errorf("failed to route '%s': %w", uri, err)
	}
	verbose := false
	if opt, ok := c.Router.OptionIndex("verbose"); ok {
		verbose = c.Has(opt)
	}
	d.out.Printf("segment: %s\n", apiPath(d.api, routed.Selected))
	if params := routed.PathParams(); len(params) > 0 {
		d.out.Printf("params:  %s\n", strings.Join(params, ", "))
	}
	if operands := routed.Operands(); len(operands) > 0 {
		d.out.Printf("extra:   %s\n", strings.Join(operands, ", "))
	}
	for opt := range d.api.Options {
		count := routed.Occurrences(uint16(opt))
		if count == 0 {
			continue
		}
		name := d.api.OptionName(uint16(opt))
		if verbose {
			d.out.Printf("option:  %s x%d %v\n", name, count, routed.Values(uint16(opt)))
			continue
		}
		d.out.Printf("option:  %s x%d\n", name, count)
	}
	return nil
}

// tree prints the flattened API tree in pre-order.
func (d *demo) tree(*route.Context) error {
	d.out.Printf("%5s %5s %6s %8s  %s\n", "INDEX", "SPAN", "PARENT", "OPERANDS", "PATH")
	for i, node := range d.api.Tree {
		index := uint16(i)
		operands := fmt.Sprint(d.api.Segments[index].Operands)
		if d.api.Segments[index].Operands == route.Unbounded {
			operands = "*"
		}
		d.out.Printf("%5d %5d %6d %8s  %s\n", index, node.ChildSpan, node.Parent, operands, apiPath(d.api, index))
	}
	return nil
}

func apiPath(r *route.Router, index uint16) string {
	path := strings.Join(r.Path(index), "/")
	if len(path) == 0 {
		return "/"
	}
	return path
}
