package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/saylorsolutions/segroute/cli"
	"github.com/saylorsolutions/segroute/treefile"
)

var (
	//go:embed cli.yaml
	cliTree []byte
	//go:embed api.toml
	apiTree []byte
)

func main() {
	cfg := cli.LoadConfig("ROUTEDEMO")
	log, closer, err := cli.NewLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitError)
	}
	out := cli.NewPrinter()
	out.Redirect(os.Stdout)
	app, err := newApp(log, out, cli.WithConfig(cfg))
	if err == nil {
		err = app.Run()
	}
	if err != nil && !errors.Is(err, &cli.UsageError{}) {
		out.Error(err)
	}
	_ = closer.Close()
	os.Exit(cli.ExitCode(err))
}

// newApp loads both embedded trees and binds the command actions.
func newApp(log *slog.Logger, out *cli.Printer, opts ...cli.AppOption) (*cli.App, error) {
	api, err := treefile.Load(bytes.NewReader(apiTree), treefile.TOML, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load API tree: %w", err)
	}
	d := &demo{api: api, log: log, out: out}
	router, err := treefile.Load(bytes.NewReader(cliTree), treefile.YAML, d.actions())
	if err != nil {
		return nil, fmt.Errorf("failed to load command tree: %w", err)
	}
	opts = append([]cli.AppOption{cli.WithLogger(log), cli.WithPrinter(out)}, opts...)
	return cli.New(router, opts...), nil
}
