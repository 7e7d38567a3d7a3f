/*
Package segroute routes command lines and URIs through the same flattened tree of segments.

The [route] package holds the tree model, its builder, and both parsers. Everything else builds on it:
  - [cli] runs a router's actions as a command line application, with generated usage.
  - [httpx] serves HTTP requests routed by their URI.
  - [treefile] loads a tree from a YAML or TOML description.

The routedemo command in cmd/routedemo wires all of these together.

[route]: https://pkg.go.dev/github.com/saylorsolutions/segroute/route
[cli]: https://pkg.go.dev/github.com/saylorsolutions/segroute/cli
[httpx]: https://pkg.go.dev/github.com/saylorsolutions/segroute/httpx
[treefile]: https://pkg.go.dev/github.com/saylorsolutions/segroute/treefile
*/
package segroute
