/*
Package treefile describes a segment tree and its options in a YAML or TOML document, so a [route.Router] can be
configured without code.

A YAML document looks like this:

	options:
	  - name: verbose
	    short: v
	  - name: tag
	    kind: multiple
	  - name: help
	    short: h
	    help: true
	root:
	  name: tool
	  segments:
	    - name: build
	      summary: Builds an image
	      operands: 1
	      action: build
	      groups:
	        - options: [verbose, tag]

Operands may be "*" or -1 for an unbounded count. Option kinds are "key-only" (the default), "single" and "multiple".
Group rules are "any-of" (the default), "one-of" and "required".
Action names are resolved against the map given to [Document.Build].
*/
package treefile
