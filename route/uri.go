package route

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseURI finds the selected segment, its operands, and its options in a URI, using [DefaultParser].
func (r *Router) ParseURI(uri string) (*Context, error) {
	return DefaultParser.ParseURI(r, uri)
}

// ParseURI finds the selected segment, its operands, and its options in a URI.
//
// The scheme and authority are skipped, and path components are matched against the tree below the root the same
// way as arguments in [Parser.Parse]. Matching stops at the first component that doesn't name a child segment.
// Query parameters are options, with "name=value" giving a value. The fragment is ignored.
// Path components and query parameters are percent-decoded before matching.
func (p Parser) ParseURI(r *Router, uri string) (*Context, error) {
	if r == nil || len(r.Tree) == 0 {
		return nil, fmt.Errorf("%w: empty router", ErrConfig)
	}
	rest := uri[ScanAuthority(uri).End():]
	if hash := strings.IndexByte(rest, '#'); hash >= 0 {
		rest = rest[:hash]
	}
	path, query, hasQuery := strings.Cut(rest, "?")

	var (
		c                = newContext(r, strings.Count(query, "&")+1)
		treeIndex uint16 = 1
		consumed  int
	)
	for _, comp := range strings.Split(path, "/") {
		if comp == "" {
			continue
		}
		elem, err := url.PathUnescape(comp)
		if err != nil {
			return nil, fmt.Errorf("%w: path component %q: %v", ErrInvalidInput, comp, err)
		}
		if want := r.Segments[c.Selected].Operands; want == Unbounded || consumed < int(want) {
			if err := c.addOperands(elem); err != nil {
				return nil, err
			}
			consumed++
			continue
		}
		wildcard, ok := r.descend(&c.Selected, &treeIndex, elem)
		if !ok {
			p.debug("Unrecognized path component, ignoring the rest of the path", "component", elem, "selected", r.Name(c.Selected))
			break
		}
		consumed = 0
		if wildcard {
			if err := c.addPathParam(elem); err != nil {
				return nil, err
			}
		}
	}
	c.operandsEnd = uint16(len(c.operands))

	if hasQuery {
		if err := p.parseQuery(c, query); err != nil {
			return nil, err
		}
	}
	if err := c.validateGroups(); err != nil {
		return nil, err
	}
	return c, nil
}

func (p Parser) parseQuery(c *Context, query string) error {
	for _, param := range strings.Split(query, "&") {
		if param == "" {
			continue
		}
		rawKey, rawVal, hasValue := strings.Cut(param, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return fmt.Errorf("%w: query parameter %q: %v", ErrInvalidInput, rawKey, err)
		}
		opt, ok := c.Router.lookupOption(key)
		if !ok {
			p.debug("Ignoring unrecognized query parameter", "parameter", key)
			continue
		}
		c.found(opt)
		if c.Router.Options[opt].Kind == KeyOnly {
			if hasValue {
				p.debug("Ignoring value of a query parameter that doesn't take one", "parameter", key)
			}
			continue
		}
		if !hasValue {
			return fmt.Errorf("%w: query parameter %s", ErrMissingValue, key)
		}
		val, err := url.QueryUnescape(rawVal)
		if err != nil {
			return fmt.Errorf("%w: query parameter %q: %v", ErrInvalidInput, key, err)
		}
		if err := c.record(opt, val); err != nil {
			return err
		}
	}
	return nil
}
