package assert

import (
	"fmt"
	"strings"
)

// Collector accumulates errors and joins their messages with a configurable separator.
// A Collector is itself an error, so every collected error can be matched with [errors.Is] or [errors.As].
//
// A Collector is not safe for concurrent use.
type Collector struct {
	errs    []error
	joinStr string
}

// CollectErrors creates a new Collector, optionally with a join string that differs from the default of "\n".
func CollectErrors(joinString ...string) *Collector {
	joinStr := "\n"
	if len(joinString) > 0 {
		joinStr = joinString[0]
	}
	return &Collector{
		joinStr: joinStr,
	}
}

// Add adds a new, potentially nil error to the Collector.
// Nil errors will not be included.
func (c *Collector) Add(err error) *Collector {
	if err != nil {
		c.errs = append(c.errs, err)
	}
	return c
}

// AddString allows creating an error string using [fmt.Errorf], which means that the "%w" format string may be used.
func (c *Collector) AddString(msg string, args ...any) *Collector {
	return c.Add(fmt.Errorf(msg, args...))
}

// Len is the number of errors collected.
func (c *Collector) Len() int {
	return len(c.errs)
}

// Result returns nil if nothing was collected, and the Collector otherwise.
// An empty Collector is still a non-nil error, so return this instead.
func (c *Collector) Result() error {
	if len(c.errs) > 0 {
		return c
	}
	return nil
}

// Error satisfies the error interface.
func (c *Collector) Error() string {
	var buf strings.Builder
	for i, err := range c.errs {
		if i > 0 {
			buf.WriteString(c.joinStr)
		}
		buf.WriteString(err.Error())
	}
	return buf.String()
}

// Unwrap allows using [errors.Is] and [errors.As] to identify any error in the Collector.
func (c *Collector) Unwrap() []error {
	return c.errs
}
