package cli

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/segroute/route"
)

var (
	ErrArgMap = errors.New("failed to map operand(s)")
)

// MapOperands maps the selected segment's operands to targets, and requires at least minArgs of them.
// The error wraps [ErrArgMap] and is a [UsageError] when there aren't enough operands, so usage is shown.
// Targets elements should not be nil.
func MapOperands(c *route.Context, minArgs int, targets ...*string) error {
	operands := c.Operands()
	if len(targets) < minArgs {
		return fmt.Errorf("%w: not enough targets (%d) to satisfy minArgs (%d)", ErrArgMap, len(targets), minArgs)
	}
	if len(operands) < minArgs {
		return NewUsageError("%w: not enough operands (%d) to satisfy minArgs (%d)", ErrArgMap, len(operands), minArgs)
	}
	for i := 0; i < len(operands) && i < len(targets); i++ {
		if targets[i] == nil {
			return fmt.Errorf("%w: target %d is nil", ErrArgMap, i)
		}
		*targets[i] = operands[i]
	}
	return nil
}
