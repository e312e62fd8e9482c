package mathset

import "github.com/pkg/errors"

var (
	// ErrNullElement is returned when a null element is added to a container.
	ErrNullElement = errors.New("null element")

	// ErrNullOperand is returned by the pure algebra operators when either
	// operand is nil. Membership-style queries never return it; they degrade
	// to false instead.
	ErrNullOperand = errors.New("null set operand")

	// ErrMalformedLiteral is returned by Parse when the input is not wrapped
	// in matching braces. It is the only parse failure mode.
	ErrMalformedLiteral = errors.New("literal is not wrapped in matching braces")
)
