package addsub

import (
	"errors"
	"fmt"

	"github.com/sarchlab/sumblock/numeric"
	"github.com/sarchlab/sumblock/sim"
)

var (
	// ErrPortIndex is returned when a type is proposed for a port that the
	// block does not have.
	ErrPortIndex = errors.New("port index out of range")

	// ErrNotFinalized is returned when types are read before every port is
	// resolved.
	ErrNotFinalized = errors.New("port types are not resolved")

	// ErrOperandCount is returned when a step receives a number of values
	// that differs from the number of operands.
	ErrOperandCount = errors.New("wrong number of operands")

	// ErrOperandValue is returned when an operand value cannot be encoded in
	// the operand's kind.
	ErrOperandValue = errors.New("operand value out of range")
)

// InvalidConfigError reports a malformed block parameter.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidConfig(field, format string, args ...any) *InvalidConfigError {
	return &InvalidConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// OutputPosition is the position used to refer to the output port.
const OutputPosition = 0

// PortRef names a port by its 1-based position and the kind it carries.
type PortRef struct {
	Position int
	Kind     numeric.Kind
}

func (p PortRef) String() string {
	if p.Position == OutputPosition {
		return "outport"
	}

	return fmt.Sprintf("inport %d", p.Position)
}

// IncompatibleTypesError reports an attempt to mix integer and fixed-point
// kinds on one block.
type IncompatibleTypesError struct {
	Existing PortRef
	Proposed PortRef
}

func (e *IncompatibleTypesError) Error() string {
	return fmt.Sprintf(
		"inport data types must belong to fixed-point type or integer "+
			"type together: data type '%s' of %s and data type '%s' of %s "+
			"do not belong to integer or fixed-point type together",
		e.Existing.Kind, e.Existing, e.Proposed.Kind, e.Proposed)
}

// OverflowError reports a wrap that the block is configured to treat as an
// error. The step that raised it produces no output.
type OverflowError struct {
	Operand int
	Op      numeric.Op
	Status  numeric.Status
	Time    sim.VTimeInSec
}

// Operation returns "adding" or "subtracting".
func (e *OverflowError) Operation() string {
	return e.Op.Verb()
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s detected when %s inport %d at time %f",
		e.Status, e.Operation(), e.Operand, float64(e.Time))
}

// Message returns the message the host shows to the user.
func (e *OverflowError) Message() string {
	return fmt.Sprintf("Error: %s.", e.Error())
}
