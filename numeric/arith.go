package numeric

import (
	"fmt"
)

// Op is the operation applied to an operand when it is folded into the
// accumulator.
type Op int

// The operations.
const (
	OpAdd Op = iota
	OpSubtract
)

// Verb returns the progressive form used in diagnostics: "adding" or
// "subtracting".
func (o Op) Verb() string {
	if o == OpSubtract {
		return "subtracting"
	}

	return "adding"
}

func (o Op) String() string {
	if o == OpSubtract {
		return "-"
	}

	return "+"
}

// Status tells whether a saturating operation had to clamp its result.
type Status int

// The statuses.
const (
	StatusNormal Status = iota
	StatusOverflow
	StatusUnderflow
)

func (s Status) String() string {
	switch s {
	case StatusOverflow:
		return "overflow"
	case StatusUnderflow:
		return "underflow"
	default:
		return "normal"
	}
}

// Domain is the numeric domain the accumulator lives in. It is derived from
// the output kind and decides the range and the wrap-around rule.
type Domain int

// The domains.
const (
	DomainSigned Domain = iota + 1
	DomainUnsigned
	DomainQ31
)

func (d Domain) String() string {
	switch d {
	case DomainSigned:
		return "signed"
	case DomainUnsigned:
		return "unsigned"
	case DomainQ31:
		return "Q31"
	default:
		return fmt.Sprintf("Domain(%d)", int(d))
	}
}

// Accumulator holds the arithmetic rules of one output kind. Operands of any
// signedness are combined through the same path: the exact result is
// computed in 64 bits and then clamped or wrapped into the output range.
type Accumulator struct {
	Domain Domain
	Width  int
	Min    int64
	Max    int64
}

// NewAccumulator returns the accumulator for the given output kind. Integer
// outputs use their natural range. Fixed-point outputs accumulate in Q31.
func NewAccumulator(output Kind) (Accumulator, error) {
	if err := output.Validate(); err != nil {
		return Accumulator{}, err
	}

	if output.IsFixedPoint() {
		lo, hi := FixQ31.Range()
		return Accumulator{
			Domain: DomainQ31,
			Width:  FixedWordBits,
			Min:    lo,
			Max:    hi,
		}, nil
	}

	d := DomainUnsigned
	if output.Signed() {
		d = DomainSigned
	}

	lo, hi := output.Range()

	return Accumulator{Domain: d, Width: output.Width(), Min: lo, Max: hi}, nil
}

// Operand converts a raw operand encoding of the given kind into the scale
// the accumulator works in. Fixed-point operands with fewer than 31
// fractional bits are shifted up to Q31. The shift is exact in 64 bits.
func (a Accumulator) Operand(v int64, k Kind) int64 {
	if a.Domain == DomainQ31 && k.IsFixedPoint() &&
		k.QFormat().FracBits < Q31FracBits {
		return v << (Q31FracBits - k.QFormat().FracBits)
	}

	return v
}

// Exact returns the mathematical result of applying op.
func (a Accumulator) Exact(acc, operand int64, op Op) int64 {
	if op == OpSubtract {
		return acc - operand
	}

	return acc + operand
}

// Saturate clamps an exact result into the accumulator range.
func (a Accumulator) Saturate(exact int64) (int64, Status) {
	switch {
	case exact > a.Max:
		return a.Max, StatusOverflow
	case exact < a.Min:
		return a.Min, StatusUnderflow
	default:
		return exact, StatusNormal
	}
}

// Wrap truncates an exact result to the accumulator width, discarding the
// bits that do not fit. Signed and Q31 results are sign-extended back.
func (a Accumulator) Wrap(exact int64) int64 {
	mask := uint64(1)<<a.Width - 1
	bits := uint64(exact) & mask

	switch a.Domain {
	case DomainSigned, DomainQ31:
		signBit := uint64(1) << (a.Width - 1)
		if bits&signBit != 0 {
			return int64(bits) - int64(1)<<a.Width
		}

		return int64(bits)
	default:
		return int64(bits)
	}
}

// Accumulate applies op to the accumulator and returns the saturated
// candidate, the wrapped result and the status of the saturation.
func (a Accumulator) Accumulate(
	acc, operand int64,
	op Op,
) (saturated, wrapped int64, status Status) {
	exact := a.Exact(acc, operand, op)
	saturated, status = a.Saturate(exact)
	wrapped = a.Wrap(exact)

	return saturated, wrapped, status
}
