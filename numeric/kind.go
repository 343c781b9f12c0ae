// Package numeric describes the numeric representations a sum block can
// carry on its ports and provides the bit-exact arithmetic used to combine
// them.
package numeric

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedKind is returned when a numeric kind is not one that a block
// can carry.
var ErrUnsupportedKind = errors.New("unsupported numeric kind")

// Category separates plain integers from fixed-point values. Kinds of
// different categories can never be mixed on one block.
type Category int

// The categories. The zero value marks an unresolved kind.
const (
	CategoryInteger Category = iota + 1
	CategoryFixedPoint
)

func (c Category) String() string {
	switch c {
	case CategoryInteger:
		return "integer"
	case CategoryFixedPoint:
		return "fixed-point"
	default:
		return "unresolved"
	}
}

// QFormat describes a signed fixed-point encoding that stores a value as an
// integer of WordBits bits scaled by 2^-FracBits.
type QFormat struct {
	WordBits int
	FracBits int
}

// The supported word length and the canonical accumulation format.
const (
	FixedWordBits = 32
	Q31FracBits   = 31
)

// Q31 is the canonical fixed-point format. All fixed-point accumulation
// happens in Q31.
var Q31 = QFormat{WordBits: FixedWordBits, FracBits: Q31FracBits}

// Q15 is a 32-bit word with 15 fractional bits.
var Q15 = QFormat{WordBits: FixedWordBits, FracBits: 15}

// IntBits returns the number of integer bits, excluding the sign bit.
func (q QFormat) IntBits() int {
	return q.WordBits - 1 - q.FracBits
}

func (q QFormat) String() string {
	return fmt.Sprintf("T_%dQ%d", q.WordBits, q.FracBits)
}

// Kind is a concrete numeric representation: either an integer of a given
// width and signedness or a fixed-point value of a given Q-format.
//
// The zero Kind is not a valid representation.
type Kind struct {
	category Category
	width    int
	signed   bool
	q        QFormat
}

// Integer returns an integer kind.
func Integer(width int, signed bool) Kind {
	return Kind{category: CategoryInteger, width: width, signed: signed}
}

// FixedPoint returns a fixed-point kind.
func FixedPoint(q QFormat) Kind {
	return Kind{
		category: CategoryFixedPoint,
		width:    q.WordBits,
		signed:   true,
		q:        q,
	}
}

// The named kinds.
var (
	Int8    = Integer(8, true)
	Int16   = Integer(16, true)
	Int32   = Integer(32, true)
	Uint8   = Integer(8, false)
	Uint16  = Integer(16, false)
	Uint32  = Integer(32, false)
	FixQ31  = FixedPoint(Q31)
	FixQ15  = FixedPoint(Q15)
	Invalid = Kind{}
)

// Category returns whether the kind is an integer or a fixed-point kind.
func (k Kind) Category() Category { return k.category }

// IsInteger returns true for integer kinds.
func (k Kind) IsInteger() bool { return k.category == CategoryInteger }

// IsFixedPoint returns true for fixed-point kinds.
func (k Kind) IsFixedPoint() bool { return k.category == CategoryFixedPoint }

// Width returns the number of bits of the encoding.
func (k Kind) Width() int { return k.width }

// Signed returns true if the encoding is two's complement. Fixed-point kinds
// are always signed.
func (k Kind) Signed() bool { return k.signed }

// QFormat returns the Q-format of a fixed-point kind. It is the zero QFormat
// for integer kinds.
func (k Kind) QFormat() QFormat { return k.q }

// CompatibleWith returns true if both kinds belong to the same category.
func (k Kind) CompatibleWith(other Kind) bool {
	return k.category != 0 && k.category == other.category
}

// Validate checks that the kind is one that a block can carry: 8, 16 or 32
// bit integers, or 32-bit fixed-point words with at most 31 fractional bits.
func (k Kind) Validate() error {
	switch k.category {
	case CategoryInteger:
		switch k.width {
		case 8, 16, 32:
			return nil
		}

		return fmt.Errorf("%w: %d-bit integer", ErrUnsupportedKind, k.width)
	case CategoryFixedPoint:
		if k.q.WordBits != FixedWordBits ||
			k.q.FracBits < 0 || k.q.FracBits > Q31FracBits {
			return fmt.Errorf("%w: fixed-point %s", ErrUnsupportedKind, k.q)
		}

		return nil
	default:
		return fmt.Errorf("%w: unresolved", ErrUnsupportedKind)
	}
}

// Name returns the name of the kind as the host spells it, for example
// "int8", "uint32" or "T_32Q15".
func (k Kind) Name() string {
	switch k.category {
	case CategoryInteger:
		if k.signed {
			return "int" + strconv.Itoa(k.width)
		}

		return "uint" + strconv.Itoa(k.width)
	case CategoryFixedPoint:
		return k.q.String()
	default:
		return "unresolved"
	}
}

func (k Kind) String() string {
	return k.Name()
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.Name()), nil
}

// UnmarshalText decodes a kind name, see ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// ParseKind parses a kind name. Integer kinds are spelled int8, int16,
// int32, uint8, uint16 and uint32. Fixed-point kinds are spelled T_32Qn.
func ParseKind(name string) (Kind, error) {
	name = strings.TrimSpace(name)

	switch {
	case strings.HasPrefix(name, "uint"):
		return parseInteger(name, name[len("uint"):], false)
	case strings.HasPrefix(name, "int"):
		return parseInteger(name, name[len("int"):], true)
	case strings.HasPrefix(name, "T_"):
		return parseFixedPoint(name)
	}

	return Invalid, fmt.Errorf("%w: %q", ErrUnsupportedKind, name)
}

func parseInteger(name, digits string, signed bool) (Kind, error) {
	width, err := strconv.Atoi(digits)
	if err != nil {
		return Invalid, fmt.Errorf("%w: %q", ErrUnsupportedKind, name)
	}

	k := Integer(width, signed)
	if err := k.Validate(); err != nil {
		return Invalid, err
	}

	return k, nil
}

func parseFixedPoint(name string) (Kind, error) {
	word, frac, found := strings.Cut(name[len("T_"):], "Q")
	if !found {
		return Invalid, fmt.Errorf("%w: %q", ErrUnsupportedKind, name)
	}

	wordBits, err := strconv.Atoi(word)
	if err != nil {
		return Invalid, fmt.Errorf("%w: %q", ErrUnsupportedKind, name)
	}

	fracBits, err := strconv.Atoi(frac)
	if err != nil {
		return Invalid, fmt.Errorf("%w: %q", ErrUnsupportedKind, name)
	}

	k := FixedPoint(QFormat{WordBits: wordBits, FracBits: fracBits})
	if err := k.Validate(); err != nil {
		return Invalid, err
	}

	return k, nil
}

// Range returns the smallest and the largest raw encoding of the kind. Kinds
// that fail Validate have the empty range 0, 0.
func (k Kind) Range() (lo, hi int64) {
	if k.Validate() != nil {
		return 0, 0
	}

	if k.signed {
		return -(int64(1) << (k.width - 1)), int64(1)<<(k.width-1) - 1
	}

	return 0, int64(1)<<k.width - 1
}

// Contains returns true if v is a valid raw encoding of the kind.
func (k Kind) Contains(v int64) bool {
	lo, hi := k.Range()
	return v >= lo && v <= hi
}
