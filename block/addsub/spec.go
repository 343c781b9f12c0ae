package addsub

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// The limits of the operand count.
const (
	MinOperands = 2
	MaxOperands = 255
)

// Sign tells whether an operand is added to or subtracted from the
// accumulator.
type Sign int

// The signs.
const (
	Plus Sign = iota
	Minus
)

// Token returns the single-character token of the sign.
func (s Sign) Token() string {
	if s == Minus {
		return "-"
	}

	return "+"
}

func (s Sign) String() string { return s.Token() }

// OverflowPolicy selects what happens when a result wraps.
type OverflowPolicy int

// The policies. The values follow the host's 1-based selector.
const (
	PolicySilent OverflowPolicy = iota + 1
	PolicyWarn
	PolicyError
)

func (p OverflowPolicy) String() string {
	switch p {
	case PolicySilent:
		return "none"
	case PolicyWarn:
		return "warning"
	case PolicyError:
		return "error"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", int(p))
	}
}

// Spec is the immutable configuration of a sum block.
type Spec struct {
	Signs              []Sign
	SaturateOnOverflow bool
	OverflowPolicy     OverflowPolicy
}

// Defaults returns a two-operand adder that wraps with a warning.
func Defaults() Spec {
	return Spec{
		Signs:          []Sign{Plus, Plus},
		OverflowPolicy: PolicyWarn,
	}
}

// NumOperands returns the number of operands of the block.
func (s Spec) NumOperands() int {
	return len(s.Signs)
}

// Validate checks an already built Spec.
func (s Spec) Validate() error {
	if err := validateSigns(s.Signs); err != nil {
		return err
	}

	switch s.OverflowPolicy {
	case PolicySilent, PolicyWarn, PolicyError:
	default:
		return invalidConfig("overflowPolicy",
			"must be none, warning or error, got %d", int(s.OverflowPolicy))
	}

	return nil
}

func validateSigns(signs []Sign) error {
	if len(signs) < MinOperands || len(signs) > MaxOperands {
		return invalidConfig("signs",
			"must have between %d and %d signs, got %d",
			MinOperands, MaxOperands, len(signs))
	}

	for i, sign := range signs {
		if sign != Plus && sign != Minus {
			return invalidConfig("signs", "sign %d is not '+' or '-'", i+1)
		}
	}

	return nil
}

// SignString returns the signs as the host spells them, e.g. "+-+".
func (s Spec) SignString() string {
	var b strings.Builder
	for _, sign := range s.Signs {
		b.WriteString(sign.Token())
	}

	return b.String()
}

// ValidateConfig turns the three raw block parameters into a Spec.
//
// rawSigns is a string of '+' and '-' characters or a []Sign. rawSaturate is
// a boolean scalar: a bool, a number (non-zero is true), a string accepted by
// strconv.ParseBool, or a one-element []bool or []float64. rawPolicy is an
// OverflowPolicy, the 1-based selector index (1 none, 2 warning, 3 error) or
// one of the names "none", "silent", "warning", "warn" and "error".
func ValidateConfig(rawSigns, rawSaturate, rawPolicy any) (Spec, error) {
	signs, err := parseSigns(rawSigns)
	if err != nil {
		return Spec{}, err
	}

	saturate, err := parseSaturate(rawSaturate)
	if err != nil {
		return Spec{}, err
	}

	policy, err := parsePolicy(rawPolicy)
	if err != nil {
		return Spec{}, err
	}

	return Spec{
		Signs:              signs,
		SaturateOnOverflow: saturate,
		OverflowPolicy:     policy,
	}, nil
}

// ParseSigns parses a string of '+' and '-' characters.
func ParseSigns(raw string) ([]Sign, error) {
	n := len(raw)
	if n < MinOperands || n > MaxOperands {
		return nil, invalidConfig("signs",
			"must be a string of %d to %d characters, got %d",
			MinOperands, MaxOperands, n)
	}

	signs := make([]Sign, n)
	for i := 0; i < n; i++ {
		switch raw[i] {
		case '+':
			signs[i] = Plus
		case '-':
			signs[i] = Minus
		default:
			return nil, invalidConfig("signs",
				"must only contain '+' and '-' characters, found %q at %d",
				raw[i], i+1)
		}
	}

	return signs, nil
}

func parseSigns(raw any) ([]Sign, error) {
	switch v := raw.(type) {
	case string:
		return ParseSigns(v)
	case []Sign:
		if err := validateSigns(v); err != nil {
			return nil, err
		}

		return append([]Sign(nil), v...), nil
	default:
		return nil, invalidConfig("signs",
			"must be a string, got %s", reflect.TypeOf(raw))
	}
}

func parseSaturate(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, invalidConfig("saturate", "%q is not a boolean", v)
		}

		return b, nil
	case []bool:
		if len(v) != 1 {
			return false, invalidConfig("saturate",
				"must be a scalar, got %d elements", len(v))
		}

		return v[0], nil
	case []float64:
		if len(v) != 1 {
			return false, invalidConfig("saturate",
				"must be a scalar, got %d elements", len(v))
		}

		return parseSaturate(v[0])
	}

	f, ok := numericScalar(raw)
	if !ok || math.IsNaN(f) {
		return false, invalidConfig("saturate",
			"must be a boolean scalar, got %v", raw)
	}

	return f != 0, nil
}

func parsePolicy(raw any) (OverflowPolicy, error) {
	switch v := raw.(type) {
	case OverflowPolicy:
		if v < PolicySilent || v > PolicyError {
			break
		}

		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "none", "silent":
			return PolicySilent, nil
		case "warning", "warn":
			return PolicyWarn, nil
		case "error":
			return PolicyError, nil
		}
	default:
		f, ok := numericScalar(raw)
		if ok && f == math.Trunc(f) && f >= 1 && f <= 3 {
			return OverflowPolicy(f), nil
		}
	}

	return 0, invalidConfig("overflowPolicy",
		"must be none, warning or error, got %v", raw)
}

func numericScalar(raw any) (float64, bool) {
	v := reflect.ValueOf(raw)

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}
