package addsub

import (
	"fmt"

	"github.com/sarchlab/sumblock/numeric"
)

// The kinds given to ports that are still unresolved when the negotiation
// ends.
var (
	IntegerDefaultKind    = numeric.Uint32
	FixedPointDefaultKind = numeric.FixQ31
	DefaultKind           = numeric.Uint32
)

// PortType is the negotiation state of one port. It is either unresolved or
// resolved to a concrete kind, and never goes back to unresolved.
type PortType struct {
	kind numeric.Kind
}

// Unresolved returns the state of a port that has no kind yet.
func Unresolved() PortType {
	return PortType{}
}

// Resolved returns the state of a port that carries k.
func Resolved(k numeric.Kind) PortType {
	return PortType{kind: k}
}

// IsResolved returns true if the port has a kind.
func (p PortType) IsResolved() bool {
	return p.kind.Category() != 0
}

// Kind returns the kind of a resolved port and numeric.Invalid otherwise.
func (p PortType) Kind() numeric.Kind {
	return p.kind
}

func (p PortType) String() string {
	if !p.IsResolved() {
		return "unresolved"
	}

	return p.kind.Name()
}

// Types are the resolved kinds of all the ports of a block.
type Types struct {
	Operands []numeric.Kind
	Output   numeric.Kind
}

// Validate checks that every port is resolved to a supported kind and that
// all the kinds belong to the same category.
func (t Types) Validate() error {
	if err := t.Output.Validate(); err != nil {
		return fmt.Errorf("outport: %w", err)
	}

	for i, k := range t.Operands {
		if err := k.Validate(); err != nil {
			return fmt.Errorf("inport %d: %w", i+1, err)
		}

		if !k.CompatibleWith(t.Output) {
			return &IncompatibleTypesError{
				Existing: PortRef{Position: i + 1, Kind: k},
				Proposed: PortRef{Position: OutputPosition, Kind: t.Output},
			}
		}
	}

	return nil
}

// A TypeResolver negotiates the kinds of the ports of one block. The host
// proposes kinds one port at a time, in any order, and calls
// FinalizeDefaults once all the explicit proposals are made.
//
// The output follows inport 1 until an explicit output kind is proposed.
type TypeResolver struct {
	operands       []PortType
	output         PortType
	outputExplicit bool
}

// NewTypeResolver creates a resolver with every port unresolved.
func NewTypeResolver(numOperands int) *TypeResolver {
	return &TypeResolver{
		operands: make([]PortType, numOperands),
	}
}

// NumOperands returns the number of inports.
func (r *TypeResolver) NumOperands() int {
	return len(r.operands)
}

// Operand returns the state of the inport at the 0-based index.
func (r *TypeResolver) Operand(index int) PortType {
	return r.operands[index]
}

// Output returns the state of the outport.
func (r *TypeResolver) Output() PortType {
	return r.output
}

// ProposeOperandType proposes a kind for the inport at the 0-based index.
// The proposal is rejected if another inport or an explicitly typed outport
// already carries a kind of the other category.
func (r *TypeResolver) ProposeOperandType(index int, k numeric.Kind) error {
	if index < 0 || index >= len(r.operands) {
		return fmt.Errorf("%w: inport %d, block has %d inports",
			ErrPortIndex, index+1, len(r.operands))
	}

	if err := k.Validate(); err != nil {
		return fmt.Errorf("inport %d: %w", index+1, err)
	}

	proposed := PortRef{Position: index + 1, Kind: k}

	if conflict, found := r.findConflict(k, index); found {
		return &IncompatibleTypesError{Existing: conflict, Proposed: proposed}
	}

	if r.outputExplicit && !r.output.Kind().CompatibleWith(k) {
		return &IncompatibleTypesError{
			Existing: PortRef{Position: OutputPosition, Kind: r.output.Kind()},
			Proposed: proposed,
		}
	}

	r.operands[index] = Resolved(k)

	if index == 0 && !r.outputExplicit {
		r.output = Resolved(k)
	}

	return nil
}

// ProposeOutputType proposes a kind for the outport. If inport 1 is still
// unresolved it takes the same kind.
func (r *TypeResolver) ProposeOutputType(k numeric.Kind) error {
	if err := k.Validate(); err != nil {
		return fmt.Errorf("outport: %w", err)
	}

	if conflict, found := r.findConflict(k, -1); found {
		return &IncompatibleTypesError{
			Existing: conflict,
			Proposed: PortRef{Position: OutputPosition, Kind: k},
		}
	}

	r.output = Resolved(k)
	r.outputExplicit = true

	if len(r.operands) > 0 && !r.operands[0].IsResolved() {
		r.operands[0] = Resolved(k)
	}

	return nil
}

// findConflict returns the first resolved inport, other than skip, whose kind
// is not compatible with k.
func (r *TypeResolver) findConflict(k numeric.Kind, skip int) (PortRef, bool) {
	for i, p := range r.operands {
		if i == skip || !p.IsResolved() {
			continue
		}

		if !p.Kind().CompatibleWith(k) {
			return PortRef{Position: i + 1, Kind: p.Kind()}, true
		}
	}

	return PortRef{}, false
}

// FinalizeDefaults resolves every port that is still unresolved. If any inport
// is fixed-point the default is FixedPointDefaultKind, else if any inport is
// an integer the default is IntegerDefaultKind, else DefaultKind. Calling it
// again is a no-op.
func (r *TypeResolver) FinalizeDefaults() (Types, error) {
	def := r.defaultKind()

	for i, p := range r.operands {
		if !p.IsResolved() {
			r.operands[i] = Resolved(def)
		}
	}

	if !r.output.IsResolved() {
		r.output = Resolved(def)
	}

	return r.Types()
}

func (r *TypeResolver) defaultKind() numeric.Kind {
	for _, p := range r.operands {
		if !p.IsResolved() {
			continue
		}

		if p.Kind().IsFixedPoint() {
			return FixedPointDefaultKind
		}

		return IntegerDefaultKind
	}

	return DefaultKind
}

// Types returns the resolved kinds. It fails with ErrNotFinalized while any
// port is unresolved.
func (r *TypeResolver) Types() (Types, error) {
	t := Types{
		Operands: make([]numeric.Kind, len(r.operands)),
		Output:   r.output.Kind(),
	}

	if !r.output.IsResolved() {
		return Types{}, fmt.Errorf("%w: outport", ErrNotFinalized)
	}

	for i, p := range r.operands {
		if !p.IsResolved() {
			return Types{}, fmt.Errorf("%w: inport %d", ErrNotFinalized, i+1)
		}

		t.Operands[i] = p.Kind()
	}

	return t, nil
}
