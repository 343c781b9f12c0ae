package addsub

import (
	"fmt"
	"log"

	"github.com/sarchlab/sumblock/numeric"
	"github.com/sarchlab/sumblock/sim"
)

// Builder constructs a Comp from a Spec and the kind proposals of its ports.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	spec   Spec

	operandKinds map[int]numeric.Kind
	outputKind   numeric.Kind

	source Source
	sink   Sink
}

// MakeBuilder returns a new Builder with the default Spec.
func MakeBuilder() Builder {
	return Builder{
		freq: 1 * sim.GHz,
		spec: Defaults(),
	}
}

// WithEngine sets the engine that drives the block.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the evaluation frequency.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithSpec sets the block configuration.
func (b Builder) WithSpec(spec Spec) Builder {
	b.spec = spec
	return b
}

// WithOperandType proposes a kind for the inport at the 0-based index. Inports
// without a proposal get the default kind.
func (b Builder) WithOperandType(index int, k numeric.Kind) Builder {
	kinds := make(map[int]numeric.Kind, len(b.operandKinds)+1)
	for i, existing := range b.operandKinds {
		kinds[i] = existing
	}

	kinds[index] = k
	b.operandKinds = kinds

	return b
}

// WithOutputType proposes a kind for the outport.
func (b Builder) WithOutputType(k numeric.Kind) Builder {
	b.outputKind = k
	return b
}

// WithSource sets where the block reads its operand values.
func (b Builder) WithSource(source Source) Builder {
	b.source = source
	return b
}

// WithSink sets where the block writes its outputs.
func (b Builder) WithSink(sink Sink) Builder {
	b.sink = sink
	return b
}

// Build validates the configuration, negotiates the port kinds and creates
// the block. Proposals are made in inport order, then the outport.
func (b Builder) Build(name string) (*Comp, error) {
	if b.engine == nil {
		log.Panic("engine is not set")
	}

	if err := sim.ValidateName(name); err != nil {
		return nil, err
	}

	if err := b.spec.Validate(); err != nil {
		return nil, err
	}

	types, err := b.resolveTypes()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	c := &Comp{
		Spec:   b.spec,
		Types:  types,
		State:  NewState(b.spec),
		source: b.source,
		sink:   b.sink,
	}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	if c.sink == nil {
		c.sink = discardSink{}
	}

	return c, nil
}

func (b Builder) resolveTypes() (Types, error) {
	r := NewTypeResolver(b.spec.NumOperands())

	for i := 0; i < r.NumOperands(); i++ {
		k, found := b.operandKinds[i]
		if !found {
			continue
		}

		if err := r.ProposeOperandType(i, k); err != nil {
			return Types{}, err
		}
	}

	for i := range b.operandKinds {
		if i < 0 || i >= r.NumOperands() {
			return Types{}, fmt.Errorf("%w: inport %d, block has %d inports",
				ErrPortIndex, i+1, r.NumOperands())
		}
	}

	if b.outputKind != numeric.Invalid {
		if err := r.ProposeOutputType(b.outputKind); err != nil {
			return Types{}, err
		}
	}

	types, err := r.FinalizeDefaults()
	if err != nil {
		return Types{}, err
	}

	return types, types.Validate()
}
