package addsub

import (
	"fmt"

	"github.com/sarchlab/sumblock/numeric"
	"github.com/sarchlab/sumblock/sim"
)

// Op returns the arithmetic operation of the sign.
func (s Sign) Op() numeric.Op {
	if s == Minus {
		return numeric.OpSubtract
	}

	return numeric.OpAdd
}

// OverflowEvent describes one operand whose result did not fit the output and
// was not saturated. Warned is set on the overflow that raises the single
// warning of a block.
type OverflowEvent struct {
	Operand int
	Op      numeric.Op
	Status  numeric.Status
	Time    sim.VTimeInSec
	Policy  OverflowPolicy
	Warned  bool
}

// WarningMessage returns the message the host shows for a wrap warning.
func (e OverflowEvent) WarningMessage() string {
	return fmt.Sprintf("Wrap on %s detected when %s inport %d at time %f.",
		e.Status, e.Op.Verb(), e.Operand, float64(e.Time))
}

// OverflowReporter receives the diagnostics of an evaluation step.
type OverflowReporter interface {
	// ReportOverflow is called for every unsaturated overflow, whatever the
	// policy.
	ReportOverflow(evt OverflowEvent)

	// ReportWarning is called once per block, for the first overflow under
	// PolicyWarn.
	ReportWarning(evt OverflowEvent)
}

type nopReporter struct{}

func (nopReporter) ReportOverflow(OverflowEvent) {}
func (nopReporter) ReportWarning(OverflowEvent)  {}

// Result is the output of one evaluation step. Status is the first non-normal
// saturation status met while folding the operands, or StatusNormal.
type Result struct {
	Value  int64
	Status numeric.Status
}

// State is the per-block accumulator state. HasWarnedOnce is the only field
// that changes after creation. A State must not be shared between blocks.
type State struct {
	Signs              []Sign
	SaturateOnOverflow bool
	OverflowPolicy     OverflowPolicy
	HasWarnedOnce      bool
}

// NewState creates the state of a block configured by spec.
func NewState(spec Spec) *State {
	return &State{
		Signs:              append([]Sign(nil), spec.Signs...),
		SaturateOnOverflow: spec.SaturateOnOverflow,
		OverflowPolicy:     spec.OverflowPolicy,
	}
}

// Evaluate folds the operand values of one step into the output.
//
// values are raw encodings of the operand kinds in types. now is only used in
// diagnostics. With PolicyError, an unsaturated overflow aborts the step with
// an *OverflowError and no output. reporter may be nil.
func (s *State) Evaluate(
	types Types,
	values []int64,
	now sim.VTimeInSec,
	reporter OverflowReporter,
) (Result, error) {
	if reporter == nil {
		reporter = nopReporter{}
	}

	if err := types.Validate(); err != nil {
		return Result{}, err
	}

	if err := s.checkOperands(types, values); err != nil {
		return Result{}, err
	}

	acc, err := numeric.NewAccumulator(types.Output)
	if err != nil {
		return Result{}, fmt.Errorf("outport: %w", err)
	}

	result := Result{Status: numeric.StatusNormal}
	var value int64

	for i, sign := range s.Signs {
		operand := acc.Operand(values[i], types.Operands[i])
		saturated, wrapped, status := acc.Accumulate(value, operand, sign.Op())

		if status != numeric.StatusNormal && result.Status == numeric.StatusNormal {
			result.Status = status
		}

		if status == numeric.StatusNormal || s.SaturateOnOverflow {
			value = saturated
			continue
		}

		evt := OverflowEvent{
			Operand: i + 1,
			Op:      sign.Op(),
			Status:  status,
			Time:    now,
			Policy:  s.OverflowPolicy,
			Warned:  s.OverflowPolicy == PolicyWarn && !s.HasWarnedOnce,
		}
		reporter.ReportOverflow(evt)

		if s.OverflowPolicy == PolicyError {
			return Result{}, &OverflowError{
				Operand: evt.Operand,
				Op:      evt.Op,
				Status:  evt.Status,
				Time:    now,
			}
		}

		value = wrapped

		if evt.Warned {
			s.HasWarnedOnce = true
			reporter.ReportWarning(evt)
		}
	}

	result.Value = value

	return result, nil
}

func (s *State) checkOperands(types Types, values []int64) error {
	if len(values) != len(s.Signs) {
		return fmt.Errorf("%w: got %d values for %d inports",
			ErrOperandCount, len(values), len(s.Signs))
	}

	if len(types.Operands) != len(s.Signs) {
		return fmt.Errorf("%w: got %d inport types for %d inports",
			ErrOperandCount, len(types.Operands), len(s.Signs))
	}

	for i, v := range values {
		k := types.Operands[i]
		if !k.Contains(v) {
			return fmt.Errorf("%w: inport %d value %d does not fit %s",
				ErrOperandValue, i+1, v, k)
		}
	}

	return nil
}
