package addsub

import (
	"github.com/sarchlab/sumblock/sim"
)

// A Source provides the operand values of a block, one vector per step.
type Source interface {
	// NextValues returns the values of the step at now. It returns false
	// when the source is exhausted.
	NextValues(now sim.VTimeInSec) ([]int64, bool)
}

// A Sink receives the output of every successful step.
type Sink interface {
	Accept(now sim.VTimeInSec, result Result)
}

// SliceSource replays a fixed list of operand vectors.
type SliceSource struct {
	Steps [][]int64
	next  int
}

// NewSliceSource creates a source that replays steps in order.
func NewSliceSource(steps [][]int64) *SliceSource {
	return &SliceSource{Steps: steps}
}

// NextValues returns the next vector.
func (s *SliceSource) NextValues(_ sim.VTimeInSec) ([]int64, bool) {
	if s.next >= len(s.Steps) {
		return nil, false
	}

	values := s.Steps[s.next]
	s.next++

	return values, true
}

// Remaining returns the number of vectors not replayed yet.
func (s *SliceSource) Remaining() int {
	return len(s.Steps) - s.next
}

// Sample is one output recorded by an OutputRecorder.
type Sample struct {
	Time   sim.VTimeInSec
	Result Result
}

// OutputRecorder is a Sink that keeps every output.
type OutputRecorder struct {
	Samples []Sample
}

// Accept records the output.
func (r *OutputRecorder) Accept(now sim.VTimeInSec, result Result) {
	r.Samples = append(r.Samples, Sample{Time: now, Result: result})
}

// Values returns the recorded output values in order.
func (r *OutputRecorder) Values() []int64 {
	values := make([]int64, len(r.Samples))
	for i, s := range r.Samples {
		values[i] = s.Result.Value
	}

	return values
}

type discardSink struct{}

func (discardSink) Accept(sim.VTimeInSec, Result) {}
