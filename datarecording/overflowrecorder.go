package datarecording

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/xid"

	"github.com/sarchlab/sumblock/block/addsub"
	"github.com/sarchlab/sumblock/sim"
)

// The tables written by an OverflowRecorder.
const (
	OverflowTableName = "overflow"
	FailureTableName  = "step_failure"
	OutputTableName   = "step_output"
)

// OverflowEntry is a row of the overflow table. Every unsaturated overflow of
// a block produces one row, whatever its policy. Warned marks the row of the
// overflow that raised the warning of the block.
type OverflowEntry struct {
	ID        string
	Block     string
	Time      float64
	Operand   int
	Operation string
	Status    string
	Policy    string
	Warned    bool
}

// FailureEntry is a row of the step_failure table.
type FailureEntry struct {
	ID      string
	Block   string
	Time    float64
	Operand int
	Error   string
}

// OutputEntry is a row of the step_output table.
type OutputEntry struct {
	ID     string
	Block  string
	Time   float64
	Value  int64
	Status string
}

// OverflowRecorder is a hook that records the overflows and the failures of
// the blocks it is attached to. Outputs are recorded only if RecordOutputs
// is set.
type OverflowRecorder struct {
	recorder      DataRecorder
	RecordOutputs bool
}

// NewOverflowRecorder creates the tables and returns the hook.
func NewOverflowRecorder(recorder DataRecorder) *OverflowRecorder {
	recorder.CreateTable(OverflowTableName, OverflowEntry{})
	recorder.CreateTable(FailureTableName, FailureEntry{})
	recorder.CreateTable(OutputTableName, OutputEntry{})

	return &OverflowRecorder{recorder: recorder}
}

// Func records the item of the hook position.
func (r *OverflowRecorder) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case addsub.HookPosOverflow:
		r.recordOverflow(ctx, ctx.Item.(addsub.OverflowEvent))
	case addsub.HookPosStepFailed:
		r.recordFailure(ctx, ctx.Item.(error))
	case addsub.HookPosOutput:
		if r.RecordOutputs {
			r.recordOutput(ctx, ctx.Item.(addsub.Result))
		}
	}
}

func (r *OverflowRecorder) recordOverflow(
	ctx sim.HookCtx,
	evt addsub.OverflowEvent,
) {
	r.recorder.InsertData(OverflowTableName, OverflowEntry{
		ID:        xid.New().String(),
		Block:     blockName(ctx),
		Time:      float64(evt.Time),
		Operand:   evt.Operand,
		Operation: evt.Op.Verb(),
		Status:    evt.Status.String(),
		Policy:    evt.Policy.String(),
		Warned:    evt.Warned,
	})
}

func (r *OverflowRecorder) recordFailure(ctx sim.HookCtx, err error) {
	entry := FailureEntry{
		ID:    xid.New().String(),
		Block: blockName(ctx),
		Time:  float64(blockTime(ctx)),
		Error: err.Error(),
	}

	var overflow *addsub.OverflowError
	if errors.As(err, &overflow) {
		entry.Operand = overflow.Operand
		entry.Time = float64(overflow.Time)
	}

	r.recorder.InsertData(FailureTableName, entry)
}

func (r *OverflowRecorder) recordOutput(ctx sim.HookCtx, result addsub.Result) {
	r.recorder.InsertData(OutputTableName, OutputEntry{
		ID:     xid.New().String(),
		Block:  blockName(ctx),
		Time:   float64(blockTime(ctx)),
		Value:  result.Value,
		Status: result.Status.String(),
	})
}

func blockName(ctx sim.HookCtx) string {
	if named, ok := ctx.Domain.(sim.Named); ok {
		return named.Name()
	}

	return ""
}

func blockTime(ctx sim.HookCtx) sim.VTimeInSec {
	if teller, ok := ctx.Domain.(sim.TimeTeller); ok {
		return teller.CurrentTime()
	}

	return 0
}

// OpenOverflowReader opens a database written by an OverflowRecorder and
// maps its tables. The file must exist.
func OpenOverflowReader(path string) (DataReader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open recording: %w", err)
	}

	r := NewReader(path)
	r.MapTable(OverflowTableName, OverflowEntry{})
	r.MapTable(FailureTableName, FailureEntry{})
	r.MapTable(OutputTableName, OutputEntry{})

	return r, nil
}
