package addsub

import (
	"log"

	"github.com/sarchlab/sumblock/sim"
)

var (
	// HookPosOverflow is triggered for every unsaturated overflow. The Item is
	// an OverflowEvent.
	HookPosOverflow = &sim.HookPos{Name: "Overflow"}

	// HookPosOverflowWarning is triggered once per block, for the first wrap
	// under the warning policy. The Item is an OverflowEvent.
	HookPosOverflowWarning = &sim.HookPos{Name: "OverflowWarning"}

	// HookPosOutput is triggered after a step writes its output. The Item is
	// a Result.
	HookPosOutput = &sim.HookPos{Name: "Output"}

	// HookPosStepFailed is triggered when a step fails. The Item is the
	// error.
	HookPosStepFailed = &sim.HookPos{Name: "StepFailed"}
)

// OverflowLogger prints the warnings and errors of the blocks it is attached
// to.
type OverflowLogger struct {
	sim.LogHookBase
}

// NewOverflowLogger creates an OverflowLogger that writes to logger.
func NewOverflowLogger(logger *log.Logger) *OverflowLogger {
	h := new(OverflowLogger)
	h.Logger = logger

	return h
}

// Func logs warning and failure positions and ignores the others.
func (h *OverflowLogger) Func(ctx sim.HookCtx) {
	name := "block"
	if named, ok := ctx.Domain.(sim.Named); ok {
		name = named.Name()
	}

	switch ctx.Pos {
	case HookPosOverflowWarning:
		evt := ctx.Item.(OverflowEvent)
		h.Printf("%s: Warning: %s", name, evt.WarningMessage())
	case HookPosStepFailed:
		if overflow, ok := ctx.Item.(*OverflowError); ok {
			h.Printf("%s: %s", name, overflow.Message())
			return
		}

		h.Printf("%s: Error: %v", name, ctx.Item)
	}
}
