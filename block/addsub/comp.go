package addsub

import (
	"github.com/sarchlab/sumblock/sim"
)

// Comp is a sum block that evaluates one step per tick. It pulls operand
// values from its Source and pushes the output to its Sink. A failed step
// stops the ticking; the error stays available from Err.
type Comp struct {
	*sim.TickingComponent

	Spec  Spec
	Types Types
	State *State

	source Source
	sink   Sink

	numSteps   uint64
	lastResult Result
	hasOutput  bool
	err        error

	pending []pendingHook
}

type pendingHook struct {
	pos  *sim.HookPos
	item any
}

// Tick evaluates one step if the source has values for it.
func (c *Comp) Tick() bool {
	if c.source == nil || c.Err() != nil {
		return false
	}

	values, ok := c.source.NextValues(c.CurrentTime())
	if !ok {
		return false
	}

	_, err := c.Evaluate(values)

	return err == nil
}

// Evaluate runs one evaluation step at the current time of the engine.
func (c *Comp) Evaluate(values []int64) (Result, error) {
	now := c.CurrentTime()

	c.Lock()
	result, err := c.State.Evaluate(c.Types, values, now, c)
	c.numSteps++
	if err != nil {
		c.err = err
	} else {
		c.lastResult = result
		c.hasOutput = true
	}
	hooks := c.pending
	c.pending = nil
	c.Unlock()

	for _, h := range hooks {
		c.invoke(h.pos, h.item)
	}

	if err != nil {
		c.invoke(HookPosStepFailed, err)
		return Result{}, err
	}

	c.sink.Accept(now, result)
	c.invoke(HookPosOutput, result)

	return result, nil
}

// ReportOverflow queues an overflow hook. Hooks run after the step releases
// the component lock.
func (c *Comp) ReportOverflow(evt OverflowEvent) {
	c.pending = append(c.pending, pendingHook{pos: HookPosOverflow, item: evt})
}

// ReportWarning queues the warn-once hook.
func (c *Comp) ReportWarning(evt OverflowEvent) {
	c.pending = append(c.pending,
		pendingHook{pos: HookPosOverflowWarning, item: evt})
}

func (c *Comp) invoke(pos *sim.HookPos, item any) {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(sim.HookCtx{Domain: c, Pos: pos, Item: item})
}

// Err returns the error of the step that stopped the block, if any.
func (c *Comp) Err() error {
	c.Lock()
	defer c.Unlock()

	return c.err
}

// Snapshot is a consistent view of the block state for monitoring.
type Snapshot struct {
	Name          string     `json:"name"`
	Signs         string     `json:"signs"`
	Saturate      bool       `json:"saturate"`
	Policy        string     `json:"policy"`
	OperandKinds  []string   `json:"operand_kinds"`
	OutputKind    string     `json:"output_kind"`
	NumSteps      uint64     `json:"num_steps"`
	HasOutput     bool       `json:"has_output"`
	LastOutput    int64      `json:"last_output"`
	LastStatus    string     `json:"last_status"`
	HasWarnedOnce bool       `json:"has_warned_once"`
	Err           string     `json:"error,omitempty"`
	Params        ParamTable `json:"params"`
}

// Snapshot returns the current state of the block.
func (c *Comp) Snapshot() Snapshot {
	c.Lock()
	defer c.Unlock()

	s := Snapshot{
		Name:          c.Name(),
		Signs:         c.Spec.SignString(),
		Saturate:      c.Spec.SaturateOnOverflow,
		Policy:        c.Spec.OverflowPolicy.String(),
		OperandKinds:  make([]string, len(c.Types.Operands)),
		OutputKind:    c.Types.Output.Name(),
		NumSteps:      c.numSteps,
		HasOutput:     c.hasOutput,
		LastOutput:    c.lastResult.Value,
		LastStatus:    c.lastResult.Status.String(),
		HasWarnedOnce: c.State.HasWarnedOnce,
		Params:        c.Spec.ParamTable(),
	}

	for i, k := range c.Types.Operands {
		s.OperandKinds[i] = k.Name()
	}

	if c.err != nil {
		s.Err = c.err.Error()
	}

	return s
}
