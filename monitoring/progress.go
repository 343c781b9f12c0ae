package monitoring

import (
	"sync"
	"time"

	"github.com/sarchlab/sumblock/block/addsub"
	"github.com/sarchlab/sumblock/sim"
)

// A ProgressBar tracks how many steps of a block are done. Failed counts the
// steps that ended with an error and is included in Finished.
type ProgressBar struct {
	sync.Mutex
	ID        string
	Name      string
	StartTime time.Time
	Total     uint64
	Finished  uint64
	Failed    uint64
}

// ProgressBarStatus is a copy of the counters of a ProgressBar.
type ProgressBarStatus struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	Total     uint64    `json:"total"`
	Finished  uint64    `json:"finished"`
	Failed    uint64    `json:"failed"`
}

// Status returns the current counters.
func (b *ProgressBar) Status() ProgressBarStatus {
	b.Lock()
	defer b.Unlock()

	return ProgressBarStatus{
		ID:        b.ID,
		Name:      b.Name,
		StartTime: b.StartTime,
		Total:     b.Total,
		Finished:  b.Finished,
		Failed:    b.Failed,
	}
}

// Func counts the steps of the block the bar is attached to as a hook.
func (b *ProgressBar) Func(ctx sim.HookCtx) {
	b.Lock()
	defer b.Unlock()

	switch ctx.Pos {
	case addsub.HookPosOutput:
		b.Finished++
	case addsub.HookPosStepFailed:
		b.Finished++
		b.Failed++
	}
}
