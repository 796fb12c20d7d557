package core

import (
	"github.com/sarchlab/akita/v4/sim"
)

var (
	// HookPosInstStart is invoked before an instruction runs. The item is the
	// Instruction.
	HookPosInstStart = &sim.HookPos{Name: "InstStart"}

	// HookPosInstEnd is invoked after an instruction completes. The item is
	// the Instruction.
	HookPosInstEnd = &sim.HookPos{Name: "InstEnd"}

	// HookPosDrain is invoked before the results are drained. The item is the
	// []Value result queue.
	HookPosDrain = &sim.HookPos{Name: "Drain"}
)

type named interface {
	Name() string
}

func domainName(ctx sim.HookCtx) string {
	if n, ok := ctx.Domain.(named); ok {
		return n.Name()
	}

	return ""
}

// InstTracer logs executed instructions at the trace level.
type InstTracer struct {
	Count int
}

// NewInstTracer creates a tracer that can be attached with AcceptHook.
func NewInstTracer() *InstTracer {
	return &InstTracer{}
}

// Func implements sim.Hook.
func (t *InstTracer) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case HookPosInstStart:
		inst, ok := ctx.Item.(Instruction)
		if !ok {
			return
		}

		Trace("Inst",
			"Behavior", "Start",
			"Domain", domainName(ctx),
			"Seq", t.Count,
			"Inst", inst.String(),
		)
	case HookPosInstEnd:
		t.Count++
	case HookPosDrain:
		results, _ := ctx.Item.([]Value)
		Trace("Inst",
			"Behavior", "Drain",
			"Domain", domainName(ctx),
			"Results", len(results),
		)
	}
}
