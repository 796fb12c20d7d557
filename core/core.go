package core

import (
	"io"
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"
)

// Core executes one program, one instruction per tick. When the instruction
// queue is empty the next tick drains the results into the output stack and
// the core stops making progress.
type Core struct {
	*sim.TickingComponent

	state coreState
	emu   instEmulator
}

// MapProgram resolves the variables of the program and loads its
// instructions. Any state left from an earlier run is discarded.
func (c *Core) MapProgram(prog Program) error {
	vars, err := prog.Variables()
	if err != nil {
		return err
	}

	code := make([]Instruction, len(prog.Instructions))
	copy(code, prog.Instructions)

	c.state = coreState{
		Code:      code,
		Variables: vars,
		Out:       c.state.Out,
	}

	Trace("MapProgram",
		"Core", c.Name(),
		"Instructions", len(code),
		"Variables", len(vars),
	)

	return nil
}

// Start schedules the first tick.
func (c *Core) Start() {
	c.TickLater()
}

// Tick runs the program for one cycle.
func (c *Core) Tick() (madeProgress bool) {
	if c.state.Err != nil || c.state.Drained {
		return false
	}

	if len(c.state.Code) == 0 {
		c.InvokeHook(sim.HookCtx{Domain: c, Pos: HookPosDrain, Item: c.state.Results})

		if err := c.emu.drain(&c.state); err != nil {
			c.state.Err = err
			return false
		}

		LogState(&c.state)

		return true
	}

	inst := c.state.Code[0]
	c.state.Code = c.state.Code[1:]

	c.InvokeHook(sim.HookCtx{Domain: c, Pos: HookPosInstStart, Item: inst})

	if err := c.emu.RunInst(inst, &c.state); err != nil {
		c.state.Err = &ExecError{Index: c.state.PC, Instruction: inst, Err: err}
		slog.Error("Instruction failed",
			"Core", c.Name(),
			"PC", c.state.PC,
			"Inst", inst.String(),
			"Error", err.Error(),
		)

		return false
	}

	c.InvokeHook(sim.HookCtx{Domain: c, Pos: HookPosInstEnd, Item: inst})
	c.state.PC++

	return true
}

// Finished tells whether the results have been drained.
func (c *Core) Finished() bool {
	return c.state.Drained
}

// Err returns the error that stopped the run, if any.
func (c *Core) Err() error {
	return c.state.Err
}

// Stack returns the output stack in push order.
func (c *Core) Stack() []int64 {
	return c.state.Stack
}

// Printed returns every line emitted so far, without newlines.
func (c *Core) Printed() []string {
	return c.state.Printed
}

// SetOutput sets where printed lines are written.
func (c *Core) SetOutput(w io.Writer) {
	c.state.Out = w
}
