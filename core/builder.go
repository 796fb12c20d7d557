package core

import (
	"io"
	"os"

	"github.com/sarchlab/akita/v4/sim"
)

// Builder can create new cores.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	output io.Writer
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithOutput sets where printed lines are written.
func (b Builder) WithOutput(w io.Writer) Builder {
	b.output = w
	return b
}

func NewBuilder() Builder {
	return Builder{
		freq:   1 * sim.GHz,
		output: os.Stdout,
	}
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	if b.engine == nil {
		panic("core builder requires an engine")
	}

	if b.freq == 0 {
		b.freq = 1 * sim.GHz
	}

	c := &Core{}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.state.Out = b.output

	return c
}
