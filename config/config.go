// Package config provides a default configuration for the pasm platform.
package config

import (
	"io"
	"os"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/pasm/api"
	"github.com/sarchlab/pasm/core"
)

// PlatformBuilder can build platforms.
type PlatformBuilder struct {
	freq    sim.Freq
	output  io.Writer
	reader  api.SourceReader
	markers core.LoopMarkers
	trace   bool
	monitor bool
}

// MakePlatformBuilder returns a builder with the default configuration.
func MakePlatformBuilder() PlatformBuilder {
	return PlatformBuilder{
		freq:    1 * sim.GHz,
		output:  os.Stdout,
		markers: core.DefaultLoopMarkers,
	}
}

// WithFreq sets the frequency of the core and the driver.
func (b PlatformBuilder) WithFreq(freq sim.Freq) PlatformBuilder {
	b.freq = freq
	return b
}

// WithOutput sets where printed lines are written.
func (b PlatformBuilder) WithOutput(w io.Writer) PlatformBuilder {
	b.output = w
	return b
}

// WithReader sets how source files are read.
func (b PlatformBuilder) WithReader(reader api.SourceReader) PlatformBuilder {
	b.reader = reader
	return b
}

// WithLoopMarkers sets the directives that open and close the loop region.
func (b PlatformBuilder) WithLoopMarkers(markers core.LoopMarkers) PlatformBuilder {
	b.markers = markers
	return b
}

// WithTrace attaches an instruction tracer to the core.
func (b PlatformBuilder) WithTrace(trace bool) PlatformBuilder {
	b.trace = trace
	return b
}

// WithMonitor registers the engine and the core with an akita monitor. The
// caller starts the monitor server.
func (b PlatformBuilder) WithMonitor(monitor bool) PlatformBuilder {
	b.monitor = monitor
	return b
}

// Build creates a platform.
func (b PlatformBuilder) Build() *Platform {
	p := &Platform{}

	p.Engine = sim.NewSerialEngine()

	p.Core = core.NewBuilder().
		WithEngine(p.Engine).
		WithFreq(b.freq).
		WithOutput(b.output).
		Build("Core")

	if b.trace {
		p.Tracer = core.NewInstTracer()
		p.Core.AcceptHook(p.Tracer)
	}

	p.Driver = api.DriverBuilder{}.
		WithEngine(p.Engine).
		WithReader(b.reader).
		WithLoopMarkers(b.markers).
		Build("Driver")
	p.Driver.RegisterCore(p.Core)

	if b.monitor {
		p.Monitor = monitoring.NewMonitor()
		p.Monitor.RegisterEngine(p.Engine)
		p.Monitor.RegisterComponent(p.Core)
	}

	return p
}
