package api

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/pasm/core"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine  sim.Engine
	reader  SourceReader
	markers core.LoopMarkers
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithReader sets how LoadFile obtains source text.
func (b DriverBuilder) WithReader(reader SourceReader) DriverBuilder {
	b.reader = reader
	return b
}

// WithLoopMarkers sets the directives that open and close the loop region.
func (b DriverBuilder) WithLoopMarkers(markers core.LoopMarkers) DriverBuilder {
	b.markers = markers
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	if b.engine == nil {
		panic("driver builder requires an engine")
	}

	d := &driverImpl{
		name:    name,
		engine:  b.engine,
		reader:  b.reader,
		markers: b.markers,
	}

	if d.reader == nil {
		d.reader = fileReader{}
	}

	if d.markers.Start == "" || d.markers.End == "" {
		d.markers = core.DefaultLoopMarkers
	}

	return d
}
