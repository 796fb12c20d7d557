package config

import (
	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/pasm/api"
	"github.com/sarchlab/pasm/core"
)

// A Platform is an engine, a core and the driver that feeds it.
type Platform struct {
	Engine  sim.Engine
	Core    *core.Core
	Driver  api.Driver
	Tracer  *core.InstTracer
	Monitor *monitoring.Monitor
}

// RunFile loads and runs the program at path.
func (p *Platform) RunFile(path string) (api.Result, error) {
	if err := p.Driver.LoadFile(path); err != nil {
		return api.Result{}, err
	}

	return p.Driver.Run()
}

// RunSource loads and runs the given source text.
func (p *Platform) RunSource(text string) (api.Result, error) {
	if err := p.Driver.LoadSource(text); err != nil {
		return api.Result{}, err
	}

	return p.Driver.Run()
}
