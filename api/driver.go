// Package api defines the driver API that loads pasm programs and runs them
// on a core.
package api

import (
	"errors"
	"fmt"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/pasm/core"
	"github.com/sarchlab/pasm/token"
)

// ErrSourceUnavailable is returned when the source text cannot be read.
var ErrSourceUnavailable = errors.New("source unavailable")

// ErrNoProgram is returned by Run when nothing has been loaded.
var ErrNoProgram = errors.New("no program loaded")

// Result is what a run leaves behind.
type Result struct {
	// Stack holds the integer results in push order.
	Stack []int64

	// Printed holds every line emitted by print instructions and by text
	// results, without the trailing newline.
	Printed []string
}

// Driver provides the interface to load and run a program.
type Driver interface {
	// RegisterCore sets the core that runs the programs.
	RegisterCore(c Executor)

	// ReadFile returns the source text at path without assembling it.
	ReadFile(path string) (string, error)

	// LoadFile reads, tokenizes and assembles the program at path.
	LoadFile(path string) error

	// LoadSource tokenizes and assembles the given source text.
	LoadSource(text string) error

	// Program returns the assembled program.
	Program() (core.Program, bool)

	// Run executes the loaded program to the end.
	Run() (Result, error)
}

// Executor is the part of a core that the driver controls.
type Executor interface {
	MapProgram(prog core.Program) error
	Start()
	Finished() bool
	Err() error
	Stack() []int64
	Printed() []string
}

// SourceReader provides source text by path.
type SourceReader interface {
	ReadSource(path string) (string, error)
}

type fileReader struct{}

func (fileReader) ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

type driverImpl struct {
	name    string
	engine  sim.Engine
	reader  SourceReader
	markers core.LoopMarkers

	core    Executor
	program *core.Program
}

func (d *driverImpl) RegisterCore(c Executor) {
	d.core = c
}

func (d *driverImpl) ReadFile(path string) (string, error) {
	text, err := d.reader.ReadSource(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}

	return text, nil
}

func (d *driverImpl) LoadFile(path string) error {
	text, err := d.ReadFile(path)
	if err != nil {
		return err
	}

	if err := d.LoadSource(text); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func (d *driverImpl) LoadSource(text string) error {
	tokens := token.TokenizeText(text)

	prog, err := core.BuildProgram(tokens, core.WithLoopMarkers(d.markers))
	if err != nil {
		return err
	}

	core.Trace("LoadSource",
		"Driver", d.name,
		"Tokens", len(tokens),
		"Instructions", len(prog.Instructions),
		"Declarations", len(prog.Declarations),
	)

	d.program = &prog

	return nil
}

func (d *driverImpl) Program() (core.Program, bool) {
	if d.program == nil {
		return core.Program{}, false
	}

	return *d.program, true
}

// Run maps the program to the core and runs the engine until the core stops.
func (d *driverImpl) Run() (Result, error) {
	if d.program == nil {
		return Result{}, ErrNoProgram
	}

	if d.core == nil {
		return Result{}, errors.New("no core registered")
	}

	if err := d.core.MapProgram(*d.program); err != nil {
		return Result{}, err
	}

	d.core.Start()

	if err := d.engine.Run(); err != nil {
		return Result{}, fmt.Errorf("engine: %w", err)
	}

	if err := d.core.Err(); err != nil {
		return Result{}, err
	}

	if !d.core.Finished() {
		return Result{}, errors.New("core stopped before draining its results")
	}

	return Result{
		Stack:   d.core.Stack(),
		Printed: d.core.Printed(),
	}, nil
}
