package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/pasm/config"
	"github.com/sarchlab/pasm/core"
	"github.com/tebeka/atexit"
)

//go:embed loop.pasm
var program string

func main() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: core.LevelTrace,
	})
	slog.SetDefault(slog.New(handler))

	p := config.MakePlatformBuilder().
		WithTrace(true).
		Build()

	result, err := p.RunSource(program)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	// 13 6 6 6 6 6 10
	fmt.Println(result.Stack)
	fmt.Printf("%d instructions executed\n", p.Tracer.Count)

	atexit.Exit(0)
}
