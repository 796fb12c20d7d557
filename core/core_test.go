package core_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/pasm/core"
	"github.com/sarchlab/pasm/token"
)

type recordingHook struct {
	positions []string
	insts     []string
}

func (h *recordingHook) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case core.HookPosInstStart, core.HookPosInstEnd, core.HookPosDrain:
		h.positions = append(h.positions, ctx.Pos.Name)
	}
	if inst, ok := ctx.Item.(core.Instruction); ok && ctx.Pos == core.HookPosInstStart {
		h.insts = append(h.insts, inst.String())
	}
}

var _ = Describe("Core", func() {
	var (
		engine sim.Engine
		c      *core.Core
		out    *bytes.Buffer
	)

	load := func(src string) {
		prog, err := core.BuildProgram(token.TokenizeText(src))
		Expect(err).NotTo(HaveOccurred())
		Expect(c.MapProgram(prog)).To(Succeed())
	}

	run := func() {
		c.Start()
		Expect(engine.Run()).To(Succeed())
	}

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		out = &bytes.Buffer{}
		c = core.NewBuilder().
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			WithOutput(out).
			Build("Core")
	})

	It("should unroll a loop into independent results", func() {
		load(".main\n.loop 3\nadd 2 3\n.endloop\n.end\n")
		run()

		Expect(c.Err()).NotTo(HaveOccurred())
		Expect(c.Finished()).To(BeTrue())
		Expect(c.Stack()).To(Equal([]int64{5, 5, 5}))
	})

	It("should resolve a variable reference", func() {
		load("#data\n@x 10\n#code\nadd x 5\n")
		run()

		Expect(c.Stack()).To(Equal([]int64{15}))
	})

	It("should print without touching the stack", func() {
		load("@x 7\nprint \"hello\" x\n")
		run()

		Expect(out.String()).To(Equal("hello 7\n"))
		Expect(c.Printed()).To(Equal([]string{"hello 7"}))
		Expect(c.Stack()).To(BeEmpty())
	})

	It("should keep every duplicate declaration", func() {
		load("@x 1\n@x 2\nadd x 0\n")
		run()

		Expect(c.Stack()).To(Equal([]int64{1, 2}))
	})

	It("should stop at the first failing instruction", func() {
		load("add 1 1\ndiv 4 0\nadd 2 2\n")
		run()

		err := c.Err()
		Expect(err).To(MatchError(core.ErrDivisionByZero))

		var execErr *core.ExecError
		Expect(errors.As(err, &execErr)).To(BeTrue())
		Expect(execErr.Index).To(Equal(1))
		Expect(execErr.Instruction.String()).To(Equal("div 4 0"))

		Expect(c.Finished()).To(BeFalse())
		Expect(c.Stack()).To(BeEmpty())
	})

	It("should run an empty program", func() {
		load("; nothing here\n")
		run()

		Expect(c.Finished()).To(BeTrue())
		Expect(c.Stack()).To(BeEmpty())
	})

	It("should invoke hooks around every instruction", func() {
		hook := &recordingHook{}
		c.AcceptHook(hook)

		load("add 1 2\nprint 3\n")
		run()

		Expect(hook.insts).To(Equal([]string{"add 1 2", "print 3"}))
		Expect(hook.positions).To(Equal([]string{
			"InstStart", "InstEnd", "InstStart", "InstEnd", "Drain",
		}))
	})

	It("should count instructions with the tracer", func() {
		tracer := core.NewInstTracer()
		c.AcceptHook(tracer)

		load(".loop 4\nmul 2 2\n.endloop\n")
		run()

		Expect(tracer.Count).To(Equal(4))
	})

	It("should render its state", func() {
		load("@x 3\nadd x 1\n")

		buf := &bytes.Buffer{}
		c.PrintState(buf)

		Expect(buf.String()).To(ContainSubstring("Pending Instructions"))
		Expect(buf.String()).To(ContainSubstring("add x 1"))
	})

	It("should render its state with nothing pending", func() {
		load("")

		buf := &bytes.Buffer{}
		c.PrintState(buf)

		Expect(buf.String()).To(ContainSubstring("Pending Instructions"))
		Expect(buf.String()).To(ContainSubstring("Results / Stack"))
	})
})
