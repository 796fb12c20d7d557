package api

import (
	"bytes"
	"errors"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/pasm/core"
)

var _ = Describe("Driver", func() {
	var (
		mockCtrl     *gomock.Controller
		mockReader   *MockSourceReader
		mockExecutor *MockExecutor
		engine       sim.Engine
		driver       *driverImpl
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockReader = NewMockSourceReader(mockCtrl)
		mockExecutor = NewMockExecutor(mockCtrl)
		engine = sim.NewSerialEngine()

		driver = DriverBuilder{}.
			WithEngine(engine).
			WithReader(mockReader).
			Build("Driver").(*driverImpl)
		driver.RegisterCore(mockExecutor)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should load a file through the reader", func() {
		mockReader.EXPECT().
			ReadSource("prog.pasm").
			Return("@x 1\nadd x 2\n.loop 2\nprint x\n.endloop\n", nil)

		Expect(driver.LoadFile("prog.pasm")).To(Succeed())

		prog, ok := driver.Program()
		Expect(ok).To(BeTrue())
		Expect(prog.Declarations).To(Equal([]string{"x 1"}))
		Expect(prog.Instructions).To(HaveLen(3))
	})

	It("should report an unreadable source", func() {
		mockReader.EXPECT().
			ReadSource("missing.pasm").
			Return("", errors.New("no such file"))

		err := driver.LoadFile("missing.pasm")
		Expect(err).To(MatchError(ErrSourceUnavailable))
		Expect(err.Error()).To(ContainSubstring("missing.pasm"))

		_, ok := driver.Program()
		Expect(ok).To(BeFalse())
	})

	It("should read a file without assembling it", func() {
		mockReader.EXPECT().
			ReadSource("draft.pasm").
			Return("jmp 4\n", nil)

		text, err := driver.ReadFile("draft.pasm")
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal("jmp 4\n"))

		_, ok := driver.Program()
		Expect(ok).To(BeFalse())
	})

	It("should report an unreadable source when only reading", func() {
		mockReader.EXPECT().
			ReadSource("gone.pasm").
			Return("", errors.New("permission denied"))

		_, err := driver.ReadFile("gone.pasm")
		Expect(err).To(MatchError(ErrSourceUnavailable))
		Expect(err.Error()).To(ContainSubstring("gone.pasm"))
	})

	It("should report assembly errors with the file name", func() {
		mockReader.EXPECT().
			ReadSource("bad.pasm").
			Return("jmp 4\n", nil)

		err := driver.LoadFile("bad.pasm")
		Expect(err).To(MatchError(core.ErrInvalidMnemonic))
		Expect(err.Error()).To(HavePrefix("bad.pasm: line 1"))
	})

	It("should refuse to run without a program", func() {
		_, err := driver.Run()
		Expect(err).To(MatchError(ErrNoProgram))
	})

	It("should map the program and collect the results", func() {
		Expect(driver.LoadSource("add 1 2\n")).To(Succeed())

		gomock.InOrder(
			mockExecutor.EXPECT().
				MapProgram(gomock.Any()).
				Do(func(prog core.Program) {
					Expect(prog.Instructions).To(HaveLen(1))
					Expect(prog.Instructions[0].Operation).To(Equal(core.Add))
				}).
				Return(nil),
			mockExecutor.EXPECT().Start(),
			mockExecutor.EXPECT().Err().Return(nil),
			mockExecutor.EXPECT().Finished().Return(true),
		)
		mockExecutor.EXPECT().Stack().Return([]int64{3})
		mockExecutor.EXPECT().Printed().Return(nil)

		result, err := driver.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Stack).To(Equal([]int64{3}))
		Expect(result.Printed).To(BeEmpty())
	})

	It("should return the error that stopped the core", func() {
		Expect(driver.LoadSource("div 1 0\n")).To(Succeed())

		mockExecutor.EXPECT().MapProgram(gomock.Any()).Return(nil)
		mockExecutor.EXPECT().Start()
		mockExecutor.EXPECT().Err().Return(core.ErrDivisionByZero)

		result, err := driver.Run()
		Expect(err).To(MatchError(core.ErrDivisionByZero))
		Expect(result.Stack).To(BeNil())
	})

	It("should fail when the core did not finish", func() {
		Expect(driver.LoadSource("add 1 1\n")).To(Succeed())

		mockExecutor.EXPECT().MapProgram(gomock.Any()).Return(nil)
		mockExecutor.EXPECT().Start()
		mockExecutor.EXPECT().Err().Return(nil)
		mockExecutor.EXPECT().Finished().Return(false)

		_, err := driver.Run()
		Expect(err).To(HaveOccurred())
	})

	It("should run on a real core", func() {
		out := &bytes.Buffer{}
		c := core.NewBuilder().
			WithEngine(engine).
			WithOutput(out).
			Build("Core")
		driver.RegisterCore(c)

		Expect(driver.LoadSource(
			"#data\n@x 7\n#code\n.main\nprint \"hello\" x\nsub x 2\n.loop 2\nmul 3 x\n.endloop\n.end\n",
		)).To(Succeed())

		result, err := driver.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Stack).To(Equal([]int64{5, 21, 21}))
		Expect(result.Printed).To(Equal([]string{"hello 7"}))
		Expect(out.String()).To(Equal("hello 7\n"))
	})
})
