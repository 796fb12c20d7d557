package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/pasm/config"
	"github.com/sarchlab/pasm/core"
	"github.com/sarchlab/pasm/token"
	"github.com/spf13/cobra"
)

var dumpFormat string

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump sourceFile",
	Short: "Print the tokens, instructions and variables of a program",
	Long: `Dump shows each stage of assembly without running the program: the
classified tokens, the instructions after loop unrolling and the resolved
variable table. The table format renders them as text tables. The repr
format prints the Go values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := config.MakePlatformBuilder().
			WithLoopMarkers(markers()).
			Build()

		src, err := p.Driver.ReadFile(args[0])
		if err != nil {
			return err
		}

		if err := p.Driver.LoadSource(src); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		tokens := token.TokenizeText(src)
		prog, _ := p.Driver.Program()

		out := cmd.OutOrStdout()

		switch dumpFormat {
		case "table":
			return dumpTable(out, tokens, prog)
		case "repr":
			return dumpRepr(out, tokens, prog)
		default:
			return fmt.Errorf("unknown format %q, want table or repr", dumpFormat)
		}
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "table", "output format: table or repr")
	rootCmd.AddCommand(dumpCmd)
}

func dumpTable(w io.Writer, tokens []token.Token, prog core.Program) error {
	t := table.NewWriter()
	t.SetTitle("Tokens")
	t.AppendHeader(table.Row{"Line", "Kind", "Text"})

	for _, tok := range tokens {
		t.AppendRow(table.Row{tok.Line, tok.Kind, tok.Text})
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w)

	return core.PrintProgram(w, prog)
}

func dumpRepr(w io.Writer, tokens []token.Token, prog core.Program) error {
	vars, err := prog.Variables()
	if err != nil {
		return err
	}

	p := repr.New(w, repr.Indent("  "))
	p.Println(tokens)
	p.Println(prog.Instructions)
	p.Println(vars)

	return nil
}
