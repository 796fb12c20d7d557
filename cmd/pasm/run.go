package main

import (
	"fmt"

	"github.com/sarchlab/pasm/config"
	"github.com/spf13/cobra"
)

var monitor bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run sourceFile",
	Short: "Run a program and print its output stack",
	Long: `Run assembles and executes the program. Text from print instructions is
written to stdout as it is produced. When the program finishes, the output
stack is printed one value per line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		p := config.MakePlatformBuilder().
			WithOutput(out).
			WithLoopMarkers(markers()).
			WithTrace(trace).
			WithMonitor(monitor).
			Build()

		if p.Monitor != nil {
			p.Monitor.StartServer()
		}

		result, err := p.RunFile(args[0])
		if err != nil {
			return err
		}

		for _, v := range result.Stack {
			fmt.Fprintln(out, v)
		}

		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&monitor, "monitor", false, "serve the akita monitoring web UI while running")
	rootCmd.AddCommand(runCmd)
}
