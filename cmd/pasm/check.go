package main

import (
	"errors"

	"github.com/sarchlab/pasm/config"
	"github.com/sarchlab/pasm/verify"
	"github.com/spf13/cobra"
)

var reportFile string

var errCheckFailed = errors.New("verification failed")

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check sourceFile",
	Short: "Lint a program and report what a run would do",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := config.MakePlatformBuilder().
			WithLoopMarkers(markers()).
			Build()

		src, err := p.Driver.ReadFile(args[0])
		if err != nil {
			return err
		}

		report := verify.GenerateReport(args[0], src, markers())
		report.WriteReport(cmd.OutOrStdout())

		if reportFile != "" {
			if err := report.SaveReportToFile(reportFile); err != nil {
				return err
			}
		}

		if !report.Passed() {
			return errCheckFailed
		}

		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&reportFile, "report", "", "also save the report to this file")
	rootCmd.AddCommand(checkCmd)
}
