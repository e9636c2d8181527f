// -*- tab-width:2 -*-

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	callsim "github.com/jayalane/go-callsim"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print every attempt of the first calls from the seed",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		calls, err := cmd.Flags().GetInt("calls")
		if err != nil {
			return err
		}

		g, err := callsim.NewGenerator(&cfg.Call)
		if err != nil {
			return err
		}

		return trace(cmd.OutOrStdout(), g, calls)
	},
}

func init() {
	traceCmd.Flags().IntP("calls", "k", 3, "number of calls to trace") //nolint:mnd
}

func trace(out io.Writer, g *callsim.Generator, calls int) error {
	for i := 0; i < calls; i++ {
		res, err := g.Call()
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "call %d\n", i)

		for j, a := range res.Attempts {
			fmt.Fprintf(out, "  attempt %d %-13s r=%.4f", j+1, a.Kind, a.Decimal)

			if a.Kind == callsim.Answered || a.Kind == callsim.Missed {
				fmt.Fprintf(out, " u=%.4f delay=%.4f", a.Answer, float64(a.AnswerDelay))
			}

			fmt.Fprintf(out, " +%.4f\n", float64(a.Elapsed))
		}

		fmt.Fprintf(out, "  total %.4f answered=%t\n", float64(res.Elapsed), res.Answered)
	}

	return nil
}
