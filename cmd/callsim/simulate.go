// -*- tab-width:2 -*-

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	count "github.com/jayalane/go-counter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	callsim "github.com/jayalane/go-callsim"
	"github.com/jayalane/go-callsim/chart"
	"github.com/jayalane/go-callsim/internal/config"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Generate a sample of calls and report on it",
	PreRun: func(cmd *cobra.Command, _ []string) {
		bindReportFlags(cmd.Flags())
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if err := cutoffsFlag(cmd, cfg); err != nil {
			return err
		}

		sample, err := callsim.GenerateSample(&cfg.Call, cfg.Run.SampleSize)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		runID := uuid.NewString()

		fmt.Fprintf(out, "run %s: %s calls from seed %d\n",
			runID, humanize.Comma(int64(len(sample))), cfg.Call.Generator.Seed)

		if cfg.Run.CSVPath != "" {
			err = writeFile(cfg.Run.CSVPath, func(f *os.File) error {
				return callsim.WriteSample(f, sample)
			})
			if err != nil {
				return err
			}
		}

		err = report(out, cfg, runID, sample)
		count.LogCounters()

		return err
	},
}

var reportCmd = &cobra.Command{
	Use:   "report FILE",
	Short: "Report on a sample written by simulate --csv",
	Args:  cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, _ []string) {
		bindReportFlags(cmd.Flags())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if err := cutoffsFlag(cmd, cfg); err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		sample, err := callsim.ReadSample(f)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %s calls\n", args[0], humanize.Comma(int64(len(sample))))

		return report(out, cfg, uuid.NewString(), sample)
	},
}

func init() {
	simulateCmd.Flags().IntP("sample-size", "n", 1000, "number of calls to simulate") //nolint:mnd
	simulateCmd.Flags().String("csv", "", "write the sample here, one value per line")
	bind("run.sample_size", simulateCmd.Flags().Lookup("sample-size"))
	bind("run.csv_path", simulateCmd.Flags().Lookup("csv"))

	for _, c := range []*cobra.Command{simulateCmd, reportCmd} {
		c.Flags().Float64Slice("cutoffs", callsim.DefaultCutoffs, "call times to report P[W<=c] and P[W>c] for")
		c.Flags().String("report", "", "write the estimates here as yaml")
		c.Flags().String("plot-dir", "", "write histogram.png and cdf.png here")
		c.Flags().Int("bins", 30, "histogram bins") //nolint:mnd
	}
}

// bindReportFlags binds the flags shared by simulate and report
// for the command that is running. Cutoffs are read by
// cutoffsFlag since viper sees a float slice flag as one string.
func bindReportFlags(fs *pflag.FlagSet) {
	bind("run.report_path", fs.Lookup("report"))
	bind("run.plot_dir", fs.Lookup("plot-dir"))
	bind("run.bins", fs.Lookup("bins"))
}

// cutoffsFlag overrides the configured cutoffs when --cutoffs is given.
func cutoffsFlag(cmd *cobra.Command, cfg *config.Config) error {
	if !cmd.Flags().Changed("cutoffs") {
		return nil
	}

	cutoffs, err := cmd.Flags().GetFloat64Slice("cutoffs")
	if err != nil {
		return err
	}

	cfg.Run.Cutoffs = cutoffs

	return nil
}

func bind(key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// report prints the estimates and writes the yaml report and
// charts when asked to.
func report(out io.Writer, cfg *config.Config, runID string, sample callsim.Sample) error {
	est, err := callsim.Estimate(sample, cfg.Run.Cutoffs)
	if err != nil {
		return err
	}

	if err := est.Fprint(out); err != nil {
		return err
	}

	if cfg.Run.ReportPath != "" {
		r := &callsim.Report{RunID: runID, Seed: cfg.Call.Generator.Seed, Estimates: est}

		err := writeFile(cfg.Run.ReportPath, func(f *os.File) error {
			return r.WriteYAML(f)
		})
		if err != nil {
			return err
		}
	}

	if cfg.Run.PlotDir == "" {
		return nil
	}

	if err := os.MkdirAll(cfg.Run.PlotDir, 0o755); err != nil { //nolint:mnd
		return err
	}

	h, err := chart.Histogram(sample, cfg.Run.Bins)
	if err != nil {
		return err
	}

	if err := chart.Save(h, filepath.Join(cfg.Run.PlotDir, "histogram.png")); err != nil {
		return err
	}

	c, err := chart.CDF(sample, float64(cfg.Call.MeanAnswerDelay), cfg.Run.Cutoffs)
	if err != nil {
		return err
	}

	return chart.Save(c, filepath.Join(cfg.Run.PlotDir, "cdf.png"))
}
