// -*- tab-width:2 -*-

// Package main is the callsim command: it simulates a batch of
// redialed customer service calls and reports on their total time.
package main

import (
	"fmt"
	"os"

	count "github.com/jayalane/go-counter"
	ll "github.com/jayalane/go-lll"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	callsim "github.com/jayalane/go-callsim"
	"github.com/jayalane/go-callsim/internal/config"
)

var (
	cfgFile string
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "callsim",
	Short: "Simulate redialing an unreliable customer service line",
	Long: `callsim places simulated calls against a line that is busy,
unanswered or slow to pick up, redials up to a fixed number of times,
and reports the distribution of the total time spent.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(traceCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().String("log-level", "none", "log level: none, network, state or all")
	rootCmd.PersistentFlags().Int64("seed", callsim.DefaultGeneratorConf().Seed, "generator seed")
	rootCmd.PersistentFlags().Bool("validate", false, "fail on a draw that normalizes outside [0,1)")

	bind("run.log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	bind("call.generator.seed", rootCmd.PersistentFlags().Lookup("seed"))
	bind("call.generator.validate", rootCmd.PersistentFlags().Lookup("validate"))
}

// loadConfig reads the configuration and sets up logging and counters.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWith(v, cfgFile)
	if err != nil {
		return nil, err
	}

	ll.SetWriter(os.Stderr)
	callsim.InitWithLogger(ll.Init("CALLSIM", cfg.Run.LogLevel))
	count.SetResolution(count.HighRes)

	return cfg, nil
}

// writeFile creates path and hands it to write.
func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		_ = f.Close()

		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
