package main

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-fastbloom/scalable"
	"github.com/spf13/cobra"
)

// filterFlags are the filter construction flags shared by every sub command.
type filterFlags struct {
	logLevel      string
	preset        string
	errorRate     float64
	capacity      int
	tightening    float64
	maxLayerBytes uint64
}

func newRootCmd() *cobra.Command {
	ff := &filterFlags{}

	rootCmd := &cobra.Command{
		Use:           "fastbloom",
		Short:         "Scalable Bloom filter tools",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.New(ff.logLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.OnExit()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&ff.logLevel, "log-level", "INFO", "log level (DEBUG, INFO, NOOP, ...)")
	pf.StringVar(&ff.preset, "preset", "", "start from a named configuration: emails, urls or dedup")
	pf.Float64Var(&ff.errorRate, "error-rate", 0.01, "target false positive rate of the whole filter")
	pf.IntVar(&ff.capacity, "capacity", scalable.DefaultInitialCapacity, "capacity of the first layer")
	pf.Float64Var(&ff.tightening, "tightening", scalable.DefaultTightening, "error rate ratio between successive layers")
	pf.Uint64Var(&ff.maxLayerBytes, "max-layer-bytes", 0, "refuse to allocate layers larger than this (0 for no limit)")

	rootCmd.AddCommand(newDedupCmd(ff), newCheckCmd(ff), newStatsCmd(ff))
	return rootCmd
}

// config resolves the preset, if any, then applies explicitly set flags on
// top of it.
func (ff *filterFlags) config(cmd *cobra.Command) (scalable.Config, error) {
	cfg := scalable.Config{
		ErrorRate:       ff.errorRate,
		InitialCapacity: ff.capacity,
		Tightening:      ff.tightening,
	}
	if ff.preset == "" {
		return cfg, nil
	}

	preset, err := scalable.Preset(ff.preset)
	if err != nil {
		return scalable.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("error-rate") {
		preset.ErrorRate = ff.errorRate
	}
	if flags.Changed("capacity") {
		preset.InitialCapacity = ff.capacity
	}
	if flags.Changed("tightening") {
		preset.Tightening = ff.tightening
	}
	return preset, nil
}

func (ff *filterFlags) newFilter(cmd *cobra.Command) (*scalable.Filter, error) {
	cfg, err := ff.config(cmd)
	if err != nil {
		return nil, err
	}
	return scalable.New(cfg, scalable.WithMaxLayerBytes(ff.maxLayerBytes))
}
