package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-fastbloom/scalable"
	"github.com/spf13/cobra"
)

const maxLineBytes = 1 << 20

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return sc
}

func newDedupCmd(ff *filterFlags) *cobra.Command {
	var showStats bool
	cmd := &cobra.Command{
		Use:   "dedup",
		Short: "Copy stdin to stdout, dropping lines already seen",
		Long: `Copy newline delimited elements from stdin to stdout, dropping every line
the filter reports as already seen. A false positive drops a line that was
in fact new, at a rate bounded by --error-rate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ff.newFilter(cmd)
			if err != nil {
				return err
			}
			log := logger.Sugar.WithServiceName("dedup")

			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()

			var read, unique int
			sc := newScanner(cmd.InOrStdin())
			for sc.Scan() {
				read++
				added, err := f.AddIfAbsent(sc.Bytes())
				if err != nil {
					return fmt.Errorf("line %d: %w", read, err)
				}
				if !added {
					continue
				}
				unique++
				if _, err := out.Write(sc.Bytes()); err != nil {
					return err
				}
				if err := out.WriteByte('\n'); err != nil {
					return err
				}
			}
			if err := sc.Err(); err != nil {
				return err
			}

			log.Infof("dedup: read=%d, unique=%d, layers=%d", read, unique, f.NumLayers())
			if showStats {
				fmt.Fprint(cmd.ErrOrStderr(), f.Stats().String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showStats, "stats", false, "print filter statistics to stderr when done")
	return cmd
}

func newCheckCmd(ff *filterFlags) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "check --from file [element...]",
		Short: "Load elements from a file, then report which arguments may be present",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ff.newFilter(cmd)
			if err != nil {
				return err
			}
			if err := loadFile(f, from); err != nil {
				return err
			}
			for _, a := range args {
				verdict := "absent"
				if f.IncludeString(a) {
					verdict = "present"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a, verdict)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "file of newline delimited elements to load")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func loadFile(f *scalable.Filter, path string) error {
	r, err := os.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	sc := newScanner(r)
	for sc.Scan() {
		if err := f.Add(sc.Bytes()); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return sc.Err()
}

func newStatsCmd(ff *filterFlags) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Add synthetic elements and print the resulting layer statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ff.newFilter(cmd)
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				if err := f.AddString(fmt.Sprintf("item-%d", i)); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), f.Stats().String())
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 100000, "number of synthetic elements to add")
	return cmd
}
