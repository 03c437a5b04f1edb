package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/avoronkov/boxlist/types"
	"github.com/spf13/cobra"
)

type options struct {
	file   string
	config string
	trace  bool
	stat   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "boxlist [values...]",
		Short: "build cons lists of integers and print them",
		Long: `Builds Cons(value, rest) lists terminated by Nil and prints them.
Without values the demo list 1 2 3 is printed.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "",
		"read list literals like (1 2 3) from file (\"-\" for stdin)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "",
		"path of config file (default "+DefaultConfigFile+" if present)")
	cmd.Flags().BoolVarP(&opts.trace, "trace", "t", false,
		"trace list construction")
	cmd.Flags().BoolVarP(&opts.stat, "stat", "s", false,
		"print length and node size after each list")
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := LoadConfig(opts.config)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("trace") {
		cfg.Trace = opts.trace
	}
	if cmd.Flags().Changed("stat") {
		cfg.Stat = opts.stat
	}
	if cfg.Trace {
		log.SetOutput(cmd.ErrOrStderr())
	} else {
		log.SetOutput(io.Discard)
	}

	d := NewDumper(cmd.OutOrStdout(), cfg.ListPrefix())
	d.UseStat(cfg.Stat)

	if opts.file != "" {
		if len(args) > 0 {
			return fmt.Errorf("Cannot use both --file and values")
		}
		return dumpFile(cmd, d, opts.file)
	}

	var l types.List
	switch {
	case len(args) > 0:
		l, err = parseValues(args)
		if err != nil {
			return err
		}
	case len(cfg.List) > 0:
		l = types.MakeList(cfg.List...)
	default:
		l = demoList()
	}
	return d.Dump(l)
}

func dumpFile(cmd *cobra.Command, d *Dumper, fname string) error {
	if fname == "-" {
		return d.DumpAll(NewParser(cmd.InOrStdin()))
	}
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := d.DumpAll(NewParser(f)); err != nil {
		return fmt.Errorf("%v: %w", fname, err)
	}
	return nil
}

func parseValues(args []string) (types.List, error) {
	var maker types.Int64Maker
	values := make([]int64, 0, len(args))
	for _, arg := range args {
		n, ok := maker.ParseInt(arg)
		if !ok {
			return nil, fmt.Errorf("Expected integer, found %q", arg)
		}
		values = append(values, int64(n))
	}
	return types.MakeList(values...), nil
}

func doMain() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(doMain())
}
