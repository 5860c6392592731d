// Package main is the entry point for the distree command: it extracts
// a pairwise distance matrix from a phylogeny, in parallel and without
// holding the full matrix in memory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/distree/distree/distance"
	"github.com/distree/distree/distmat"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		format      string
		output      string
		doMidpoint  bool
		doLMM       bool
		doTopology  bool
		workers     int
		showVersion bool
	)

	flag.StringVar(&format, "format", "newick", "tree file format (only 'newick' is supported)")
	flag.StringVar(&output, "output", "", "path to write the TSV output file (defaults to stdout)")
	flag.StringVar(&output, "o", "", "path to write the TSV output file (shorthand)")
	flag.BoolVar(&doMidpoint, "midpoint", false, "midpoint-root the tree before computing distances")
	flag.BoolVar(&doLMM, "lmm", false, "produce the var-covar matrix C (depth of the MRCA in branch lengths)")
	flag.BoolVar(&doTopology, "topology", false, "ignore branch lengths; use purely topological distances")
	flag.IntVar(&workers, "workers", 0, "worker pool size (0 = number of CPUs)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Println("distree", version)

		return 0
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if flag.NArg() != 1 {
		flag.Usage()

		return 2
	}
	treePath := flag.Arg(0)

	if format != "newick" {
		logger.Error("unsupported tree format", "format", format)

		return 1
	}

	data, err := os.ReadFile(treePath)
	if err != nil {
		logger.Error("cannot read tree file", "path", treePath, "err", err)

		return 1
	}

	var sink *os.File
	if output == "" {
		sink = os.Stdout
	} else {
		sink, err = os.Create(output)
		if err != nil {
			logger.Error("cannot create output file", "path", output, "err", err)

			return 1
		}
		defer sink.Close()
	}

	// Interrupts cancel remaining row production; flushed rows remain.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mode := distance.ModeOf(doLMM, doTopology)
	opts := []distmat.Option{
		distmat.WithMode(mode),
		distmat.WithWorkers(workers),
	}
	if doMidpoint {
		opts = append(opts, distmat.WithMidpoint())
	}

	if err = distmat.Compute(ctx, string(data), sink, opts...); err != nil {
		logger.Error("computation failed", "path", treePath, "mode", mode.String(), "err", err)

		return 1
	}

	if output != "" {
		if err = sink.Close(); err != nil {
			logger.Error("cannot finalize output file", "path", output, "err", err)

			return 1
		}
	}

	return 0
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"distree %s - extracts a distance matrix from a phylogeny (parallel, low-memory)\n\n"+
			"Usage:\n  distree [flags] <phylogeny>\n\n"+
			"Arguments:\n  <phylogeny>\tpath to the tree file in Newick format\n\nFlags:\n",
		version)
	flag.PrintDefaults()
}
