// Command align3 computes the optimal three-way alignment of three FASTA
// sequences.
//
//	align3 [flags] a.fasta b.fasta c.fasta     build, solve, report
//	align3 -graph-out g.txt a.fasta b.fasta c.fasta   build, write graph only
//	align3 -from-graph g.txt                   read graph, solve, report
//
// The XML report goes to stdout (or -out). Logging goes to stderr via klog.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/align3/builder"
	"github.com/katalvlaran/align3/config"
	"github.com/katalvlaran/align3/dag"
	"github.com/katalvlaran/align3/interchange"
	"github.com/katalvlaran/align3/report"
	"github.com/katalvlaran/align3/sequence"
)

type options struct {
	configPath string
	graphOut   string
	fromGraph  string
	out        string
	global     bool
	workers    int
	noStats    bool
}

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	var opts options
	flag.StringVar(&opts.configPath, "config", "", "HCL settings file")
	flag.StringVar(&opts.graphOut, "graph-out", "", "write the built graph to this file and stop")
	flag.StringVar(&opts.fromGraph, "from-graph", "", "solve a graph file instead of building from FASTA")
	flag.StringVar(&opts.out, "out", "", "write the report here instead of stdout")
	flag.BoolVar(&opts.global, "global", false, "constrain the path to start at 0,0,0 and end at n1,n2,n3")
	flag.IntVar(&opts.workers, "workers", 0, "wavefront workers (0 keeps the config value)")
	flag.BoolVar(&opts.noStats, "no-stats", false, "omit edge weights and histogram from the report")
	verbosity := flag.String("v", "0", "klog verbosity")
	flag.Parse()
	fset.Set("v", *verbosity)

	err := run(opts, flag.Args(), os.Stdout)
	klog.Flush()
	if err != nil {
		klog.Errorf("align3: %v", err)
		klog.Flush()
		os.Exit(1)
	}
}

// run executes one invocation; stdout receives the report unless opts.out is set.
func run(opts options, args []string, stdout io.Writer) error {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
		klog.V(1).Infof("loaded settings from %s", opts.configPath)
	}
	if opts.global {
		cfg.ConstrainStart, cfg.ConstrainEnd = true, true
	}
	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}

	var (
		g      *dag.Graph
		source string
		err    error
	)
	switch {
	case opts.fromGraph != "":
		if len(args) != 0 {
			return errors.New("-from-graph takes no FASTA arguments")
		}
		source = opts.fromGraph
		if g, err = readGraph(opts.fromGraph); err != nil {
			return err
		}
	default:
		if len(args) != builder.SequenceCount {
			return errors.Errorf("need exactly %d FASTA files, got %d", builder.SequenceCount, len(args))
		}
		source = args[0] + "," + args[1] + "," + args[2]
		if g, err = buildGraph(args, cfg); err != nil {
			return err
		}
	}
	klog.V(1).Infof("graph: %d vertices, %d edges", g.VertexCount(), g.EdgeCount())

	if opts.graphOut != "" {
		return writeGraph(opts.graphOut, g)
	}

	res, err := g.Solve(cfg.SolveOptions()...)
	if err != nil {
		return errors.Wrap(err, "solve")
	}
	if res.Found {
		klog.V(1).Infof("score %g from %s to %s (%d columns)", res.Score, res.Start, res.End, len(res.Path))
	} else {
		klog.Infof("no path found")
	}

	doc := report.Document{File: source, Result: res}
	if !opts.noStats {
		doc.Histogram = g.Histogram()
	}

	w := stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return errors.Wrap(err, "create report")
		}
		defer f.Close()
		w = f
	}

	return report.Write(w, doc)
}

func buildGraph(paths []string, cfg config.Config) (*dag.Graph, error) {
	seqs := make([]builder.Sequence, len(paths))
	for i, p := range paths {
		s, err := sequence.LoadFASTA(p)
		if err != nil {
			return nil, err
		}
		klog.V(2).Infof("%s: %s, %d residues", p, s.ID, s.Len())
		seqs[i] = s
	}

	return builder.BuildSet(seqs, cfg.BuilderOptions()...)
}

func readGraph(path string) (*dag.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open graph")
	}
	defer f.Close()

	return interchange.Read(f)
}

func writeGraph(path string, g *dag.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create graph file")
	}
	if err := interchange.Write(f, g); err != nil {
		f.Close()
		return err
	}
	klog.V(1).Infof("wrote %s", path)

	return errors.Wrap(f.Close(), "close graph file")
}
