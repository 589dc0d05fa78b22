// Package config loads run settings for the aligner from an HCL file.
//
//	scoring {
//	  gap_cost = -6
//	}
//	limits {
//	  max_vertices = 2000000
//	  max_edges    = 14000000
//	}
//	solve {
//	  constrain_start = true
//	  constrain_end   = true
//	  workers         = 4
//	}
//
// Every block and attribute is optional; missing values keep their defaults.
// Expressions may read the process environment through the env object, e.g.
// workers = env.ALIGN3_WORKERS.
package config

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/align3/builder"
	"github.com/katalvlaran/align3/dag"
	"github.com/katalvlaran/align3/scoring"
)

// ErrInvalidConfig reports a value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the resolved run configuration.
type Config struct {
	GapCost        int
	MaxVertices    uint64
	MaxEdges       uint64
	ConstrainStart bool
	ConstrainEnd   bool
	Workers        int
}

// Default returns the built-in settings: BLOSUM62 gap cost, builder ceilings,
// no constraints, sequential solve.
func Default() Config {
	return Config{
		GapCost:     scoring.DefaultGapCost,
		MaxVertices: builder.DefaultMaxVertices,
		MaxEdges:    builder.DefaultMaxEdges,
		Workers:     1,
	}
}

// hclFile is the decoding schema; nil pointers mean "not set".
type hclFile struct {
	Scoring *hclScoring `hcl:"scoring,block"`
	Limits  *hclLimits  `hcl:"limits,block"`
	Solve   *hclSolve   `hcl:"solve,block"`
}

type hclScoring struct {
	GapCost *int `hcl:"gap_cost,optional"`
}

type hclLimits struct {
	MaxVertices *int64 `hcl:"max_vertices,optional"`
	MaxEdges    *int64 `hcl:"max_edges,optional"`
}

type hclSolve struct {
	ConstrainStart *bool `hcl:"constrain_start,optional"`
	ConstrainEnd   *bool `hcl:"constrain_end,optional"`
	Workers        *int  `hcl:"workers,optional"`
}

// Option configures Parse and Load.
type Option func(*parseConfig)

type parseConfig struct {
	env map[string]string
}

// WithEnv replaces the process environment exposed as env.
func WithEnv(env map[string]string) Option {
	return func(c *parseConfig) { c.env = env }
}

// Load reads and parses the HCL file at path.
func Load(path string, opts ...Option) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}

	return Parse(src, path, opts...)
}

// Parse decodes src (named filename in diagnostics) over Default().
func Parse(src []byte, filename string, opts ...Option) (Config, error) {
	pc := parseConfig{env: environ()}
	for _, opt := range opts {
		opt(&pc)
	}

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, errors.Wrapf(diags, "config: parse %s", filename)
	}

	var raw hclFile
	if diags = gohcl.DecodeBody(file.Body, evalContext(pc.env), &raw); diags.HasErrors() {
		return Config{}, errors.Wrapf(diags, "config: decode %s", filename)
	}

	cfg := Default()
	raw.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config: %s", filename)
	}

	return cfg, nil
}

func (f *hclFile) apply(cfg *Config) {
	if s := f.Scoring; s != nil && s.GapCost != nil {
		cfg.GapCost = *s.GapCost
	}
	if l := f.Limits; l != nil {
		if l.MaxVertices != nil {
			cfg.MaxVertices = clampCount(*l.MaxVertices)
		}
		if l.MaxEdges != nil {
			cfg.MaxEdges = clampCount(*l.MaxEdges)
		}
	}
	if s := f.Solve; s != nil {
		if s.ConstrainStart != nil {
			cfg.ConstrainStart = *s.ConstrainStart
		}
		if s.ConstrainEnd != nil {
			cfg.ConstrainEnd = *s.ConstrainEnd
		}
		if s.Workers != nil {
			cfg.Workers = *s.Workers
		}
	}
}

// clampCount maps negative counts to 0 so Validate rejects them.
func clampCount(n int64) uint64 {
	if n < 0 {
		return 0
	}

	return uint64(n)
}

// Validate checks ranges: ceilings ≥ 1, workers ≥ 1.
func (c Config) Validate() error {
	switch {
	case c.MaxVertices == 0:
		return errors.Wrap(ErrInvalidConfig, "max_vertices must be ≥ 1")
	case c.MaxEdges == 0:
		return errors.Wrap(ErrInvalidConfig, "max_edges must be ≥ 1")
	case c.Workers < 1:
		return errors.Wrapf(ErrInvalidConfig, "workers must be ≥ 1, got %d", c.Workers)
	}

	return nil
}

// BuilderOptions translates c into builder options.
func (c Config) BuilderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{
		builder.WithScorer(scoring.NewModel(scoring.WithGapCost(c.GapCost))),
		builder.WithMaxVertices(c.MaxVertices),
		builder.WithMaxEdges(c.MaxEdges),
	}
	if c.ConstrainStart {
		opts = append(opts, builder.WithStartAtOrigin())
	}
	if c.ConstrainEnd {
		opts = append(opts, builder.WithEndAtTerminal())
	}

	return opts
}

// SolveOptions translates c into solve options.
func (c Config) SolveOptions() []dag.SolveOption {
	return []dag.SolveOption{dag.WithWorkers(c.Workers)}
}

func evalContext(env map[string]string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vars[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vars)},
	}
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	return env
}
