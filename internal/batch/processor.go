// Package batch runs the strong column weak beam check over every joint of a
// table and appends the verdict columns.
package batch

import (
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alexiusacademia/goscwb/internal/scwb"
	"github.com/alexiusacademia/goscwb/internal/table"
)

// DefaultOutputName is written next to the input file when no output path is given
const DefaultOutputName = "results.csv"

// Processor applies a Checker to joint tables
type Processor struct {
	checker *scwb.Checker
	log     *zap.Logger
	newID   func() string
}

// Option configures a Processor
type Option func(*Processor)

// WithLogger sets the logger used for progress and diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(p *Processor) { p.log = l }
}

// WithRunID overrides the run ID generator. Useful for tests.
func WithRunID(fn func() string) Option {
	return func(p *Processor) { p.newID = fn }
}

// New creates a processor for checker
func New(checker *scwb.Checker, opts ...Option) *Processor {
	p := &Processor{
		checker: checker,
		log:     zap.NewNop(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Summary counts the joints that passed
type Summary struct {
	RunID  string
	Factor float64
	Safe   int
	Total  int
}

// Output is the augmented table together with the per-joint results
type Output struct {
	Table   *table.Table
	Results []scwb.Result
	Summary Summary
}

// Process reads the joint table at path and checks every row. Nothing is
// returned unless the whole table was read and parsed.
func (p *Processor) Process(path string) (*Output, error) {
	runID := p.newID()
	log := p.log.With(zap.String("run_id", runID), zap.String("input", path))
	log.Info("batch.start", zap.Float64("factor", p.checker.Factor()))

	in, err := table.ReadFile(path)
	if err != nil {
		log.Warn("batch.read_failed", zap.Error(err))
		return nil, err
	}

	out := p.Apply(in)
	out.Summary.RunID = runID

	for i, r := range out.Results {
		log.Debug("batch.row",
			zap.String("joint_id", in.Records[i].ID),
			zap.Float64("required_mc", r.RequiredMC),
			zap.Bool("is_safe", r.IsSafe))
	}
	log.Info("batch.done",
		zap.Int("total", out.Summary.Total),
		zap.Int("safe", out.Summary.Safe))
	return out, nil
}

// Apply checks every record of a parsed table, preserving row order. Result
// columns already present in the input are replaced.
func (p *Processor) Apply(in *table.Table) *Output {
	base := in.Without(table.ResultColumns...)

	t := &table.Table{
		Header:  append(append([]string{}, base.Header...), table.ResultColumns...),
		Rows:    make([][]string, 0, base.Len()),
		Records: base.Records,
	}
	results := make([]scwb.Result, 0, base.Len())
	summary := Summary{Factor: p.checker.Factor()}

	for i, rec := range base.Records {
		r := p.checker.Check(rec.SumMC, rec.SumMB)
		results = append(results, r)

		row := make([]string, 0, len(t.Header))
		row = append(row, base.Rows[i]...)
		row = append(row, r.FormatRatio(), strconv.FormatBool(r.IsSafe), r.Message)
		t.Rows = append(t.Rows, row)

		summary.Total++
		if r.IsSafe {
			summary.Safe++
		}
	}

	return &Output{Table: t, Results: results, Summary: summary}
}

// Run processes inputPath and writes the augmented table to outputPath.
// An empty outputPath means results.csv next to the input. No output file is
// written when processing fails.
func (p *Processor) Run(inputPath, outputPath string) (*Output, error) {
	out, err := p.Process(inputPath)
	if err != nil {
		return nil, err
	}

	if outputPath == "" {
		outputPath = OutputPathFor(inputPath)
	}
	if err := table.WriteFile(outputPath, out.Table); err != nil {
		p.log.Error("batch.write_failed", zap.String("output", outputPath), zap.Error(err))
		return nil, err
	}
	p.log.Info("batch.written", zap.String("run_id", out.Summary.RunID), zap.String("output", outputPath))
	return out, nil
}

// OutputPathFor returns the default output path for an input file
func OutputPathFor(inputPath string) string {
	return filepath.Join(filepath.Dir(inputPath), DefaultOutputName)
}
