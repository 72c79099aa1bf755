package conformance

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/writ/errors"
)

// Invoker calls a named export with generic arguments.
type Invoker interface {
	Invoke(ctx context.Context, name string, args ...any) (any, error)
}

// Runner executes cases against an Invoker.
type Runner struct {
	invoker Invoker
	logger  *zap.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used to report each case.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewRunner(inv Invoker, opts ...RunnerOption) *Runner {
	r := &Runner{invoker: inv, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes cases in order. A cancelled context stops the run; cases
// not reached are reported as failed with the context error.
func (r *Runner) Run(ctx context.Context, cases []Case) Report {
	report := Report{Results: make([]Result, 0, len(cases))}
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			report.Results = append(report.Results, Result{Case: c, Err: err})
			continue
		}
		start := time.Now()
		res := r.runCase(ctx, c)
		r.logger.Debug("case",
			zap.String("case", c.Name),
			zap.String("export", c.Export),
			zap.Bool("passed", res.Passed),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(res.Err))
		report.Results = append(report.Results, res)
	}
	return report
}

// RunOne executes a single case.
func (r *Runner) RunOne(ctx context.Context, c Case) Result {
	return r.runCase(ctx, c)
}

func (r *Runner) runCase(ctx context.Context, c Case) Result {
	value, err := r.invoker.Invoke(ctx, c.Export, c.Args...)
	res := Result{Case: c, Value: value, Err: err}

	if c.WantErr || c.WantKind != "" {
		if err == nil {
			res.Err = errors.New(errors.PhaseExpect, errors.KindMismatch).
				Op(c.Export).
				Value(value).
				Detail("expected an error, call succeeded").
				Build()
			return res
		}
		if c.WantKind != "" {
			var werr *errors.Error
			if !stderrors.As(err, &werr) || werr.Kind != c.WantKind {
				res.Err = errors.New(errors.PhaseExpect, errors.KindMismatch).
					Op(c.Export).
					Cause(err).
					Detail("expected a %s error", c.WantKind).
					Build()
				return res
			}
		}
		res.Passed = true
		return res
	}
	if err != nil {
		return res
	}
	if c.Expect == nil {
		res.Passed = true
		return res
	}

	ok, err := Match(c.Expect, value)
	if err != nil {
		res.Err = err
		return res
	}
	if !ok {
		res.Err = errors.Mismatch(c.Export, c.Expect, value)
		return res
	}
	res.Passed = true
	return res
}
