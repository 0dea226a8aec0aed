package driver

import (
	"context"
	"errors"
	"time"

	"github.com/vk/gidgo/internal/ctxlog"
	"github.com/vk/gidgo/internal/example"
)

// Result is the outcome of running one algorithm on one example.
type Result struct {
	Algorithm Algorithm
	Output    *example.Output
	Elapsed   time.Duration
	TimedOut  bool
	Correct   bool
	Work      int
	Space     int
}

// RunExample runs a single algorithm on the example with a wall-clock
// timeout. A timeout is reported in the result, not as an error; a timed
// out run is never correct.
func RunExample(ctx context.Context, ex *example.Example, a Algorithm, timeout time.Duration) Result {
	logger := ctxlog.FromContext(ctx)
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger.Debug("running algorithm", "example", ex.Name, "algorithm", a.String(), "updates", len(ex.Input))
	d := a.New()
	start := time.Now()
	out, err := ex.Run(runCtx, d)
	elapsed := time.Since(start)

	res := Result{Algorithm: a, Elapsed: elapsed}
	if err != nil {
		res.TimedOut = errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
		logger.Debug("run aborted", "example", ex.Name, "algorithm", a.String(), "err", err)
		return res
	}
	res.Output = out
	res.Correct = ex.Matches(out)
	res.Work = d.Work()
	res.Space = d.Space()
	logger.Debug("run finished",
		"example", ex.Name,
		"algorithm", a.String(),
		"elapsed", elapsed,
		"correct", res.Correct,
		"work", res.Work,
		"space", res.Space,
	)
	return res
}

// RunCompare runs each algorithm on the example in turn, each under its
// own timeout.
func RunCompare(ctx context.Context, ex *example.Example, algs []Algorithm, timeout time.Duration) []Result {
	out := make([]Result, 0, len(algs))
	for _, a := range algs {
		out = append(out, RunExample(ctx, ex, a, timeout))
	}
	return out
}
