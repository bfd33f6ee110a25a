package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/example/stealthprobe/internal/target"
)

// Observer receives each result as soon as its probe completes.
type Observer func(Result)

// RunAll executes the probes strictly sequentially in catalogue order against
// the shared read-only snapshot. Exactly one result is appended per probe, no
// matter what happens inside it; a panicking platform call is converted into a
// passing medium-severity result rather than aborting the run.
func RunAll(ctx context.Context, probes []Probe, snap *target.Snapshot, obs Observer) []Result {
	results := make([]Result, 0, len(probes))
	for _, p := range probes {
		r := runSafely(ctx, p, snap)
		results = append(results, r)
		if obs != nil {
			obs(r)
		}
	}
	return results
}

func runSafely(ctx context.Context, p Probe, snap *target.Snapshot) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Result{
				Test:      p.Name,
				Passed:    true,
				Details:   fmt.Sprintf("probe aborted by platform error: %v", rec),
				Severity:  SeverityMedium,
				Timestamp: time.Now().UTC(),
			}
		}
	}()

	res = p.Run(ctx, snap)
	if res.Test == "" {
		res.Test = p.Name
	}
	if res.Timestamp.IsZero() {
		res.Timestamp = time.Now().UTC()
	}
	return res
}
