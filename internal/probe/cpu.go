package probe

import (
	"context"
	"fmt"

	"github.com/example/stealthprobe/internal/target"
)

// cpuProbe averages CPU usage across the matched processes over a fixed
// polling window. This is the one deliberately blocking probe: measuring CPU%
// requires a sampling interval, so the run's wall-clock time is dominated by
// the Samples x Interval wait.
func (s *Suite) cpuProbe(ctx context.Context, snap *target.Snapshot) Result {
	const name = "CPU Usage"

	if len(snap.Processes) == 0 {
		return pass(name, "no matched processes to sample")
	}

	var samples []float64
	for i := 0; i < s.CPU.Samples; i++ {
		total := 0.0
		active := 0
		for _, p := range snap.Processes {
			pct, err := p.CPUPercent()
			if err != nil {
				continue
			}
			total += pct
			active++
		}
		if active > 0 {
			samples = append(samples, total/float64(active))
		}
		s.CPU.Sleep(s.CPU.Interval)
	}

	if len(samples) == 0 {
		return pass(name, "no CPU usage data available")
	}

	sum := 0.0
	max := samples[0]
	for _, v := range samples {
		sum += v
		if v > max {
			max = v
		}
	}
	avg := sum / float64(len(samples))

	if max > cpuThresholdPct {
		return fail(name,
			fmt.Sprintf("high CPU usage detected: avg=%.1f%%, max=%.1f%%", avg, max),
			SeverityMedium)
	}
	return pass(name, fmt.Sprintf("normal CPU usage: avg=%.1f%%, max=%.1f%%", avg, max))
}
