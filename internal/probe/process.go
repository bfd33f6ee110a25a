package probe

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/example/stealthprobe/internal/target"
)

// legitimateParents are the parents a benign desktop process is expected to
// have. Matching strips a trailing ".exe" so the same list covers reports from
// different enumeration paths.
var legitimateParents = map[string]bool{
	"explorer": true,
	"services": true,
	"winlogon": true,
	"dwm":      true,
}

// legitimateKeywords are name fragments that make a process blend in with
// ordinary system components.
var legitimateKeywords = []string{
	"windows", "system", "service", "update", "security",
	"network", "audio", "display", "manager", "configuration",
}

// processListProbe re-enumerates the process table independently of the
// snapshot, the way any process-listing library would.
func (s *Suite) processListProbe(ctx context.Context, snap *target.Snapshot) Result {
	const name = "Process List Detection"

	procs, err := s.Inspector.Processes()
	if err != nil {
		return platformFailure(name, err)
	}

	var matched []string
	for _, p := range procs {
		procName, err := p.Name()
		if err != nil {
			continue
		}
		if snap.MatchesProcessName(procName) {
			matched = append(matched, procName)
		}
	}

	if len(matched) > 0 {
		return fail(name,
			fmt.Sprintf("found %d processes: %s", len(matched), strings.Join(matched, ", ")),
			SeverityHigh)
	}
	return pass(name, "no processes detected by process enumeration")
}

// processTreeProbe flags matched processes whose immediate parent is not one
// of the usual desktop ancestors.
func (s *Suite) processTreeProbe(ctx context.Context, snap *target.Snapshot) Result {
	const name = "Process Tree Analysis"

	if len(snap.Processes) == 0 {
		return pass(name, "no matched processes to analyze")
	}

	var suspicious []string
	for _, p := range snap.Processes {
		parentName, err := p.ParentName()
		if err != nil || parentName == "" {
			continue
		}
		trimmed := strings.TrimSuffix(strings.ToLower(parentName), ".exe")
		if !legitimateParents[trimmed] {
			childName, err := p.Name()
			if err != nil {
				childName = fmt.Sprintf("pid %d", p.PID())
			}
			suspicious = append(suspicious, fmt.Sprintf("%s<-%s", childName, parentName))
		}
	}

	if len(suspicious) > 0 {
		return fail(name,
			fmt.Sprintf("suspicious parent processes: %s", strings.Join(suspicious, ", ")),
			SeverityMedium)
	}
	return pass(name, "process tree appears legitimate")
}

// networkProbe flags open connections whose remote endpoint is not loopback.
func (s *Suite) networkProbe(ctx context.Context, snap *target.Snapshot) Result {
	const name = "Network Connections"

	if len(snap.Processes) == 0 {
		return pass(name, "no matched processes to audit connections for")
	}

	total := 0
	var external []string
	for _, p := range snap.Processes {
		conns, err := p.Connections()
		if err != nil {
			continue
		}
		total += len(conns)
		for _, c := range conns {
			if c.RemoteIP == "" {
				continue
			}
			if ip := net.ParseIP(c.RemoteIP); ip != nil && ip.IsLoopback() {
				continue
			}
			external = append(external, fmt.Sprintf("%s:%d", c.RemoteIP, c.RemotePort))
		}
	}

	if len(external) > 0 {
		sample := external
		if len(sample) > 3 {
			sample = sample[:3]
		}
		return fail(name,
			fmt.Sprintf("external connections detected: %s", strings.Join(sample, ", ")),
			SeverityMedium)
	}
	if total > 0 {
		return pass(name, fmt.Sprintf("only loopback connections detected (%d)", total))
	}
	return pass(name, "no network connections detected")
}

// memoryProbe flags matched processes whose resident set exceeds the limit.
func (s *Suite) memoryProbe(ctx context.Context, snap *target.Snapshot) Result {
	const name = "Memory Usage"

	if len(snap.Processes) == 0 {
		return pass(name, "no matched processes to measure")
	}

	totalMB := 0.0
	var heavy []string
	for _, p := range snap.Processes {
		rss, err := p.ResidentMemory()
		if err != nil {
			continue
		}
		mb := float64(rss) / 1024 / 1024
		totalMB += mb
		if mb > memoryLimitMB {
			procName, err := p.Name()
			if err != nil {
				procName = fmt.Sprintf("pid %d", p.PID())
			}
			heavy = append(heavy, fmt.Sprintf("%s: %.1fMB", procName, mb))
		}
	}

	if len(heavy) > 0 {
		return fail(name,
			fmt.Sprintf("high memory usage detected: %s", strings.Join(heavy, ", ")),
			SeverityMedium)
	}
	return pass(name, fmt.Sprintf("normal memory usage: %.1fMB total", totalMB))
}

// nameLegitimacyProbe checks whether matched process names contain any
// legitimate-sounding keyword.
func (s *Suite) nameLegitimacyProbe(ctx context.Context, snap *target.Snapshot) Result {
	const name = "Process Name Legitimacy"

	if len(snap.Processes) == 0 {
		return pass(name, "no matched processes to inspect")
	}

	var suspicious []string
	for _, p := range snap.Processes {
		procName, err := p.Name()
		if err != nil {
			continue
		}
		lower := strings.ToLower(procName)
		legitimate := false
		for _, keyword := range legitimateKeywords {
			if strings.Contains(lower, keyword) {
				legitimate = true
				break
			}
		}
		if !legitimate {
			suspicious = append(suspicious, procName)
		}
	}

	if len(suspicious) > 0 {
		return fail(name,
			fmt.Sprintf("suspicious process names: %s", strings.Join(suspicious, ", ")),
			SeverityMedium)
	}
	return pass(name, "process names appear legitimate")
}
