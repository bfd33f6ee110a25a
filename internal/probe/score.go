package probe

// Summary is the aggregate stealth score derived from a result sequence. It is
// computed on demand and never stored, so recomputing it over the same
// immutable results always yields identical values.
type Summary struct {
	Passed     int
	Total      int
	Percentage float64
}

// Score computes the pass ratio over the full result sequence.
func Score(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		}
	}
	if s.Total > 0 {
		s.Percentage = float64(s.Passed) / float64(s.Total) * 100
	}
	return s
}

// FailuresBySeverity partitions failing results into severity buckets.
func FailuresBySeverity(results []Result) map[Severity][]Result {
	buckets := make(map[Severity][]Result)
	for _, r := range results {
		if !r.Passed {
			buckets[r.Severity] = append(buckets[r.Severity], r)
		}
	}
	return buckets
}

// FailureCounts returns the number of failing results per severity.
func FailureCounts(results []Result) map[Severity]int {
	counts := make(map[Severity]int)
	for _, r := range results {
		if !r.Passed {
			counts[r.Severity]++
		}
	}
	return counts
}
