package engine

// capBatch truncates a batch to at most max items, keeping the original
// order so runs are reproducible and auditable. A non-positive max means
// no cap.
func capBatch[T any](items []T, max int) []T {
	if max <= 0 || len(items) <= max {
		return items
	}
	return items[:max]
}
