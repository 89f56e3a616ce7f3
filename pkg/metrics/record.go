package metrics

// Package-level helpers recording against the global manager. Keeping the
// call sites one-liners mirrors how the rest of the codebase logs.

// RecordExtraction counts one skill extraction.
func RecordExtraction() { globalManager.extractions.Inc() }

// RecordRecommendation counts one recommendation ranking.
func RecordRecommendation() { globalManager.recommendations.Inc() }

// RecordGapAnalysis counts one skill-gap analysis.
func RecordGapAnalysis() { globalManager.gapAnalyses.Inc() }

// RecordResumeScored counts one rubric evaluation.
func RecordResumeScored() { globalManager.resumesScored.Inc() }

// RecordValidationFault counts a caller fault for the given operation.
func RecordValidationFault(operation string) {
	globalManager.validationFaults.WithLabelValues(operation).Inc()
}

// RecordSnapshotReload records a successful reload and its duration.
func RecordSnapshotReload(seconds float64) {
	globalManager.snapshotReloads.Inc()
	globalManager.snapshotReloadDuration.Observe(seconds)
}

// RecordSnapshotReloadFailure counts a failed reload attempt.
func RecordSnapshotReloadFailure() { globalManager.snapshotReloadFailures.Inc() }

// UpdateSnapshotCounts sets the current snapshot size gauges.
func UpdateSnapshotCounts(postings, skills int) {
	globalManager.snapshotPostings.Set(float64(postings))
	globalManager.snapshotSkills.Set(float64(skills))
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes one request's duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets the allocated-heap gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime observes the average GC pause in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}
