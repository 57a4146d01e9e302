package ports

// ResultSink persists a match result somewhere outside the process.
// The only shipped sink writes a flat, timestamped text file.
type ResultSink interface {
	// Write stores result and returns the location it was written to
	// (a file path for file sinks). A failed write is returned as-is;
	// sinks do not retry or clean up partial output.
	Write(result *MatchResult) (string, error)
}
