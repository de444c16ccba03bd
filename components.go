package main

// RunResult is the measurement of one tool invocation: wall-clock runtime and the
// peak resident memory observed across all polling samples.
type RunResult struct {
	Seconds     float64
	MemoryBytes uint64
}

// Tool turns a (query, database, output directory, thread count) tuple into one or
// more external invocations and reports their combined measurement.
type Tool interface {
	Name() string
	Run(query string, database string, outDir string, threads int) (RunResult, error)
}

// ResultRow is one line of sweep output keyed by the sweep's independent variable.
type ResultRow struct {
	Param       int
	Seconds     float64
	MemoryBytes uint64
	Tool        string
}
