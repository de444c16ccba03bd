package main

import (
	"strconv"
	"time"
)

// RaxtaxTool runs raxtax in a single stage.
type RaxtaxTool struct {
	Bin          string
	PollInterval time.Duration
}

func (t *RaxtaxTool) Name() string { return "RAxTax" }

func (t *RaxtaxTool) Run(query string, database string, outDir string, threads int) (RunResult, error) {
	Logger.Infof("running %v: query=%v database=%v threads=%v", t.Name(), query, database, threads)
	return Measure(t.PollInterval, t.Bin, "-i", query, "-d", database, "-o", outDir, "-t", strconv.Itoa(threads))
}
