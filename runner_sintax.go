package main

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// SintaxTool runs usearch in two stages: a udb index build over the reference
// database, then the sintax classification of the query set against that index.
// The stages run back to back, so their runtimes add while the reported memory is
// the larger of the two peaks.
type SintaxTool struct {
	Bin          string
	PollInterval time.Duration
}

func (t *SintaxTool) Name() string { return "Sintax" }

// UdbPath derives the index location from the database path by replacing its
// extension with .udb.
func UdbPath(database string) string {
	return strings.TrimSuffix(database, filepath.Ext(database)) + ".udb"
}

func (t *SintaxTool) Run(query string, database string, outDir string, threads int) (RunResult, error) {
	udb := UdbPath(database)
	out := filepath.Join(outDir, "sintax.out")

	Logger.Infof("running %v index build: database=%v udb=%v", t.Name(), database, udb)
	index, err := Measure(t.PollInterval, t.Bin, "--makeudb_usearch", database, "--output", udb)
	if err != nil {
		return RunResult{}, err
	}
	Logger.Infof("running %v classification: query=%v udb=%v threads=%v", t.Name(), query, udb, threads)
	classify, err := Measure(t.PollInterval, t.Bin, "--sintax", query, "--db", udb, "--tabbedout", out, "--threads", strconv.Itoa(threads))
	if err != nil {
		return RunResult{}, err
	}
	return CombineStages(index, classify), nil
}

// CombineStages merges measurements of sequential stages: runtimes add, memory
// takes the maximum since the stages never overlap.
func CombineStages(a, b RunResult) RunResult {
	return RunResult{
		Seconds:     a.Seconds + b.Seconds,
		MemoryBytes: max(a.MemoryBytes, b.MemoryBytes),
	}
}
