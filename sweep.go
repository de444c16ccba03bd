package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sweep drives one benchmark campaign: for every grid point and repetition it
// resamples the input collection, runs every tool on the fresh split, and records
// one result row per tool. Everything is strictly sequential; the first error
// aborts the sweep, leaving already-recorded rows in place.
type Sweep struct {
	Input       string
	OutputDir   string
	Repetitions int
	FixedQuery  bool
	Tools       []Tool

	results *Results
	storage *Storage
}

// RunSampleSizes varies the sample size at a fixed thread count.
func (s *Sweep) RunSampleSizes(sizes []int, threads int) error {
	return s.run("SampleSize", sizes, func(size int) (int, int) { return size, threads })
}

// RunThreadCounts varies the thread count at a fixed sample size.
func (s *Sweep) RunThreadCounts(counts []int, sampleSize int) error {
	return s.run("Threads", counts, func(count int) (int, int) { return sampleSize, count })
}

func (s *Sweep) run(independent string, points []int, grid func(point int) (numSamples, threads int)) error {
	if err := os.MkdirAll(s.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %v: %w", s.OutputDir, err)
	}

	info := HostStat()
	Logger.Infof("start sweep over %v %v, %v repetitions", independent, points, s.Repetitions)
	Logger.Infof("host stat: %+v", info)

	results, err := OpenResults(filepath.Join(s.OutputDir, CsvName), independent)
	if err != nil {
		return err
	}
	defer results.Close()
	s.results = results

	if url := StringEnv("RESULTS_DB_URL", ""); url != "" {
		storage, err := OpenStorage(url, independent, info.Meta())
		if err != nil {
			Logger.Errorf("failed to open remote results storage, continuing with CSV only: %v", err)
		} else {
			defer storage.Close()
			s.storage = storage
		}
	}

	for _, point := range points {
		numSamples, threads := grid(point)
		for rep := 1; rep <= s.Repetitions; rep++ {
			Logger.Infof("%v=%v repetition %v/%v", independent, point, rep, s.Repetitions)
			if err := s.runPoint(point, numSamples, threads, rep); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Sweep) runPoint(param, numSamples, threads, rep int) error {
	refPath := filepath.Join(s.OutputDir, fmt.Sprintf("%v_90pct_rep%v.fasta", param, rep))
	queryPath := filepath.Join(s.OutputDir, fmt.Sprintf("%v_10pct_rep%v.fasta", param, rep))
	if err := SampleFasta(s.Input, numSamples, refPath, queryPath, s.FixedQuery); err != nil {
		return err
	}

	for _, tool := range s.Tools {
		toolDir := filepath.Join(s.OutputDir, fmt.Sprintf("%v_%v_rep%v", strings.ToLower(tool.Name()), param, rep))
		if err := os.MkdirAll(toolDir, 0o755); err != nil {
			return fmt.Errorf("failed to create tool output directory %v: %w", toolDir, err)
		}
		result, err := tool.Run(queryPath, refPath, toolDir, threads)
		if err != nil {
			return fmt.Errorf("failed to run %v: %w", tool.Name(), err)
		}
		Logger.Infof("%v runtime: %.2f seconds, max memory: %.2f MB",
			tool.Name(), result.Seconds, float64(result.MemoryBytes)/1024/1024)

		row := ResultRow{Param: param, Seconds: result.Seconds, MemoryBytes: result.MemoryBytes, Tool: tool.Name()}
		if err := s.results.Append(row); err != nil {
			return fmt.Errorf("failed to append result row: %w", err)
		}
		if s.storage != nil {
			if err := s.storage.AppendRun(row); err != nil {
				Logger.Errorf("failed to mirror result row: %v", err)
			}
		}
	}
	return nil
}
