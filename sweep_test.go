package main

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeTool struct {
	t       *testing.T
	name    string
	threads []int
}

func (f *fakeTool) Name() string { return f.name }

func (f *fakeTool) Run(query string, database string, outDir string, threads int) (RunResult, error) {
	require.FileExists(f.t, query)
	require.FileExists(f.t, database)
	require.DirExists(f.t, outDir)
	f.threads = append(f.threads, threads)
	return RunResult{Seconds: 0.5, MemoryBytes: 123}, nil
}

func TestSampleSizeSweep(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.fasta")
	require.Nil(t, WriteFasta(input, makeRecords(200)))

	outDir := filepath.Join(dir, "out")
	raxtax := &fakeTool{t: t, name: "RAxTax"}
	sintax := &fakeTool{t: t, name: "Sintax"}
	sweep := &Sweep{
		Input:       input,
		OutputDir:   outDir,
		Repetitions: 2,
		Tools:       []Tool{raxtax, sintax},
	}
	require.Nil(t, sweep.RunSampleSizes([]int{50, 100}, 8))

	// 2 tools x 2 sizes x 2 repetitions plus the header
	rows := readCsv(t, filepath.Join(outDir, CsvName))
	require.Len(t, rows, 9)
	require.Equal(t, []string{"SampleSize", "RuntimeSeconds", "MaxMemoryBytes", "Tool"}, rows[0])
	require.Equal(t, []string{"50", "0.5", "123", "RAxTax"}, rows[1])
	require.Equal(t, []string{"50", "0.5", "123", "Sintax"}, rows[2])

	require.Equal(t, []int{8, 8, 8, 8}, raxtax.threads)
	require.Equal(t, []int{8, 8, 8, 8}, sintax.threads)

	for _, size := range []int{50, 100} {
		for rep := 1; rep <= 2; rep++ {
			reference, err := ReadFasta(filepath.Join(outDir, fmt.Sprintf("%v_90pct_rep%v.fasta", size, rep)))
			require.Nil(t, err)
			query, err := ReadFasta(filepath.Join(outDir, fmt.Sprintf("%v_10pct_rep%v.fasta", size, rep)))
			require.Nil(t, err)
			require.Len(t, reference, size*9/10)
			require.Len(t, query, size-size*9/10)
			require.DirExists(t, filepath.Join(outDir, fmt.Sprintf("raxtax_%v_rep%v", size, rep)))
			require.DirExists(t, filepath.Join(outDir, fmt.Sprintf("sintax_%v_rep%v", size, rep)))
		}
	}
}

func TestThreadCountSweep(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.fasta")
	require.Nil(t, WriteFasta(input, makeRecords(100)))

	outDir := filepath.Join(dir, "out")
	raxtax := &fakeTool{t: t, name: "RAxTax"}
	sintax := &fakeTool{t: t, name: "Sintax"}
	sweep := &Sweep{
		Input:       input,
		OutputDir:   outDir,
		Repetitions: 1,
		Tools:       []Tool{raxtax, sintax},
	}
	require.Nil(t, sweep.RunThreadCounts([]int{1, 2, 4}, 80))

	rows := readCsv(t, filepath.Join(outDir, CsvName))
	require.Len(t, rows, 7)
	require.Equal(t, "Threads", rows[0][0])
	require.Equal(t, []int{1, 2, 4}, raxtax.threads)
	require.Equal(t, []int{1, 2, 4}, sintax.threads)
}

func TestSweepStopsOnSamplerError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.fasta")
	require.Nil(t, WriteFasta(input, makeRecords(10)))

	outDir := filepath.Join(dir, "out")
	sweep := &Sweep{
		Input:       input,
		OutputDir:   outDir,
		Repetitions: 1,
		Tools:       []Tool{&fakeTool{t: t, name: "RAxTax"}},
	}
	require.NotNil(t, sweep.RunSampleSizes([]int{50}, 8))

	// the CSV with its header survives the failed run
	rows := readCsv(t, filepath.Join(outDir, CsvName))
	require.Len(t, rows, 1)
}
