package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// CsvName is the result file written into the sweep's output directory.
const CsvName = "time_memory.csv"

// Results owns the CSV handle for one sweep. The file is truncated and given a
// header when opened; every appended row is flushed immediately so rows written
// before a fatal failure survive.
type Results struct {
	file   *os.File
	writer *csv.Writer
}

// OpenResults creates (or truncates) the CSV at path and writes the header row.
// The first column is named after the sweep's independent variable.
func OpenResults(path string, independent string) (*Results, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create results file %v: %w", path, err)
	}
	writer := csv.NewWriter(file)
	if err := writer.Write([]string{independent, "RuntimeSeconds", "MaxMemoryBytes", "Tool"}); err != nil {
		file.Close()
		return nil, err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return nil, err
	}
	return &Results{file: file, writer: writer}, nil
}

func (r *Results) Append(row ResultRow) error {
	err := r.writer.Write([]string{
		strconv.Itoa(row.Param),
		strconv.FormatFloat(row.Seconds, 'f', -1, 64),
		strconv.FormatUint(row.MemoryBytes, 10),
		row.Tool,
	})
	if err != nil {
		return err
	}
	r.writer.Flush()
	return r.writer.Error()
}

func (r *Results) Close() error {
	r.writer.Flush()
	if err := r.writer.Error(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
