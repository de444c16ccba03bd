package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Record is one named sequence entry from a FASTA collection.
type Record struct {
	ID  string
	Seq string
}

func openFasta(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return file, nil
	}
	reader, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to open gzip stream %v: %w", path, err)
	}
	return &gzipFasta{file: file, reader: reader}, nil
}

type gzipFasta struct {
	file   *os.File
	reader *gzip.Reader
}

func (g *gzipFasta) Read(p []byte) (int, error) { return g.reader.Read(p) }
func (g *gzipFasta) Close() error {
	g.reader.Close()
	return g.file.Close()
}

// ReadFasta loads all records from a FASTA file. Files with a .gz suffix are
// decompressed transparently. Sequences spanning multiple lines are concatenated.
func ReadFasta(path string) ([]Record, error) {
	stream, err := openFasta(path)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	records := make([]Record, 0)
	var id string
	var seq strings.Builder
	seen := false
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if seen {
				records = append(records, Record{ID: id, Seq: seq.String()})
				seq.Reset()
			}
			id = strings.TrimSpace(line[1:])
			seen = true
		} else {
			if !seen {
				return nil, fmt.Errorf("malformed FASTA %v: sequence data before first header", path)
			}
			seq.WriteString(strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", path, err)
	}
	if seen {
		records = append(records, Record{ID: id, Seq: seq.String()})
	}
	return records, nil
}

// WriteFasta writes records to path, overwriting any existing file.
func WriteFasta(path string, records []Record) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	writer := bufio.NewWriter(file)
	for _, record := range records {
		if _, err := fmt.Fprintf(writer, ">%v\n%v\n", record.ID, record.Seq); err != nil {
			file.Close()
			return err
		}
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
