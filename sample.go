package main

import (
	"fmt"
	"math/rand"
)

// FixedQuerySize is the query fraction size used when the split is not 90/10.
const FixedQuerySize = 2000

// SplitRecords draws numSamples records uniformly without replacement and
// partitions them into a reference set and a query set. In fixed mode the last
// FixedQuerySize records form the query; otherwise the split is 90/10 with the
// reference size truncated to an integer.
func SplitRecords(records []Record, numSamples int, fixedQuery bool) (reference, query []Record, err error) {
	if numSamples > len(records) {
		return nil, nil, fmt.Errorf("requested %v samples but only %v records available", numSamples, len(records))
	}
	sampled := make([]Record, len(records))
	copy(sampled, records)
	rand.Shuffle(len(sampled), func(i, j int) {
		sampled[i], sampled[j] = sampled[j], sampled[i]
	})
	sampled = sampled[:numSamples]

	split := numSamples * 9 / 10
	if fixedQuery {
		if numSamples <= FixedQuerySize {
			return nil, nil, fmt.Errorf("fixed query split needs more than %v samples, got %v", FixedQuerySize, numSamples)
		}
		split = numSamples - FixedQuerySize
	}
	return sampled[:split], sampled[split:], nil
}

// SampleFasta samples numSamples records from the input collection and writes the
// reference and query fractions to their output paths in FASTA format.
func SampleFasta(input string, numSamples int, refPath, queryPath string, fixedQuery bool) error {
	records, err := ReadFasta(input)
	if err != nil {
		return fmt.Errorf("failed to read input collection %v: %w", input, err)
	}
	reference, query, err := SplitRecords(records, numSamples, fixedQuery)
	if err != nil {
		return err
	}
	if err := WriteFasta(refPath, reference); err != nil {
		return fmt.Errorf("failed to write reference set %v: %w", refPath, err)
	}
	if err := WriteFasta(queryPath, query); err != nil {
		return fmt.Errorf("failed to write query set %v: %w", queryPath, err)
	}
	Logger.Infof("sampled %v records from %v: %v reference, %v query", numSamples, input, len(reference), len(query))
	return nil
}
