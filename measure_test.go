package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMeasureElapsed(t *testing.T) {
	result, err := Measure(10*time.Millisecond, "sh", "-c", "sleep 0.05")
	require.Nil(t, err)
	require.GreaterOrEqual(t, result.Seconds, 0.04)
}

func TestMeasureShortProcessReportsZeroMemory(t *testing.T) {
	// exits long before the first sampling tick
	result, err := Measure(time.Second, "true")
	require.Nil(t, err)
	require.Equal(t, uint64(0), result.MemoryBytes)
	require.GreaterOrEqual(t, result.Seconds, 0.0)
}

func TestMeasureFailureCarriesStderr(t *testing.T) {
	_, err := Measure(10*time.Millisecond, "sh", "-c", "echo boom >&2; exit 3")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestMeasureMissingBinary(t *testing.T) {
	_, err := Measure(10*time.Millisecond, "definitely-not-a-binary-8941")
	require.NotNil(t, err)
}
