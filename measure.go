package main

import (
	"bytes"
	"fmt"
	"os/exec"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

const DefaultPollInterval = 100 * time.Millisecond

// Measure runs a command to completion while sampling its resident memory at a
// fixed interval. It returns the wall-clock runtime and the largest observed RSS
// sample; a process that exits before the first tick reports zero memory. Output
// streams are captured and only surfaced on failure. The call blocks until the
// process exits; there is no timeout.
func Measure(interval time.Duration, name string, args ...string) (RunResult, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return RunResult{}, fmt.Errorf("failed to start %v: %w", name, err)
	}
	proc, procErr := process.NewProcess(int32(cmd.Process.Pid))

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var peak uint64
	var waitErr error
poll:
	for {
		select {
		case waitErr = <-done:
			break poll
		case <-ticker.C:
			if procErr != nil {
				continue
			}
			info, err := proc.MemoryInfo()
			if err != nil {
				// process gone between the tick and the query
				continue
			}
			if info.RSS > peak {
				peak = info.RSS
			}
		}
	}
	elapsed := time.Since(start)

	if waitErr != nil {
		return RunResult{}, fmt.Errorf("command %v failed: err=%w, out=%v", name, waitErr, stderr.String())
	}
	return RunResult{Seconds: elapsed.Seconds(), MemoryBytes: peak}, nil
}
