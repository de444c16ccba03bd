package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// intList is a comma-separated list of integers for flag values like -s 50000,100000.
type intList []int

func (l *intList) String() string {
	parts := make([]string, 0, len(*l))
	for _, value := range *l {
		parts = append(parts, strconv.Itoa(value))
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	parsed := make([]int, 0)
	for _, part := range strings.Split(value, ",") {
		number, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", part, err)
		}
		parsed = append(parsed, number)
	}
	*l = parsed
	return nil
}

type toolFlags struct {
	input  *string
	raxtax *string
	sintax *string
	reps   *int
	outDir *string
}

func commonFlags(fs *flag.FlagSet) toolFlags {
	return toolFlags{
		input:  fs.String("i", "", "path to the input FASTA file (.fasta or .fasta.gz)"),
		raxtax: fs.String("raxtax", StringEnv("RAXTAX_BIN", "raxtax"), "path to the raxtax binary"),
		sintax: fs.String("sintax", StringEnv("SINTAX_BIN", "usearch"), "path to the usearch binary"),
		reps:   fs.Int("r", 3, "number of repetitions per grid point"),
		outDir: fs.String("o", "output_files", "directory for sampled files, tool output and the results CSV"),
	}
}

func newSweep(flags toolFlags, fixedQuery bool, interval time.Duration) *Sweep {
	if *flags.input == "" {
		Logger.Fatalf("input FASTA file is required (-i)")
	}
	return &Sweep{
		Input:       *flags.input,
		OutputDir:   *flags.outDir,
		Repetitions: *flags.reps,
		FixedQuery:  fixedQuery,
		Tools: []Tool{
			&RaxtaxTool{Bin: *flags.raxtax, PollInterval: interval},
			&SintaxTool{Bin: *flags.sintax, PollInterval: interval},
		},
	}
}

func runSamplesSweep(args []string, interval time.Duration) {
	fs := flag.NewFlagSet("samples", flag.ExitOnError)
	flags := commonFlags(fs)
	sizes := intList{50000, 100000, 200000, 500000, 1000000}
	fs.Var(&sizes, "s", "comma-separated list of sample sizes")
	threads := fs.Int("t", 8, "thread count passed to both tools")
	fs.Parse(args)

	sweep := newSweep(flags, false, interval)
	if err := sweep.RunSampleSizes(sizes, *threads); err != nil {
		Logger.Fatalf("sample size sweep failed: %v", err)
	}
}

func runThreadsSweep(args []string, interval time.Duration) {
	fs := flag.NewFlagSet("threads", flag.ExitOnError)
	flags := commonFlags(fs)
	counts := intList{1, 2, 4, 8}
	fs.Var(&counts, "t", "comma-separated list of thread counts")
	size := fs.Int("s", 100000, "sample size")
	fixed := fs.Bool("f", false, "keep the query size fixed at 2000 records")
	fs.Parse(args)

	sweep := newSweep(flags, *fixed, interval)
	if err := sweep.RunThreadCounts(counts, *size); err != nil {
		Logger.Fatalf("thread count sweep failed: %v", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %v <samples|threads> [flags]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "  samples   sweep over sample sizes at a fixed thread count")
	fmt.Fprintln(os.Stderr, "  threads   sweep over thread counts at a fixed sample size")
	os.Exit(2)
}

func main() {
	LoadEnv()
	if len(os.Args) < 2 {
		usage()
	}
	interval := DurationEnv("POLL_INTERVAL", DefaultPollInterval)
	switch os.Args[1] {
	case "samples":
		runSamplesSweep(os.Args[2:], interval)
	case "threads":
		runThreadsSweep(os.Args[2:], interval)
	default:
		usage()
	}
}
