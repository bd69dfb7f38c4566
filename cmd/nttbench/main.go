// nttbench builds transform configurations, checks the round trip of every
// requested strategy on the same random input and reports their timings.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/bits"
	"os"
	"runtime"
	"time"

	"github.com/montanaflynn/stats"
	"golang.org/x/sys/cpu"

	"github.com/tuneinsight/ntt/ring"
	"github.com/tuneinsight/ntt/utils"
	"github.com/tuneinsight/ntt/utils/factorization"
	"github.com/tuneinsight/ntt/utils/sampling"
)

var (
	flagN          = flag.Int("n", 1024, "transform length")
	flagStrategy   = flag.String("strategy", "all", "transform strategy: direct, radix2, mixed or all")
	flagLUT        = flag.Bool("lut", false, "precompute the table of powers of the root")
	flagWorkers    = flag.Int("workers", 1, "number of goroutines used by each transform")
	flagIterations = flag.Int("iterations", 10, "number of timed transforms per strategy")
	flagSeed       = flag.Uint64("seed", 0, "seed of the input sampler, 0 for a random seed")
	flagBound      = flag.Int("bound", 0, "candidate ceiling of the parameter search, 0 for the default")
	flagParams     = flag.String("params", "", "JSON file with a parameters literal, overrides -n, -bound and the options")
	flagChart      = flag.String("chart", "", "write an HTML bar chart of the timings to this path")
)

// result is the outcome of the benchmark of one strategy.
type result struct {
	Strategy ring.Strategy
	Times    []float64 // ms
	Mean     float64
	Median   float64
	StdDev   float64
	Checksum [32]byte
}

func main() {

	log.SetFlags(0)
	log.SetPrefix("nttbench: ")

	flag.Parse()

	lit, strategies, err := literalFromFlags()
	if err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	if *flagIterations < 1 {
		log.Fatalf("invalid flags: -iterations must be at least 1")
	}

	printPlatform()

	var results []result
	var input []uint64

	for _, s := range strategies {

		if s == ring.Radix2 && !utils.IsPowerOfTwo(lit.N) {
			log.Printf("skipping %s: N=%d is not a power of two", s, lit.N)
			continue
		}

		lit.Strategy = s

		forward, backward, err := ring.NewConfigurationPair(lit)
		if err != nil {
			log.Fatalf("cannot build configurations: %v", err)
		}

		if input == nil {
			printParameters(forward)
			if input, err = sampleInput(forward.Modulus, lit.N); err != nil {
				log.Fatalf("cannot sample input: %v", err)
			}
		}

		res, err := run(forward, backward, input, *flagIterations)
		if err != nil {
			log.Fatalf("%s: %v", s, err)
		}

		fmt.Printf("%-12s mean %10.3f ms  median %10.3f ms  stddev %8.3f ms  checksum %s\n",
			s, res.Mean, res.Median, res.StdDev, hex.EncodeToString(res.Checksum[:8]))

		results = append(results, res)
	}

	if len(results) == 0 {
		log.Fatalf("no strategy applies to N=%d", lit.N)
	}

	for _, res := range results[1:] {
		if res.Checksum != results[0].Checksum {
			log.Fatalf("%s and %s disagree on the same input", results[0].Strategy, res.Strategy)
		}
	}

	if *flagChart != "" {
		if err := writeChart(*flagChart, lit, results); err != nil {
			log.Fatalf("cannot write chart: %v", err)
		}
		fmt.Println("Chart:", *flagChart)
	}
}

// literalFromFlags returns the parameters literal and the strategies selected by the flags.
func literalFromFlags() (lit ring.ParametersLiteral, strategies []ring.Strategy, err error) {

	lit = ring.ParametersLiteral{
		N:           *flagN,
		SearchBound: *flagBound,
		Options: ring.Options{
			PowerTable: *flagLUT,
			Workers:    *flagWorkers,
		},
	}

	if *flagParams != "" {

		var data []byte
		if data, err = os.ReadFile(*flagParams); err != nil {
			return
		}

		if err = json.Unmarshal(data, &lit); err != nil {
			return lit, nil, fmt.Errorf("%s: %w", *flagParams, err)
		}

		// The literal selects a single strategy.
		return lit, []ring.Strategy{lit.Strategy}, nil
	}

	if *flagStrategy == "all" {
		return lit, ring.Strategies, nil
	}

	var s ring.Strategy
	if s, err = ring.ParseStrategy(*flagStrategy); err != nil {
		return
	}

	return lit, []ring.Strategy{s}, nil
}

// run verifies the round trip of the pair on input and times
// iterations forward transforms of input.
func run(forward, backward *ring.Configuration, input []uint64, iterations int) (res result, err error) {

	var ok bool
	if ok, err = ring.VerifyRoundTrip(forward, backward, input); err != nil {
		return
	}

	if !ok {
		return res, fmt.Errorf("round trip failed for N=%d modulus=%d root=%d", forward.N, forward.Modulus, forward.PrimitiveRoot)
	}

	output := make([]uint64, forward.N)

	res.Strategy = forward.Options.Strategy
	res.Times = make([]float64, iterations)

	for i := range res.Times {
		now := time.Now()
		if err = forward.Transform(input, output); err != nil {
			return
		}
		res.Times[i] = float64(time.Since(now).Nanoseconds()) / 1e6
	}

	res.Checksum = ring.Checksum(output)

	res.Mean, _ = stats.Mean(res.Times)
	res.Median, _ = stats.Median(res.Times)
	res.StdDev, _ = stats.StandardDeviation(res.Times)

	return
}

// sampleInput returns N residues mod modulus drawn from a KeyedPRNG.
// A zero -seed is replaced by a random one, printed so that the run can be replayed.
func sampleInput(modulus uint64, N int) (input []uint64, err error) {

	seed := *flagSeed
	if seed == 0 {
		seed = sampling.RandUint64()
	}

	fmt.Printf("Seed: %d\n", seed)

	var prng *sampling.KeyedPRNG
	if prng, err = sampling.NewSeededPRNG(seed); err != nil {
		return
	}

	return ring.NewUniformSampler(prng, modulus).ReadNew(N), nil
}

func printPlatform() {
	fmt.Printf("Platform: %s/%s, %d CPUs", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	switch runtime.GOARCH {
	case "amd64", "386":
		fmt.Printf(", BMI2=%t ADX=%t AVX2=%t", cpu.X86.HasBMI2, cpu.X86.HasADX, cpu.X86.HasAVX2)
	case "arm64":
		fmt.Printf(", ASIMD=%t", cpu.ARM64.HasASIMD)
	}
	fmt.Println()
}

func printParameters(c *ring.Configuration) {
	factors, _ := factorization.Factorize(uint64(c.N))
	fmt.Printf("Parameters: N=%d %v, modulus=%d (%d bits), root=%d, lut=%t, workers=%d\n",
		c.N, factors, c.Modulus, bits.Len64(c.Modulus), c.PrimitiveRoot, c.Options.PowerTable, c.Options.Workers)
}
