// Command cinders reads a DIMACS CNF formula from stdin, decides its
// satisfiability, and writes the result to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rhartert/cinders/internal/dimacs"
	"github.com/rhartert/cinders/internal/sat"
)

var (
	flagSeed         = flag.Int64("seed", sat.DefaultOptions.Seed, "RNG seed for the randomized/VSIDS heuristics")
	flagHeuristic    = flag.String("heuristic", "vsids", "decision heuristic: simple, randomized, or vsids")
	flagMaxDecisions = flag.Int64("max-decisions", sat.DefaultOptions.MaxDecisions, "abort the search after this many decisions (-1 for unbounded)")
	flagCPUProfile   = flag.Bool("cpuprofile", false, "save a pprof CPU profile to cpuprofile")
	flagMemProfile   = flag.Bool("memprofile", false, "save a pprof heap profile to memprofile")
)

func parseHeuristic(name string) (sat.HeuristicKind, error) {
	switch name {
	case "simple":
		return sat.Simple, nil
	case "randomized":
		return sat.Randomized, nil
	case "vsids":
		return sat.VSIDS, nil
	default:
		return 0, fmt.Errorf("unknown heuristic %q (want simple, randomized, or vsids)", name)
	}
}

func run() error {
	heuristic, err := parseHeuristic(*flagHeuristic)
	if err != nil {
		return err
	}
	opts := sat.Options{
		Heuristic:    heuristic,
		Seed:         *flagSeed,
		ScoreDecay:   sat.DefaultOptions.ScoreDecay,
		MaxDecisions: *flagMaxDecisions,
	}

	var in *os.File = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return fmt.Errorf("could not open instance: %w", err)
		}
		defer f.Close()
		in = f
	}

	s := sat.NewSolver(opts)
	stats, err := dimacs.Read(in, s)
	if err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	fmt.Printf("c variables: %d\n", stats.Variables)
	fmt.Printf("c clauses:   %d\n", stats.Clauses)

	start := time.Now()
	status := s.Solve()
	elapsed := time.Since(start)

	searchStats := s.Stats()
	fmt.Printf("c time (sec):   %f\n", elapsed.Seconds())
	fmt.Printf("c decisions:    %d\n", searchStats.Decisions)
	fmt.Printf("c conflicts:    %d\n", searchStats.Conflicts)
	fmt.Printf("c learned:      %d\n", searchStats.LearnedClauses)

	return dimacs.WriteResult(os.Stdout, status, s.Model())
}

func main() {
	flag.Parse()

	if *flagCPUProfile {
		f, err := os.Create("cpuprofile")
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}

	if *flagMemProfile {
		f, err := os.Create("memprofile")
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
		f.Close()
	}
}
