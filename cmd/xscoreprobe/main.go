// Command xscoreprobe is a demo CLI over pkg/xsengine, following the
// teacher's cmd/protogonosctl subcommand-dispatch shape. It builds
// synthetic in-memory nuclide fixtures rather than loading real nuclear
// data files, consistent with this core's stated scope.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/ncruces/go-strftime"

	"protogonos/internal/rng"
	"protogonos/pkg/xsengine"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "probe":
		return runProbe(args[1:])
	case "benchmark":
		return runBenchmark(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runProbe(args []string) error {
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	energy := fs.Float64("energy", 1.0, "neutron energy in eV")
	temperature := fs.Float64("kt", 0.0253, "k_B*T in eV")
	seed := fs.Int64("seed", 1, "rng seed for the synthetic fixture")
	nuclides := fs.Int("nuclides", 1, "synthetic nuclide count")
	if err := fs.Parse(args); err != nil {
		return err
	}

	engine, err := xsengine.New(xsengine.Options{})
	if err != nil {
		return err
	}
	defer func() { _ = engine.Close() }()

	mat, src, micro := xsengine.BuildSyntheticMaterial(*nuclides, *seed)
	stream := rng.NewTrackingStream(*seed)

	result := engine.EvalMaterial(xsengine.MaterialRequest{
		Material: mat,
		Source:   src,
		Micro:    micro,
		Energy:   *energy,
		SqrtKT:   math.Sqrt(*temperature),
		RNG:      stream,
	})

	fmt.Printf("energy=%g eV kT=%g eV\n", *energy, *temperature)
	fmt.Printf("total=%.6g absorption=%.6g fission=%.6g nu_fission=%.6g\n",
		result.Total, result.Absorption, result.Fission, result.NuFission)
	return nil
}

func runBenchmark(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("benchmark", flag.ContinueOnError)
	nuclides := fs.Int("nuclides", 4, "synthetic nuclide count")
	iterations := fs.Int("iterations", 100000, "evaluation count")
	seed := fs.Int64("seed", 1, "rng seed")
	storeKind := fs.String("store", "memory", "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "xscore.db", "sqlite database path")
	persist := fs.Bool("persist", false, "persist the result as a benchmark run record")
	if err := fs.Parse(args); err != nil {
		return err
	}

	engine, err := xsengine.New(xsengine.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() { _ = engine.Close() }()
	if err := engine.Init(ctx); err != nil {
		return err
	}

	runID := uuid.NewString()
	startedAt := time.Now().UTC()
	fmt.Printf("benchmark %s started at %s\n", runID, strftime.Format("%Y-%m-%d %H:%M:%S", startedAt))

	progress := isatty.IsTerminal(os.Stdout.Fd())
	if progress {
		fmt.Printf("running %s iterations across %d nuclides...\n", humanize.Comma(int64(*iterations)), *nuclides)
	}

	summary, err := engine.Benchmark(ctx, xsengine.BenchmarkRequest{
		RunID:        runID,
		NuclideCount: *nuclides,
		Iterations:   *iterations,
		Seed:         *seed,
		Persist:      *persist,
	})
	if err != nil {
		return err
	}

	fmt.Printf("run=%s iterations=%s elapsed=%s mean_total=%.6g\n",
		summary.RunID, humanize.Comma(int64(*iterations)), summary.Elapsed, summary.MeanTotal)
	return nil
}

func usageError(msg string) error {
	return fmt.Errorf("xscoreprobe: %s\nusage: xscoreprobe <probe|benchmark> [flags]", msg)
}
