package cmd

import (
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/claim-sim/claim-sim/mc"
	"github.com/claim-sim/claim-sim/mc/trace"
	"github.com/claim-sim/claim-sim/scenario"
)

var (
	// CLI flags for the valuation run
	scenarioPath string // Path to the YAML scenario (model + claim term sheet)
	seed         int64  // Seed controlling all randomness of the run
	trials       int    // Number of Monte Carlo trials
	antithetic   bool   // Use antithetic variates (half mirrored, half plain)
	workers      int    // Worker goroutines; 0 = sequential, <0 = GOMAXPROCS
	showTrace    bool   // Print per-trial trace summary after the run
	logLevel     string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "claimsim",
	Short: "Monte Carlo valuation engine for contingent claims",
}

// priceCmd runs one valuation using parameters from CLI flags
var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a claim scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		sc, err := scenario.Load(scenarioPath)
		if err != nil {
			return err
		}
		model, err := scenario.CompileModel(sc.Model)
		if err != nil {
			return err
		}
		claim, err := scenario.CompileClaim(sc.Claim)
		if err != nil {
			return err
		}

		logrus.Infof("pricing %s: %d events, %d trials, seed %d", scenarioPath, len(claim), trials, seed)
		result, vt, err := runPricing(model, claim)
		if err != nil {
			return err
		}
		result.Print()
		if showTrace {
			trace.Summarize(vt).Print()
		}
		return nil
	},
}

// runPricing dispatches to the driver selected by the flags.
func runPricing(model mc.Model[float64], claim mc.Claim[float64]) (mc.Result, *trace.ValuationTrace, error) {
	switch {
	case workers != 0:
		// Parallel runs derive an isolated stream per trial, so there is no
		// per-trial trace to collect in a deterministic order.
		est, err := mc.RunSimulationParallel(model, claim, seed, trials, workers, antithetic)
		if err != nil {
			return mc.Result{}, nil, err
		}
		return mc.Result{Estimate: est, Trials: trials}, nil, nil
	case antithetic:
		est, err := mc.RunSimulationAnti(model, claim, seed, trials)
		if err != nil {
			return mc.Result{}, nil, err
		}
		return mc.Result{Estimate: est, Trials: trials}, nil, nil
	default:
		vt := trace.NewValuationTrace()
		rs := mc.NewStream(mc.NewStreamKey(seed))
		est, err := mc.SimulateStateObserved(model, claim, rs, trials, false, vt)
		if err != nil {
			return mc.Result{}, nil, err
		}
		summary := trace.Summarize(vt)
		return mc.Result{
			Estimate: est,
			Variance: summary.StdDev * summary.StdDev,
			StdErr:   summary.StdDev / math.Sqrt(float64(trials)),
			Trials:   trials,
		}, vt, nil
	}
}

func init() {
	priceCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to YAML scenario file (required)")
	priceCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for the run")
	priceCmd.Flags().IntVar(&trials, "trials", 10000, "Number of Monte Carlo trials")
	priceCmd.Flags().BoolVar(&antithetic, "antithetic", false, "Use antithetic variance reduction")
	priceCmd.Flags().IntVar(&workers, "workers", 0, "Worker goroutines (0 = sequential, -1 = all CPUs)")
	priceCmd.Flags().BoolVar(&showTrace, "trace", false, "Print per-trial trace summary")
	priceCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	if err := priceCmd.MarkFlagRequired("scenario"); err != nil {
		logrus.Fatalf("marking flag required: %v", err)
	}
	rootCmd.AddCommand(priceCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
