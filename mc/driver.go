// Trial drivers: seed a Stream, run the merge engine, average the samples.

package mc

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// RunSimulation estimates the claim's present value by averaging trials
// independent paths, all drawn from one Stream seeded with seed.
func RunSimulation[S any](m Model[S], claim Claim[S], seed int64, trials int, antithetic bool) (float64, error) {
	rs := NewStream(NewStreamKey(seed))
	return SimulateState(m, claim, rs, trials, antithetic)
}

// RunSimulationAnti is the antithetic-variates driver: it splits the trial
// budget into a mirrored half and a plain half, runs both from the same
// seed, and averages the two estimators. With a model whose Step genuinely
// mirrors its variates, the halves are negatively correlated and the
// combined estimator has lower variance for the same budget. An odd budget
// gives the extra trial to the plain half.
func RunSimulationAnti[S any](m Model[S], claim Claim[S], seed int64, trials int) (float64, error) {
	half := trials / 2
	if half == 0 {
		return 0, fmt.Errorf("%w: antithetic driver needs at least 2, got %d", ErrInvalidTrials, trials)
	}
	mirrored, err := RunSimulation(m, claim, seed, half, true)
	if err != nil {
		return 0, err
	}
	plain, err := RunSimulation(m, claim, seed, trials-half, false)
	if err != nil {
		return 0, err
	}
	return (mirrored + plain) / 2, nil
}

// RunSimulationParallel runs trials across workers goroutines. Every trial
// draws from its own Stream derived from seed (see Stream.ForTrial), so
// paths stay decorrelated without sharing or locking the variate source;
// the read-only Model is shared freely. Partial sums are combined in worker
// order, making the result deterministic for a fixed worker count.
// workers <= 0 selects GOMAXPROCS.
func RunSimulationParallel[S any](m Model[S], claim Claim[S], seed int64, trials, workers int, antithetic bool) (float64, error) {
	if trials <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	if err := claim.Validate(); err != nil {
		return 0, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > trials {
		workers = trials
	}

	base := NewStream(NewStreamKey(seed))
	sums := make([]float64, workers)
	errs := make([]error, workers)

	// Contiguous trial ranges per worker; the first trials%workers workers
	// take one extra trial.
	per := trials / workers
	extra := trials % workers

	var wg sync.WaitGroup
	start := 0
	for w := 0; w < workers; w++ {
		count := per
		if w < extra {
			count++
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for k := lo; k < hi; k++ {
				v, err := simulateTrial(m, claim, base.ForTrial(k), antithetic)
				if err != nil {
					errs[w] = fmt.Errorf("trial %d: %w", k, err)
					return
				}
				sums[w] += v
			}
		}(w, start, start+count)
		start += count
	}
	wg.Wait()

	total := 0.0
	for w := 0; w < workers; w++ {
		if errs[w] != nil {
			return 0, errs[w]
		}
		total += sums[w]
	}
	logrus.Debugf("parallel run: %d trials over %d workers", trials, workers)
	return total / float64(trials), nil
}
