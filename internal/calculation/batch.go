package calculation

import (
	"context"
	"runtime"
	"sync"

	"github.com/jcarrillo/cpgo/internal/domain"
)

// BatchItem pairs one roster worker with its calculation outcome. Exactly
// one of Result and Err is set.
type BatchItem struct {
	Worker domain.Worker
	Result *domain.CalculationResult
	Err    error
}

// BatchRunner evaluates a whole roster concurrently against one company
// configuration. The engine is stateless, so a single instance is shared
// across the pool.
type BatchRunner struct {
	Engine  *CostEngine
	Workers int
}

// NewBatchRunner creates a runner with the given pool size; zero or negative
// means one goroutine per CPU.
func NewBatchRunner(engine *CostEngine, workers int) *BatchRunner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchRunner{Engine: engine, Workers: workers}
}

// Run calculates every roster worker and returns the items in roster order.
// A worker that fails validation carries its error in its item; it never
// aborts the rest of the batch. Cancelling the context stops feeding new
// work and marks the unprocessed tail with the context error.
func (br *BatchRunner) Run(ctx context.Context, company *domain.CompanyConfig, roster []domain.Worker) []BatchItem {
	items := make([]BatchItem, len(roster))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < br.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				worker := roster[idx]
				result, err := br.Engine.Calculate(company, &worker)
				items[idx] = BatchItem{Worker: worker, Result: result, Err: err}
			}
		}()
	}

	fed := 0
feed:
	for ; fed < len(roster); fed++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- fed:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for i := fed; i < len(roster); i++ {
			items[i] = BatchItem{Worker: roster[i], Err: err}
		}
	}
	return items
}
