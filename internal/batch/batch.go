// Package batch renders many seeds to files with a pool of workers.
package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/psidex/kiu/internal/graphs"
	"github.com/psidex/kiu/internal/graphs/formats"
	"github.com/psidex/kiu/internal/streets"
)

// Output is a renderer and the format name it was chosen by.
type Output struct {
	Name     string
	Renderer graphs.Renderer
}

// filename returns the output path for seed without extension. The format name is
// added when it differs from the extension, so formats sharing an extension don't
// overwrite each other.
func (o Output) filename(dir string, seed int) string {
	name := fmt.Sprintf("streets-%d", seed)
	if "."+o.Name != o.Renderer.Ext() {
		name += "." + o.Name
	}
	return filepath.Join(dir, name)
}

type Config struct {
	Base    streets.Config
	Seeds   []int
	Outputs []Output
	OutDir  string
	Workers uint
	// Cooldown is slept between jobs by each worker.
	Cooldown time.Duration
}

// Result summarizes a finished batch.
type Result struct {
	Files  []string
	Failed int
}

type Batch struct {
	// Set in NewBatch(...).
	cfg    Config
	logger *slog.Logger
	// Every seed is generated fresh and dropped once rendered; nothing is retained
	// across jobs.
	generate func(streets.Config) *streets.Network
	// Set / reset at the start of Run().
	jobs       chan int
	cancel     chan struct{}
	cancelOnce *sync.Once
	wg         *sync.WaitGroup
	mu         *sync.Mutex
	result     Result
}

func NewBatch(cfg Config, logger *slog.Logger) *Batch {
	return &Batch{
		cfg:      cfg,
		logger:   logger,
		generate: streets.Generate,
	}
}

// Run queues every seed and starts the workers. It does not block.
func (b *Batch) Run() error {
	if b.cfg.Workers == 0 {
		return errors.New("batch needs at least one worker")
	}
	if len(b.cfg.Outputs) == 0 {
		return errors.New("batch needs at least one output")
	}
	if err := os.MkdirAll(b.cfg.OutDir, 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}

	b.jobs = make(chan int, len(b.cfg.Seeds))
	b.cancel = make(chan struct{})
	b.cancelOnce = &sync.Once{}
	b.wg = &sync.WaitGroup{}
	b.mu = &sync.Mutex{}
	b.result = Result{}

	for _, seed := range b.cfg.Seeds {
		b.jobs <- seed
	}
	close(b.jobs)

	for i := uint(1); i <= b.cfg.Workers; i++ {
		b.wg.Add(1)
		go b.worker(i)
	}

	return nil
}

// Wait blocks until every queued seed has been rendered or the batch was cancelled.
func (b *Batch) Wait() Result {
	if b.wg == nil {
		return Result{}
	}
	b.wg.Wait()
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.result
}

// Cancel stops the workers once they're finished with their current seed, and blocks
// until all the goroutines have exited. It is a no-op on a batch that never ran, and
// safe to call more than once.
func (b *Batch) Cancel() Result {
	if b.cancel == nil {
		return Result{}
	}
	b.cancelOnce.Do(func() { close(b.cancel) })
	return b.Wait()
}

func (b *Batch) worker(id uint) {
	defer b.wg.Done()

	for {
		select {
		case <-b.cancel:
			b.logger.Debug("Worker canceled", "worker", id)
			return
		default:
		}

		seed, ok := <-b.jobs
		if !ok {
			b.logger.Debug("Worker found no more seeds", "worker", id)
			return
		}

		b.render(id, seed)

		if b.cfg.Cooldown > 0 {
			time.Sleep(b.cfg.Cooldown)
		}
	}
}

func (b *Batch) render(id uint, seed int) {
	cfg := b.cfg.Base
	cfg.Seed = seed

	start := time.Now()
	n := b.generate(cfg)
	b.logger.Debug("Generated network", "worker", id, "seed", seed, "paths", len(n.Paths), "took", time.Since(start))

	for _, o := range b.cfg.Outputs {
		name, err := graphs.RenderToFile(o.Renderer, n, o.filename(b.cfg.OutDir, seed))

		b.mu.Lock()
		if err != nil {
			b.result.Failed++
		} else {
			b.result.Files = append(b.result.Files, name)
		}
		b.mu.Unlock()

		if err != nil {
			b.logger.Error("Render failed", "worker", id, "seed", seed, "format", o.Name, "error", err)
			continue
		}
		b.logger.Info("Rendered", "worker", id, "seed", seed, "file", name)
	}
}

// OutputsFor resolves format names to outputs.
func OutputsFor(names []string) ([]Output, error) {
	outputs := make([]Output, 0, len(names))
	for _, name := range names {
		r, err := formats.ByName(name)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, Output{Name: name, Renderer: r})
	}
	return outputs, nil
}
