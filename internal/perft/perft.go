// Package perft counts move paths in parallel by splitting the tree at the
// root: every legal root move becomes one job with its own Position.
package perft

import (
	"context"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// Result holds the total and the per-root-move counts, in legal-move order.
type Result struct {
	Depth  int
	Nodes  uint64
	Divide []engine.DivideEntry
}

// Runner runs perft with the settings from a Config.
type Runner struct {
	cfg   *config.Config
	cache *hashing.ThreadSafePerftCache // nil when caching is off
}

// NewRunner creates a runner. A cache is allocated when cfg enables it and
// is shared by every Run on this runner.
func NewRunner(cfg *config.Config) *Runner {
	r := &Runner{cfg: cfg}
	if cfg.Perft.HashCache {
		r.cache = hashing.NewThreadSafePerftCache(cfg.Perft.HashCapacity)
	}
	return r
}

// Cache returns the runner's cache, or nil.
func (r *Runner) Cache() *hashing.ThreadSafePerftCache {
	return r.cache
}

// Run counts the leaf nodes below pos at depth. pos itself is never
// modified; each job works on a clone.
func (r *Runner) Run(ctx context.Context, pos *engine.Position, depth int) (*Result, error) {
	res := &Result{Depth: depth}
	if depth <= 0 {
		res.Nodes = 1
		return res, nil
	}

	root := pos.Clone()
	moves := root.LegalMoves()
	res.Divide = make([]engine.DivideEntry, len(moves))

	pool := worker.NewPool(r.runJob,
		worker.WithWorkers(r.cfg.Perft.Workers),
		worker.WithBufferSize(len(moves)+1),
	)
	pool.Start(ctx)

	go func() {
		for i, m := range moves {
			child := root.Clone()
			child.Apply(m)
			pool.Submit(worker.Job{Index: i, Move: m, Position: child, Depth: depth - 1})
		}
		pool.Close()
	}()

	var firstErr error
	done := 0
	for jr := range pool.Results() {
		if jr.Err != nil {
			if firstErr == nil {
				firstErr = jr.Err
			}
			continue
		}
		res.Divide[jr.Index] = engine.DivideEntry{Move: jr.Move, Nodes: jr.Nodes}
		res.Nodes += jr.Nodes
		done++
		r.cfg.Logf(config.Commentary, "perft: %s %d", jr.Move, jr.Nodes)
	}
	if firstErr == nil && done != len(moves) {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if r.cache != nil {
		r.cfg.Logf(config.Summary, "perft: cache %d entries, %d hits", r.cache.Len(), r.cache.Hits())
	}
	return res, nil
}

func (r *Runner) runJob(job worker.Job) worker.Result {
	var nodes uint64
	if r.cache == nil {
		nodes = job.Position.Perft(job.Depth)
	} else {
		board := job.Position.Board()
		key := hashing.Key(&board, job.Position.ToMove())
		nodes = cachedPerft(job.Position, key, job.Depth, r.cache)
	}
	return worker.Result{Index: job.Index, Move: job.Move, Nodes: nodes}
}

// cachedPerft is Position.Perft with a transposition cache. key is the
// Zobrist key of pos and is updated incrementally along the walk.
func cachedPerft(pos *engine.Position, key uint64, depth int, cache *hashing.ThreadSafePerftCache) uint64 {
	if depth <= 0 {
		return 1
	}
	if nodes, ok := cache.Lookup(key, depth); ok {
		return nodes
	}
	moves := pos.LegalMoves()
	var nodes uint64
	if depth == 1 {
		nodes = uint64(len(moves))
	} else {
		for _, m := range moves {
			pos.Apply(m)
			nodes += cachedPerft(pos, key^hashing.MoveDelta(m), depth-1, cache)
			pos.Undo()
		}
	}
	cache.Store(key, depth, nodes)
	return nodes
}
