// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs 8x8 block transforms over a fixed set of worker
// goroutines. A Pool is created once per encoder or decoder and reused for
// every plane.
//
// Work is described as n items (block rows, usually) cut into tiles. Workers
// claim tiles from a shared counter, so a slow tile does not hold back the
// rest of the plane. Every worker has a stable index and owns a scratch
// block that survives between calls, so tile functions need no per-call
// buffers.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ForTiles(plane.BlocksHigh(), 1, func(w *workerpool.Worker, start, end int) {
//	    blk := w.Block()
//	    for by := start; by < end; by++ {
//	        transformBlockRow(plane, by, blk)
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// BlockSize is the number of samples in a worker's scratch block.
const BlockSize = 64

// Worker is the state a tile function runs with. At most one tile function
// holds a given Worker at a time.
type Worker struct {
	index int
	block [BlockSize]float32
}

// Index returns the worker's position in [0, Pool.NumWorkers()).
func (w *Worker) Index() int {
	return w.index
}

// Block returns the worker's scratch 8x8 block. Its contents are whatever
// the previous tile left there.
func (w *Worker) Block() *[BlockSize]float32 {
	return &w.block
}

// Pool is a fixed set of workers. Each worker goroutine reads its own
// channel, so a job reaches a known Worker.
type Pool struct {
	workers   []*Worker
	jobs      []chan *tileJob
	closeOnce sync.Once
	closed    atomic.Bool
}

// tileJob is one ForTiles call, shared by every participating worker.
type tileJob struct {
	next atomic.Int64
	n    int
	tile int
	fn   func(w *Worker, start, end int)
	done sync.WaitGroup
}

// run claims tiles until none remain.
func (j *tileJob) run(w *Worker) {
	for {
		start := int(j.next.Add(int64(j.tile))) - j.tile
		if start >= j.n {
			return
		}
		j.fn(w, start, min(start+j.tile, j.n))
	}
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: make([]*Worker, numWorkers),
		jobs:    make([]chan *tileJob, numWorkers),
	}
	for i := range numWorkers {
		p.workers[i] = &Worker{index: i}
		p.jobs[i] = make(chan *tileJob, 1)
		go p.work(p.workers[i], p.jobs[i])
	}
	return p
}

func (p *Pool) work(w *Worker, jobs <-chan *tileJob) {
	for job := range jobs {
		job.run(w)
		job.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
// A nil pool reports a single (calling) worker.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return len(p.workers)
}

// Close stops the workers once queued jobs finish.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		for _, c := range p.jobs {
			close(c)
		}
	})
}

// ForTiles covers [0, n) with tiles of tileSize items and calls
// fn(w, start, end) once per tile, blocking until all tiles are done.
// A tileSize <= 0 splits [0, n) evenly across the workers.
//
// Concurrent calls to fn receive distinct Workers, including across
// concurrent ForTiles calls. fn must not call ForTiles on the same pool.
// A nil or closed pool runs every tile on the calling goroutine with a
// fresh Worker of index 0.
func (p *Pool) ForTiles(n, tileSize int, fn func(w *Worker, start, end int)) {
	if n <= 0 {
		return
	}

	workers := p.NumWorkers()
	if tileSize <= 0 {
		tileSize = (n + workers - 1) / workers
	}
	job := &tileJob{n: n, tile: tileSize, fn: fn}

	if p == nil || p.closed.Load() {
		job.run(&Worker{})
		return
	}

	tiles := (n + tileSize - 1) / tileSize
	participants := min(workers, tiles)
	job.done.Add(participants)
	for i := range participants {
		p.jobs[i] <- job
	}
	job.done.Wait()
}
