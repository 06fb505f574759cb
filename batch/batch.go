// Package batch fans extraction requests for many independent regions of the
// same volume out across a worker pool, grounded on FortressVision's
// BlockMesher: a bounded request channel, a pool of workers pulling from it,
// a pending-set to dedupe in-flight requests, and a results channel the
// caller drains at its own pace.
package batch

import (
	"log"
	"sync"

	"github.com/voxelsplace/cubicmesh/cubic"
	"github.com/voxelsplace/cubicmesh/meshbuf"
	"github.com/voxelsplace/cubicmesh/meshcache"
	"github.com/voxelsplace/cubicmesh/region"
	"github.com/voxelsplace/cubicmesh/volume"
)

// Request asks for one region's mesh, tagged with a version so the worker
// can consult Mesher's cache before doing any extraction work.
type Request[V comparable] struct {
	Region  region.Region
	Version uint64
}

// Result carries a finished extraction back to the caller, or the error
// that prevented it.
type Result[V comparable] struct {
	Region region.Region
	Mesh   *meshbuf.Mesh[cubic.CubicVertex[V]]
	Err    error
}

// Mesher runs a fixed pool of workers extracting regions of a shared volume
// against shared isQuadNeeded/contributesToAO predicates, deduplicating
// concurrent requests for the same region the way BlockMesher.pending does.
type Mesher[V comparable] struct {
	vol             *volume.Volume[V]
	isQuadNeeded    cubic.IsQuadNeededFunc[V]
	contributesToAO cubic.ContributesToAOFunc[V]
	opts            cubic.Options
	cache           *meshcache.Cache[V]

	requests chan Request[V]
	results  chan Result[V]
	stop     chan struct{}

	pendingMu sync.Mutex
	pending   map[region.Region]bool
}

// NewMesher starts workers workers operating against vol, returning a Mesher
// ready to accept Enqueue calls. A nil cache disables result caching.
func NewMesher[V comparable](workers int, vol *volume.Volume[V], isQuadNeeded cubic.IsQuadNeededFunc[V], contributesToAO cubic.ContributesToAOFunc[V], opts cubic.Options, cache *meshcache.Cache[V]) *Mesher[V] {
	m := &Mesher[V]{
		vol:             vol,
		isQuadNeeded:    isQuadNeeded,
		contributesToAO: contributesToAO,
		opts:            opts,
		cache:           cache,
		requests:        make(chan Request[V], 256),
		results:         make(chan Result[V], 256),
		stop:            make(chan struct{}),
		pending:         make(map[region.Region]bool),
	}
	for i := 0; i < workers; i++ {
		go m.worker()
	}
	return m
}

// Enqueue submits a region for extraction, returning false if an identical
// request is already in flight or the request queue is full.
func (m *Mesher[V]) Enqueue(req Request[V]) bool {
	m.pendingMu.Lock()
	if m.pending[req.Region] {
		m.pendingMu.Unlock()
		return false
	}
	m.pending[req.Region] = true
	m.pendingMu.Unlock()

	select {
	case m.requests <- req:
		return true
	default:
		m.pendingMu.Lock()
		delete(m.pending, req.Region)
		m.pendingMu.Unlock()
		return false
	}
}

// Results returns the channel finished extractions arrive on.
func (m *Mesher[V]) Results() <-chan Result[V] {
	return m.results
}

// Stop signals all workers to exit. It does not close Results(); drain any
// in-flight results before discarding the Mesher.
func (m *Mesher[V]) Stop() {
	close(m.stop)
}

func (m *Mesher[V]) worker() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("batch: worker panic: %v", r)
		}
	}()
	for {
		select {
		case req := <-m.requests:
			res := m.process(req)
			m.pendingMu.Lock()
			delete(m.pending, req.Region)
			m.pendingMu.Unlock()
			m.results <- res
		case <-m.stop:
			return
		}
	}
}

func (m *Mesher[V]) process(req Request[V]) Result[V] {
	key := meshcache.Key{Region: req.Region, Version: req.Version}
	if m.cache != nil {
		if mesh, ok := m.cache.Get(key); ok {
			return Result[V]{Region: req.Region, Mesh: mesh}
		}
	}

	sampler := volume.NewSampler(m.vol)
	mesh, err := cubic.ExtractMesh(sampler, req.Region, m.isQuadNeeded, m.contributesToAO, m.opts)
	if err != nil {
		return Result[V]{Region: req.Region, Err: err}
	}

	if m.cache != nil {
		m.cache.Store(key, mesh)
	}
	return Result[V]{Region: req.Region, Mesh: mesh}
}
