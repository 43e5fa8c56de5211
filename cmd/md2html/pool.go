package main

import (
	"runtime"
	"sync"

	md2html "github.com/alnah/go-md2html"
)

// MaxPoolSize caps the worker pool; more workers than this never helps a
// CPU-bound conversion and only burns memory.
const MaxPoolSize = 32

// ServicePool manages md2html.Service instances for parallel batch
// processing. Services are created lazily on first acquire.
type ServicePool struct {
	size    int
	opts    []md2html.Option
	sem     chan Converter
	mu      sync.Mutex
	created int
}

// NewServicePool creates a pool with capacity for n Service instances,
// each built with the given options.
func NewServicePool(n int, opts ...md2html.Option) *ServicePool {
	if n < 1 {
		n = 1
	}

	return &ServicePool{
		size: n,
		opts: opts,
		sem:  make(chan Converter, n),
	}
}

// Compile-time check that ServicePool implements Pool.
var _ Pool = (*ServicePool)(nil)

// Acquire gets a service from the pool, creating one if needed.
// Blocks if all services are in use.
func (p *ServicePool) Acquire() Converter {
	// Try to get an existing service (non-blocking)
	select {
	case svc := <-p.sem:
		return svc
	default:
	}

	// Check if we can create a new service
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()
		return md2html.New(p.opts...)
	}
	p.mu.Unlock()

	// All services created, wait for one to be released
	return <-p.sem
}

// Release returns a service to the pool. The channel has capacity for
// every created service, so this never blocks.
func (p *ServicePool) Release(svc Converter) {
	p.sem <- svc
}

// Size returns the pool capacity.
func (p *ServicePool) Size() int {
	return p.size
}

// resolvePoolSize determines the pool size.
// Priority: explicit flag > GOMAXPROCS (adjusted by automaxprocs for
// containers; conversion is CPU-bound so one worker per proc).
func resolvePoolSize(flagWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}

	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
