package platform

import (
	"context"
	"errors"
	"sync"
)

// Promise carries the single completion of a native prompt. The first
// Resolve wins; later calls are dropped, matching native callbacks that
// may fire more than once (e.g. error after dismissal).
type Promise struct {
	once sync.Once
	done chan struct{}
	res  Result
}

func NewPromise() *Promise {
	return &Promise{done: make(chan struct{})}
}

func (p *Promise) Resolve(r Result) bool {
	settled := false
	p.once.Do(func() {
		p.res = r
		settled = true
		close(p.done)
	})
	return settled
}

func (p *Promise) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the promise settles or ctx ends. A canceled ctx
// settles the promise as a user cancellation, an expired deadline as a
// timeout.
func (p *Promise) Await(ctx context.Context) Result {
	select {
	case <-p.done:
		return p.res
	default:
	}

	select {
	case <-p.done:
		return p.res
	case <-ctx.Done():
	}

	r := Result{Canceled: true}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		r = Result{TimedOut: true}
	}
	p.Resolve(r)

	<-p.done
	return p.res
}
