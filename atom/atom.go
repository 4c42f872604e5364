/*
Package atom provides a reference cell for sharing the current version of a
persistent dictionary between goroutines.

Dictionaries never change, so a reader holding a dictionary will always see a
consistent snapshot. What changes over time is which dictionary is "current".
An Atom holds this reference. Readers load the current dictionary without
locking, writers replace it by applying a pure function, and subscribers get
notified with every new version.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package atom

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/avl"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}

// Atom holds the current version of a dictionary.
type Atom[K, V any] struct {
	current atomic.Pointer[avl.Dict[K, V]]
	mx      sync.Mutex     // serializes writers
	cast    *caster.Caster // broadcaster for new versions
}

// New creates an Atom holding d.
func New[K, V any](d avl.Dict[K, V]) *Atom[K, V] {
	a := &Atom[K, V]{
		cast: caster.New(nil),
	}
	a.current.Store(&d)
	return a
}

// Load returns the current dictionary. Load never blocks.
func (a *Atom[K, V]) Load() avl.Dict[K, V] {
	return *a.current.Load()
}

// Swap replaces the current dictionary d by fn(d) and returns the new one.
//
// Calls to Swap are serialized, so fn always sees the result of the previous
// Swap. New versions are handed to the broadcaster in order; delivery to
// subscribers happens asynchronously. Subscribers have to keep reading their
// channels, otherwise the broadcaster and eventually Swap block.
func (a *Atom[K, V]) Swap(fn func(avl.Dict[K, V]) avl.Dict[K, V]) avl.Dict[K, V] {
	a.mx.Lock()
	defer a.mx.Unlock()
	next := fn(*a.current.Load())
	a.current.Store(&next)
	a.cast.Pub(next)
	return next
}

// Subscribe returns a channel receiving every dictionary stored by subsequent calls
// to Swap, in order. The channel is closed when ctx is done or the Atom is closed.
// The boolean result is false if the Atom has already been closed.
func (a *Atom[K, V]) Subscribe(ctx context.Context, capacity uint) (<-chan avl.Dict[K, V], bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-a.cast.Done():
		tracer().Infof("subscription to closed atom")
		return nil, false
	default:
	}
	sub, _ := a.cast.Sub(ctx, capacity) // always ok; a closed atom yields a closed sub
	out := make(chan avl.Dict[K, V], capacity)
	go func() {
		defer close(out)
		for msg := range sub {
			select {
			case out <- msg.(avl.Dict[K, V]):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, true
}

// Close ends all subscriptions and waits until their channels are closed. Swap and
// Load continue to work after Close, but new versions are no longer published.
// Close may be called more than once.
func (a *Atom[K, V]) Close() {
	tracer().Debugf("closing atom")
	a.cast.Close()
	<-a.cast.Done()
}
