// Package concurrency implements a simple channel based ressource manager for concurrent operations.
package concurrency

import (
	"sync"
)

// ResourceManager is a struct storing a channel of some given ressource (e.g. a scratch buffer)
// meant to be used concurrently and a channel for errors.
type ResourceManager[T any] struct {
	sync.WaitGroup
	Ressources chan T
	Errors     chan error
}

// NewRessourceManager instantiates a new [ResourceManager].
// The number of ressources bounds the number of [Task] running at the same time.
func NewRessourceManager[T any](ressources []T) *ResourceManager[T] {
	Ressources := make(chan T, len(ressources))
	for i := range ressources {
		Ressources <- ressources[i]
	}
	return &ResourceManager[T]{
		Ressources: Ressources,
		Errors:     make(chan error, len(ressources)),
	}
}

// Task is an abstract templates for a function taking as input
// a ressource of any kind that can be used concurrently.
type Task[T any] func(ressource T) (err error)

// Run runs a [Task] concurrently.
// If the internal error channel is not empty, does nothing.
// Adds any error returned by [Task] to the internal error channel.
func (r *ResourceManager[T]) Run(f Task[T]) {
	r.Add(1)
	go func() {
		defer r.Done()
		if len(r.Errors) != 0 {
			return
		}
		ressource := <-r.Ressources
		if err := f(ressource); err != nil {
			select {
			case r.Errors <- err:
			default:
			}
		}
		r.Ressources <- ressource
	}()
}

// Wait waits until all concurrent [Task] have finished and returns
// the first encountered error, if any.
// A [ResourceManager] can be reused after Wait returns, which makes
// Wait usable as a barrier between successive batches of tasks.
func (r *ResourceManager[T]) Wait() (err error) {

	r.WaitGroup.Wait()

	if len(r.Errors) != 0 {
		return <-r.Errors
	}

	return
}

// Split partitions [0, n) into at most parts contiguous ranges of
// (almost) equal size. Empty ranges are omitted.
func Split(n, parts int) (ranges [][2]int) {

	if parts < 1 {
		parts = 1
	}

	if parts > n {
		parts = n
	}

	ranges = make([][2]int, 0, parts)

	for i, start := 0, 0; i < parts; i++ {
		end := start + n/parts
		if i < n%parts {
			end++
		}
		ranges = append(ranges, [2]int{start, end})
		start = end
	}

	return
}
