package router

import (
	"sync"

	"go.uber.org/atomic"
)

// Path is the navigation stack: index 0 is the root, the last element is the
// visible screen. It is the single owner of the stack state and is safe for
// concurrent use.
//
// Every write starts a new generation, so a write made directly through Path
// supersedes any schedule still playing onto it. Path implements
// steps.Store.
type Path[S comparable] struct {
	mu       sync.Mutex
	elements []S
	gen      atomic.Uint64

	// notifyMu keeps observer calls in write order without holding mu.
	notifyMu  sync.Mutex
	observers []func([]S)
}

// NewPath creates a path holding the given screens, root first.
func NewPath[S comparable](screens ...S) *Path[S] {
	return &Path[S]{
		elements: clone(screens),
	}
}

// OnChange registers fn to be called with a copy of the stack after every
// write. Calls happen in write order. fn may read the path but must not
// write to it.
func (p *Path[S]) OnChange(fn func([]S)) *Path[S] {
	p.notifyMu.Lock()
	p.observers = append(p.observers, fn)
	p.notifyMu.Unlock()
	return p
}

// Elements returns a copy of the current stack.
func (p *Path[S]) Elements() []S {
	p.mu.Lock()
	defer p.mu.Unlock()
	return clone(p.elements)
}

// Load returns a copy of the current stack.
func (p *Path[S]) Load() []S {
	return p.Elements()
}

// Generation returns the current write generation.
func (p *Path[S]) Generation() uint64 {
	return p.gen.Load()
}

// Begin replaces the stack with first under a new generation.
func (p *Path[S]) Begin(first []S) uint64 {
	p.mu.Lock()
	gen := p.writeLocked(first)
	p.unlockAndNotify()
	return gen
}

// WriteIf replaces the stack with step only while gen is current.
func (p *Path[S]) WriteIf(gen uint64, step []S) bool {
	p.mu.Lock()
	if p.gen.Load() != gen {
		p.mu.Unlock()
		return false
	}
	p.elements = clone(step)
	p.unlockAndNotify()
	return true
}

// Set replaces the whole stack without intermediate steps.
func (p *Path[S]) Set(screens []S) {
	p.Begin(screens)
}

// Push adds a screen on top of the stack.
func (p *Path[S]) Push(screen S) {
	p.mutate(func(elements []S) []S {
		return append(elements, screen)
	})
}

// Pop removes and returns the top screen.
// Returns false if the stack is empty.
func (p *Path[S]) Pop() (S, bool) {
	var top S
	var ok bool
	p.mutate(func(elements []S) []S {
		if len(elements) == 0 {
			return elements
		}
		top, ok = elements[len(elements)-1], true
		return elements[:len(elements)-1]
	})
	return top, ok
}

// RemoveLast removes up to k screens from the top of the stack.
func (p *Path[S]) RemoveLast(k int) {
	p.mutate(func(elements []S) []S {
		k = min(max(k, 0), len(elements))
		return elements[:len(elements)-k]
	})
}

// Peek returns the top screen without removing it.
// Returns false if the stack is empty.
func (p *Path[S]) Peek() (S, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var top S
	if len(p.elements) == 0 {
		return top, false
	}
	return p.elements[len(p.elements)-1], true
}

// IsEmpty returns true if the stack has no screens.
func (p *Path[S]) IsEmpty() bool {
	return p.Len() == 0
}

// Len returns the number of screens in the stack.
func (p *Path[S]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.elements)
}

// Clear removes all screens from the stack.
func (p *Path[S]) Clear() {
	p.Set(nil)
}

// transitionAttempts bounds how often a target function is re-run when the
// stack changes while it computes.
const transitionAttempts = 3

// transition computes the target stack from a snapshot with the lock
// released, so target may read or write the path and may panic without
// wedging it. The first planned step is then written as a new generation.
// If the stack changed while target ran, target runs again on the new
// snapshot; after transitionAttempts the last target is planned against the
// current stack. plan runs under the lock and must not touch the path.
// Nothing is written when target fails.
func (p *Path[S]) transition(target func(start []S) ([]S, error), plan func(start, end []S) [][]S) ([][]S, uint64, error) {
	var end []S
	for attempt := 1; ; attempt++ {
		p.mu.Lock()
		start, gen := clone(p.elements), p.gen.Load()
		p.mu.Unlock()

		var err error
		end, err = target(start)
		if err != nil {
			return nil, p.gen.Load(), err
		}

		p.mu.Lock()
		if p.gen.Load() == gen || attempt >= transitionAttempts {
			break
		}
		p.mu.Unlock()
	}

	route := plan(clone(p.elements), end)
	if len(route) == 0 {
		gen := p.gen.Load()
		p.mu.Unlock()
		return route, gen, nil
	}
	gen := p.writeLocked(route[0])
	p.unlockAndNotify()
	return route, gen, nil
}

func (p *Path[S]) mutate(fn func(elements []S) []S) {
	p.mu.Lock()
	p.writeLocked(fn(clone(p.elements)))
	p.unlockAndNotify()
}

func (p *Path[S]) writeLocked(screens []S) uint64 {
	p.elements = clone(screens)
	return p.gen.Inc()
}

// unlockAndNotify must be called with mu held. It hands the snapshot to the
// observers after releasing mu.
func (p *Path[S]) unlockAndNotify() {
	snapshot := clone(p.elements)
	p.notifyMu.Lock()
	p.mu.Unlock()
	defer p.notifyMu.Unlock()

	for _, fn := range p.observers {
		fn(clone(snapshot))
	}
}

func clone[S any](s []S) []S {
	out := make([]S, len(s))
	copy(out, s)
	return out
}
