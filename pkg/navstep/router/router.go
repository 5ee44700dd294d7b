package router

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/navstep/pkg/navstep/internal"
	"github.com/BrandonKowalski/navstep/pkg/navstep/steps"
)

// Options configures a Router.
type Options struct {
	CanPushMultiple bool          // Platform can animate several pushes in one update
	StepDelay       time.Duration // Wait between visible steps; zero selects constants.DefaultStepDelay
	Clock           steps.Clock   // Time source between steps; nil selects the system clock
	Logger          *slog.Logger  // nil selects the internal library logger
}

// Router owns a navigation Path and is the entry point for changing it.
// Each navigation plans a fresh route from the current stack to the
// requested one and plays it back one visible step at a time. A newer
// navigation supersedes the rest of any route still playing.
type Router[S comparable] struct {
	path            *Path[S]
	canPushMultiple bool
	scheduler       *steps.Scheduler[S]
	logger          *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	// lifecycleMu orders wg.Add in follow against Close.
	lifecycleMu sync.Mutex
	closed      atomic.Bool
	wg          sync.WaitGroup
}

// New creates a Router whose stack starts with the given screens.
func New[S comparable](opts Options, screens ...S) *Router[S] {
	logger := opts.Logger
	if logger == nil {
		logger = internal.GetInternalLogger()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Router[S]{
		path:            NewPath(screens...),
		canPushMultiple: opts.CanPushMultiple,
		scheduler: steps.NewScheduler[S](steps.SchedulerOptions{
			Delay:  opts.StepDelay,
			Clock:  opts.Clock,
			Logger: logger,
		}),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Path returns the navigation stack, for reading and for observing changes.
func (r *Router[S]) Path() *Path[S] {
	return r.path
}

// CanPushMultiple reports the capability flag the router plans with.
func (r *Router[S]) CanPushMultiple() bool {
	return r.canPushMultiple
}

// StepDelay returns the wait between visible steps.
func (r *Router[S]) StepDelay() time.Duration {
	return r.scheduler.Delay()
}

// Closed reports whether Close has been called.
func (r *Router[S]) Closed() bool {
	return r.closed.Load()
}

// Navigate applies transform to a copy of the current stack and moves the
// visible stack to the result. The first step is written before Navigate
// returns; the rest follow in the background. onComplete, if set, is called
// once the final step is written, and never if the route is superseded or
// the router is closed first.
func (r *Router[S]) Navigate(transform func(stack *[]S), onComplete func()) {
	plan, gen, _ := r.begin(typed(transform))
	r.follow(gen, plan, onComplete)
}

// NavigateTo moves the visible stack to target.
func (r *Router[S]) NavigateTo(target []S, onComplete func()) {
	r.Navigate(func(stack *[]S) { *stack = clone(target) }, onComplete)
}

// NavigateAwait is Navigate that blocks until the route has played out.
// It returns nil when the route completes, and also when a newer navigation
// supersedes it or the router is closed; the stack then simply stops where
// the last written step left it. It returns ctx.Err() if ctx ends first.
func (r *Router[S]) NavigateAwait(ctx context.Context, transform func(stack *[]S)) error {
	plan, gen, _ := r.begin(typed(transform))
	return r.await(ctx, gen, plan)
}

// NavigateErased is Navigate over the type-erased view of the stack. The
// transformed path is converted back to S before anything is written, so an
// element of the wrong type fails the call with an *ElementTypeError and
// leaves the stack untouched.
func (r *Router[S]) NavigateErased(transform func(path *NavigationPath), onComplete func()) error {
	plan, gen, err := r.begin(erased[S](transform))
	if err != nil {
		return err
	}
	r.follow(gen, plan, onComplete)
	return nil
}

// NavigateErasedAwait is NavigateAwait over the type-erased view of the stack.
func (r *Router[S]) NavigateErasedAwait(ctx context.Context, transform func(path *NavigationPath)) error {
	plan, gen, err := r.begin(erased[S](transform))
	if err != nil {
		return err
	}
	return r.await(ctx, gen, plan)
}

// Close stops every route still playing and waits for them to exit. The
// stack keeps whatever step was written last. Navigations after Close
// only write their first step.
func (r *Router[S]) Close() {
	r.lifecycleMu.Lock()
	if !r.closed.CompareAndSwap(false, true) {
		r.lifecycleMu.Unlock()
		return
	}
	r.cancel()
	r.lifecycleMu.Unlock()

	r.wg.Wait()
}

func (r *Router[S]) begin(target func(start []S) ([]S, error)) ([][]S, uint64, error) {
	return r.path.transition(target, func(start, end []S) [][]S {
		plan := steps.Plan(start, end, r.canPushMultiple)
		r.logger.Debug("navigation planned",
			"from", len(start), "to", len(end), "steps", len(plan), "push_multiple", r.canPushMultiple)
		return plan
	})
}

func (r *Router[S]) follow(gen uint64, plan [][]S, onComplete func()) {
	r.lifecycleMu.Lock()
	if r.closed.Load() {
		r.lifecycleMu.Unlock()
		return
	}
	r.wg.Add(1)
	r.lifecycleMu.Unlock()

	done := r.scheduler.FollowAsync(r.ctx, r.path, gen, plan[1:], onComplete)
	go func() {
		defer r.wg.Done()
		<-done
	}()
}

func (r *Router[S]) await(ctx context.Context, gen uint64, plan [][]S) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(r.ctx, cancel)
	defer stop()

	r.scheduler.Follow(runCtx, r.path, gen, plan[1:])
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

func typed[S comparable](transform func(stack *[]S)) func(start []S) ([]S, error) {
	return func(start []S) ([]S, error) {
		if transform != nil {
			transform(&start)
		}
		return start, nil
	}
}

func erased[S comparable](transform func(path *NavigationPath)) func(start []S) ([]S, error) {
	return func(start []S) ([]S, error) {
		np := &NavigationPath{elements: Erase(start)}
		if transform != nil {
			transform(np)
		}
		return Recover[S](np.elements)
	}
}
