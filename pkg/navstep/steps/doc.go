// Package steps turns an arbitrary change of a navigation stack into a
// sequence of single visible transitions and plays that sequence back onto
// a stack owner with a fixed delay between transitions.
//
// Some platforms can only animate one pop or one push per update. Writing a
// stack that differs from the visible one in several places at once makes
// those platforms jump without animation, or drop screens entirely. Plan
// computes the intermediate stacks, and Scheduler writes them one after
// another:
//
//	plan := steps.Plan([]string{"A", "B", "C"}, []string{"A", "D", "E"}, false)
//	// [[A] [A D] [A D E]]
//
//	sched := steps.NewScheduler[string](steps.SchedulerOptions{})
//	sched.Run(ctx, store, plan)
//
// # Supersession
//
// Every schedule is tied to the generation the Store hands out when the
// first step is written. Any later write to the store starts a new
// generation, and a delayed step is only written while its generation is
// still current. A newer navigation therefore always wins, and the older
// schedule stops silently without writing anything else.
package steps
