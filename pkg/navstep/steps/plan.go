package steps

// StepKind describes how one step differs from the stack before it.
type StepKind int

const (
	StepKindNone StepKind = iota // Identical stacks
	StepKindPop                  // Trailing screens removed
	StepKindPush                 // Screens appended
	StepKindReplace              // Anything else; never produced between adjacent planned steps
)

func (k StepKind) String() string {
	switch k {
	case StepKindNone:
		return "none"
	case StepKindPop:
		return "pop"
	case StepKindPush:
		return "push"
	case StepKindReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// CommonPrefix returns the number of leading elements a and b share.
func CommonPrefix[S comparable](a, b []S) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// Classify reports which kind of transition leads from prev to next.
func Classify[S comparable](prev, next []S) StepKind {
	p := CommonPrefix(prev, next)
	switch {
	case p == len(prev) && p == len(next):
		return StepKindNone
	case p == len(next):
		return StepKindPop
	case p == len(prev):
		return StepKindPush
	default:
		return StepKindReplace
	}
}

// Plan returns the ordered stacks that lead from start to target.
//
// Adjacent entries differ by a single pop or a single push, and the first
// entry differs from start in the same way. When canPushMultiple is false
// every push appends exactly one screen. A pure pop, and start == target,
// yield a single step. The result is never empty and its last element is
// always equal to target. Every returned step is a fresh slice.
func Plan[S comparable](start, target []S, canPushMultiple bool) [][]S {
	p := CommonPrefix(start, target)
	if p == len(target) {
		return [][]S{clone(target)}
	}

	var plan [][]S
	if p < len(start) {
		plan = append(plan, clone(target[:p]))
	}

	if canPushMultiple {
		return append(plan, clone(target))
	}
	for n := p + 1; n <= len(target); n++ {
		plan = append(plan, clone(target[:n]))
	}
	return plan
}

func clone[S any](s []S) []S {
	out := make([]S, len(s))
	copy(out, s)
	return out
}
