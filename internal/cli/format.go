package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/BrandonKowalski/navstep/pkg/navstep/steps"
)

// formatStack renders a stack as [A B C].
func formatStack(stack []string) string {
	return "[" + strings.Join(stack, " ") + "]"
}

func kindColor(kind steps.StepKind) *color.Color {
	switch kind {
	case steps.StepKindPop:
		return popColor
	case steps.StepKindPush:
		return pushColor
	default:
		return noneColor
	}
}

// printStep prints one step line: "  2. push [A D]".
func printStep(w io.Writer, index int, kind steps.StepKind, stack []string) {
	_, _ = fmt.Fprintf(w, "  %d. ", index)
	_, _ = kindColor(kind).Fprintf(w, "%-4s", kind)
	_, _ = fmt.Fprintf(w, " %s\n", formatStack(stack))
}

func printHeader(w io.Writer, format string, args ...any) {
	_, _ = headerColor.Fprintf(w, format, args...)
	_, _ = fmt.Fprintln(w)
}
