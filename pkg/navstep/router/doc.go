// Package router owns a navigation stack and moves it between arbitrary
// states one visible step at a time.
//
// Screens are identified by any comparable type. Applications usually
// declare typed constants or small structs:
//
//	type Screen struct {
//	    Kind string
//	    ID   int
//	}
//
//	r := router.New[Screen](router.Options{CanPushMultiple: false}, Screen{Kind: "home"})
//	defer r.Close()
//
//	r.Path().OnChange(func(stack []Screen) {
//	    render(stack)
//	})
//
//	// Push two screens. Without multi-push support the stack moves
//	// [home] -> [home list] -> [home list detail], one step per StepDelay.
//	r.Navigate(func(stack *[]Screen) {
//	    *stack = append(*stack, Screen{Kind: "list"}, Screen{Kind: "detail", ID: 7})
//	}, nil)
//
// # Supersession
//
// Navigations never queue. A new navigation plans from whatever stack is
// visible at that moment, writes its first step immediately and discards
// the remaining steps of any earlier route. Direct writes through Path
// (Push, Pop, Set and friends) supersede running routes the same way.
//
// # Type-erased stacks
//
// NavigateErased exposes the stack as a NavigationPath of untyped screens.
// The result is converted back with Recover before it is written; a screen
// of the wrong type is reported as an *ElementTypeError instead of being
// written.
package router
