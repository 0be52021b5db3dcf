// Package debugcheck holds development-time assertions for usage errors
// such as drawing with a closed pen or popping an empty transform stack.
//
// Assertions are compiled in only with the uigfxdebug build tag:
//
//	go test -tags uigfxdebug ./...
//
// Without the tag Enabled is a false constant, so guarded checks are
// removed by the compiler and misuse is undefined behavior.
package debugcheck

import "fmt"

// UsageError is the panic value raised by a failed assertion.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return "uigfx: usage error: " + e.Msg
}

// Assert panics with a *UsageError when cond is false and assertions are
// enabled.
func Assert(cond bool, format string, args ...any) {
	if !Enabled || cond {
		return
	}
	panic(&UsageError{Msg: fmt.Sprintf(format, args...)})
}
