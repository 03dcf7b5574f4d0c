// Package model defines the data structures for patch mutation.
package model

import "fmt"

// Mode identifies the policy-violation class injected into a patch.
type Mode string

const (
	// ModeUnwrap suppresses explicit error propagation with forced unwraps.
	ModeUnwrap Mode = "unwrap"
	// ModeUnsafe wraps calls in unsafe blocks without a SAFETY justification.
	ModeUnsafe Mode = "unsafe"
	// ModePanic replaces normal control flow with an unconditional abort.
	ModePanic Mode = "panic"
)

// Modes lists every supported mutation mode in display order.
func Modes() []Mode {
	return []Mode{ModeUnwrap, ModeUnsafe, ModePanic}
}

// ParseMode validates a mode identifier coming from the CLI or config.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeUnwrap, ModeUnsafe, ModePanic:
		return Mode(s), nil
	}

	return "", fmt.Errorf("unknown mutation mode: %q (expected unwrap, unsafe or panic)", s)
}

// Description returns a one-line summary used by help output and tables.
func (mo Mode) Description() string {
	switch mo {
	case ModeUnwrap:
		return "replace error propagation with .unwrap() calls"
	case ModeUnsafe:
		return "wrap calls in unsafe blocks without SAFETY comments"
	case ModePanic:
		return "replace control flow with panic!() invocations"
	}

	return "unknown"
}
