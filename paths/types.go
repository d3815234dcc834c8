// Package paths defines the Path type, options and sentinel errors for
// minimal route enumeration.
package paths

import (
	"errors"
	"strings"

	"github.com/katalvlaran/padchain/keypad"
)

var (
	// ErrNilKind is returned when a nil *keypad.Kind is passed to Enumerate.
	ErrNilKind = errors.New("paths: keypad kind is nil")

	// ErrUnknownSymbol indicates that from or to is not a key of the keypad.
	ErrUnknownSymbol = errors.New("paths: symbol not on keypad")

	// ErrNoPath indicates that no minimal gap-avoiding route exists.
	// For the fixed keypads this is an invariant violation.
	ErrNoPath = errors.New("paths: no minimal path")
)

// Path is one minimal route: finger moves followed by a single Activate.
type Path []keypad.Dir

// Moves returns the finger moves without the trailing Activate.
func (p Path) Moves() []keypad.Dir {
	if n := len(p); n > 0 && p[n-1] == keypad.Activate {
		return p[:n-1]
	}

	return p
}

// String renders the path the way it would be typed, e.g. "<^^A".
func (p Path) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, d := range p {
		b.WriteString(d.String())
	}

	return b.String()
}

// Option configures Enumerate.
type Option func(*Options)

// Options holds configurable parameters for enumeration.
type Options struct {
	// OnPath, if non-nil, is invoked with every discovered path, in
	// discovery order. Returning an error aborts enumeration with that error.
	OnPath func(p Path) error

	// Limit, if positive, stops enumeration after that many paths.
	// Default is 0 (no limit).
	Limit int
}

// DefaultOptions returns Options with no hook and no limit.
func DefaultOptions() Options {
	return Options{
		OnPath: nil,
		Limit:  0,
	}
}

// WithOnPath returns an Option that installs fn as a per-path hook.
func WithOnPath(fn func(p Path) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

// WithLimit returns an Option that caps the number of returned paths.
// Non-positive values keep the default (no limit).
func WithLimit(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Limit = n
		}
	}
}
