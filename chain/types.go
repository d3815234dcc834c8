// Package chain defines the cost operator interfaces, configuration options
// and sentinel errors for keypad indirection chains.
//
// A chain stacks one numeric-keypad layer over depth directional-keypad
// layers over a human. Every layer answers "how many human presses does it
// take to move my finger from one key to another and press it".
//
// Complexity:
//
//	– Time:  O(depth · K² · P · L) to warm all caches, where K is the alphabet
//	   size of a layer, P the routes per pair and L the route length. Each
//	   (from, to) pair is resolved once per layer.
//	– Space: O(depth · K²) cached integers.
//
// Options:
//
//	– Logger:      structured logger for assembly, cache misses and scoring.
//	– MaxSequence: cap on the length of an expanded press sequence.
//	– OnEnumerate: hook fired each time a layer enumerates routes (cache miss).
//
// Errors (sentinel):
//
//	– ErrNegativeDepth    if depth < 0.
//	– ErrDepthTooLarge    if depth > MaxDepth.
//	– ErrInvalidCode      if a code is empty or holds a non-numeric key.
//	– ErrOverflow         if a complexity or total leaves the int64 range.
//	– ErrSequenceTooLong  if an expanded sequence would exceed MaxSequence.
//	– ErrNotPresser       if a layer's inner operator cannot expand presses.
//	– ErrFingerOffPad     if a replayed press moves a finger off its keypad.
//	– ErrBadMaxSequence   if WithMaxSequence is given a non-positive value.
package chain

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/padchain/keypad"
)

// MaxDepth is the deepest chain Build accepts. Press counts grow by roughly
// 2.5× per directional layer; at this depth a three-digit code's complexity
// still fits comfortably in an int64.
const MaxDepth = 32

// DefaultMaxSequence caps Sequence output unless WithMaxSequence overrides it.
const DefaultMaxSequence = 1 << 20

// Sentinel errors returned by the chain implementation.
var (
	// ErrNegativeDepth indicates a negative number of directional layers.
	ErrNegativeDepth = errors.New("chain: depth must be non-negative")

	// ErrDepthTooLarge indicates a depth above MaxDepth.
	ErrDepthTooLarge = errors.New("chain: depth exceeds MaxDepth")

	// ErrInvalidCode indicates an empty code or one holding a key that is
	// not on the numeric keypad.
	ErrInvalidCode = errors.New("chain: invalid code")

	// ErrOverflow indicates an arithmetic result outside the int64 range.
	ErrOverflow = errors.New("chain: int64 overflow")

	// ErrSequenceTooLong indicates an expansion longer than MaxSequence.
	ErrSequenceTooLong = errors.New("chain: press sequence too long")

	// ErrNotPresser indicates an inner operator that only knows costs.
	ErrNotPresser = errors.New("chain: inner operator cannot expand presses")

	// ErrFingerOffPad indicates a replayed move off the keypad or onto its gap.
	ErrFingerOffPad = errors.New("chain: finger moved off keypad")

	// ErrBadMaxSequence indicates a non-positive MaxSequence.
	ErrBadMaxSequence = errors.New("chain: MaxSequence must be positive")
)

// CostOperator is one level of the chain. Cost returns the minimal number of
// human presses needed to move this level's finger from key from to key to
// and press it.
type CostOperator[S keypad.Symbol] interface {
	Cost(from, to S) int64
}

// Presser is implemented by operators that can also spell out one optimal
// press sequence for a transition. AppendPresses appends the human presses
// to dst and returns the extended slice.
type Presser[S keypad.Symbol] interface {
	AppendPresses(dst []keypad.Dir, from, to S) ([]keypad.Dir, error)
}

// Stats reports cache activity of one layer.
type Stats struct {
	Level        int    // 0 is the numeric layer, 1..depth the directional ones
	Keypad       string // keypad name
	Hits         int64  // Cost calls that found the pair already cached or in flight
	Enumerations int64  // route enumerations, exactly one per resolved pair
	Cached       int    // resolved (from, to) pairs
}

// Options configures chain assembly and evaluation.
type Options struct {
	Logger      *slog.Logger                     // Debug-level trace sink
	MaxSequence int                              // Sequence length cap
	OnEnumerate func(level int, from, to string) // fired on every cache miss
}

// Option represents a functional option for configuring a Chain.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger, no hook and
// MaxSequence = DefaultMaxSequence.
func DefaultOptions() Options {
	return Options{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxSequence: DefaultMaxSequence,
		OnEnumerate: nil,
	}
}

// WithLogger routes Debug traces to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxSequence caps the length of sequences returned by Chain.Sequence.
// Non-positive values panic with ErrBadMaxSequence.
func WithMaxSequence(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxSequence.Error())
		}
		o.MaxSequence = n
	}
}

// WithOnEnumerate installs fn as a cache-miss hook. It receives the layer
// level and the rendered keys of the transition being resolved.
func WithOnEnumerate(fn func(level int, from, to string)) Option {
	return func(o *Options) {
		o.OnEnumerate = fn
	}
}
