// Package chain evaluates door codes through a keypad indirection chain.
//
// A Chain of depth N is
//
//	numeric layer → directional layer 1 → … → directional layer N → Human
//
// where each arrow reads "is operated by". Cost queries flow top-down and
// come back as memoized integers; no layer ever materializes the key
// sequence of the layers below it, so evaluation time grows linearly with N.
//
// Notes on implementation choices:
//
//   - Each Build returns fresh caches. Chains of different depth never share
//     results, since the same transition costs differently at each depth.
//   - Within one chain the caches persist across codes.
//   - Arithmetic on complexities and totals is overflow-checked.
package chain

import (
	"fmt"
	"math"

	"github.com/katalvlaran/padchain/keypad"
)

// Chain is an assembled stack of layers with fresh caches.
type Chain struct {
	depth   int
	opts    Options
	numeric *Layer[keypad.Num]
	dirs    []*Layer[keypad.Dir] // dirs[0] operates the numeric robot
}

// Build assembles a chain with depth directional layers between the numeric
// layer and the human.
//
// Preconditions and validation (in order):
//  1. depth ≥ 0 (ErrNegativeDepth).
//  2. depth ≤ MaxDepth (ErrDepthTooLarge).
//
// Complexity: O(depth) time and memory; caches start empty.
func Build(depth int, opts ...Option) (*Chain, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: %d > %d", ErrDepthTooLarge, depth, MaxDepth)
	}

	c := &Chain{depth: depth, opts: DefaultOptions()}
	var opt Option
	for _, opt = range opts {
		opt(&c.opts)
	}
	c.opts.Logger = c.opts.Logger.With("component", "chain")

	// Stack bottom-up so every layer knows its inner operator.
	var below CostOperator[keypad.Dir] = Human{}
	c.dirs = make([]*Layer[keypad.Dir], depth)
	for i := depth - 1; i >= 0; i-- {
		l := newLayer(keypad.Directional, below, i+1, &c.opts)
		c.dirs[i] = l
		below = l
	}
	c.numeric = newLayer(keypad.Numeric, below, 0, &c.opts)

	c.opts.Logger.Debug("chain assembled", "depth", depth)

	return c, nil
}

// Depth returns the number of directional layers.
func (c *Chain) Depth() int { return c.depth }

// Numeric returns the outermost layer.
func (c *Chain) Numeric() *Layer[keypad.Num] { return c.numeric }

// Directional returns directional layer i, 1 ≤ i ≤ Depth(); layer 1 drives
// the numeric robot and layer Depth() is driven by the human.
func (c *Chain) Directional(i int) (*Layer[keypad.Dir], bool) {
	if i < 1 || i > c.depth {
		return nil, false
	}

	return c.dirs[i-1], true
}

// Stats returns cache activity for every layer, numeric layer first.
func (c *Chain) Stats() []Stats {
	out := make([]Stats, 0, c.depth+1)
	out = append(out, c.numeric.Stats())
	for _, l := range c.dirs {
		out = append(out, l.Stats())
	}

	return out
}

// validate rejects empty codes and keys not on the numeric keypad.
func validate(code keypad.Code) error {
	if len(code) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidCode)
	}
	for i, n := range code {
		if !keypad.Numeric.Contains(n) {
			return fmt.Errorf("%w: key %d at offset %d", ErrInvalidCode, n, i)
		}
	}

	return nil
}

// Presses returns the minimal number of human presses that type code,
// starting with the numeric finger on A.
// Complexity: O(len(code)) once the caches are warm.
func (c *Chain) Presses(code keypad.Code) (int64, error) {
	if err := validate(code); err != nil {
		return 0, err
	}
	var (
		total int64
		ok    bool
	)
	prev := keypad.NumActivate
	for _, n := range code {
		if total, ok = addInt64(total, c.numeric.Cost(prev, n)); !ok {
			return 0, fmt.Errorf("%w: presses for %s", ErrOverflow, code)
		}
		prev = n
	}

	return total, nil
}

// Complexity returns Presses(code) × code.Value(). A value or product
// beyond int64 fails with ErrOverflow.
func (c *Chain) Complexity(code keypad.Code) (int64, error) {
	presses, err := c.Presses(code)
	if err != nil {
		return 0, err
	}
	value, err := code.Value()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	product, ok := mulInt64(presses, value)
	if !ok {
		return 0, fmt.Errorf("%w: %d × %d for %s", ErrOverflow, presses, value, code)
	}
	c.opts.Logger.Debug("code scored",
		"code", code.String(),
		"presses", presses,
		"value", value,
		"complexity", product,
	)

	return product, nil
}

// Score sums the complexities of codes, in order. Caches filled by earlier
// codes serve later ones.
func (c *Chain) Score(codes []keypad.Code) (int64, error) {
	var (
		total int64
		ok    bool
	)
	for _, code := range codes {
		v, err := c.Complexity(code)
		if err != nil {
			return 0, err
		}
		if total, ok = addInt64(total, v); !ok {
			return 0, fmt.Errorf("%w: total after %s", ErrOverflow, code)
		}
	}

	return total, nil
}

// Solve builds a fresh chain of the given depth and scores codes through it:
// the sum over codes of minimal presses × numeric value.
//
//	total, err := chain.Solve(codes, 2)   // short chain
//	total, err := chain.Solve(codes, 25)  // long chain
func Solve(codes []keypad.Code, depth int, opts ...Option) (int64, error) {
	c, err := Build(depth, opts...)
	if err != nil {
		return 0, err
	}

	return c.Score(codes)
}

// addInt64 adds two non-negative values, reporting false on overflow.
func addInt64(a, b int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return 0, false
	}

	return a + b, true
}

// mulInt64 multiplies two non-negative values, reporting false on overflow.
func mulInt64(a, b int64) (int64, bool) {
	if a != 0 && b > math.MaxInt64/a {
		return 0, false
	}

	return a * b, true
}
