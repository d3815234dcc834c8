package chain

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/padchain/keypad"
	"github.com/katalvlaran/padchain/paths"
)

// Human is the bottom of every chain: pressing a key is one action,
// whatever key the previous press was on.
type Human struct{}

// Cost returns 1 for any transition.
func (Human) Cost(_, _ keypad.Dir) int64 { return 1 }

// AppendPresses appends the single key the human presses.
func (Human) AppendPresses(dst []keypad.Dir, _, to keypad.Dir) ([]keypad.Dir, error) {
	return append(dst, to), nil
}

// pair is a cache key.
type pair[S keypad.Symbol] struct {
	from, to S
}

// resolved is a cached transition: its minimal cost and the route achieving it.
type resolved struct {
	cost int64
	best paths.Path
}

// slot holds one cache entry. The first caller for a key fills it; callers
// arriving meanwhile wait on once and read the same answer.
type slot struct {
	once  sync.Once
	r     resolved
	fault error
}

// Layer operates one keypad through an inner directional operator and
// memoizes every (from, to) it resolves. The cache is private to the layer
// and safe for concurrent use.
type Layer[S keypad.Symbol] struct {
	kind  *keypad.Kind[S]
	inner CostOperator[keypad.Dir]
	level int
	opts  *Options

	mu    sync.RWMutex
	cache map[pair[S]]*slot

	hits         atomic.Int64
	enumerations atomic.Int64
}

// NewLayer returns a standalone layer operating k through inner, with an
// empty cache. Use Build to assemble a whole chain.
func NewLayer[S keypad.Symbol](k *keypad.Kind[S], inner CostOperator[keypad.Dir], opts ...Option) *Layer[S] {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return newLayer(k, inner, 0, &o)
}

func newLayer[S keypad.Symbol](k *keypad.Kind[S], inner CostOperator[keypad.Dir], level int, o *Options) *Layer[S] {
	return &Layer[S]{
		kind:  k,
		inner: inner,
		level: level,
		opts:  o,
		cache: make(map[pair[S]]*slot),
	}
}

// Cost returns the minimal number of human presses that move this layer's
// finger from from to to and press to.
//
// Steps:
//  1. Return the cached answer if (from, to) was resolved before.
//  2. Enumerate every minimal route on the layer's keypad.
//  3. Price each route by walking it with the inner operator, starting from
//     Activate (where the inner finger rests after the previous press) and
//     ending on the route's trailing Activate.
//  4. Cache and return the cheapest.
//
// Keys outside the keypad, a keypad with no route between two keys, or a
// cost beyond int64 (ErrOverflow) are invariant violations and panic. A
// failed key keeps panicking on every later call.
func (l *Layer[S]) Cost(from, to S) int64 {
	return l.resolve(from, to).cost
}

// resolve implements Cost and also yields the winning route.
func (l *Layer[S]) resolve(from, to S) resolved {
	key := pair[S]{from: from, to: to}

	// 1) Cache lookup
	l.mu.RLock()
	s, ok := l.cache[key]
	l.mu.RUnlock()
	if !ok {
		l.mu.Lock()
		if s, ok = l.cache[key]; !ok {
			s = &slot{}
			l.cache[key] = s
		}
		l.mu.Unlock()
	}
	if ok {
		l.hits.Add(1)
	}

	s.once.Do(func() {
		defer func() {
			if p := recover(); p != nil {
				if err, isErr := p.(error); isErr {
					s.fault = err
				} else {
					s.fault = fmt.Errorf("chain: layer %d: %v", l.level, p)
				}
			}
		}()
		s.r, s.fault = l.compute(from, to)
	})
	if s.fault != nil {
		panic(s.fault)
	}

	return s.r
}

// compute runs steps 2-4 of Cost for a key nobody has resolved yet.
func (l *Layer[S]) compute(from, to S) (resolved, error) {
	// 2) Enumerate candidate routes
	routes, err := paths.Enumerate(l.kind, from, to)
	if err != nil {
		return resolved{}, fmt.Errorf("chain: layer %d: %w", l.level, err)
	}
	l.enumerations.Add(1)
	if l.opts.OnEnumerate != nil {
		l.opts.OnEnumerate(l.level, from.String(), to.String())
	}

	// 3) Price every route through the inner operator
	r := resolved{cost: math.MaxInt64}
	for _, route := range routes {
		var total int64
		cur := keypad.Activate
		for _, d := range route {
			var ok bool
			if total, ok = addInt64(total, l.inner.Cost(cur, d)); !ok {
				return resolved{}, fmt.Errorf("%w: layer %d route %s→%s", ErrOverflow, l.level, from, to)
			}
			cur = d
		}
		if total < r.cost {
			r = resolved{cost: total, best: route}
		}
	}

	// 4) The caller's slot stores the result
	l.opts.Logger.Debug("transition resolved",
		"level", l.level,
		"keypad", l.kind.Name(),
		"from", from.String(),
		"to", to.String(),
		"routes", len(routes),
		"best", r.best.String(),
		"cost", r.cost,
	)

	return r, nil
}

// AppendPresses appends one optimal human press sequence for from→to.
// The inner operator must implement Presser[keypad.Dir].
func (l *Layer[S]) AppendPresses(dst []keypad.Dir, from, to S) ([]keypad.Dir, error) {
	p, ok := l.inner.(Presser[keypad.Dir])
	if !ok {
		return dst, fmt.Errorf("%w: layer %d over %T", ErrNotPresser, l.level, l.inner)
	}
	r := l.resolve(from, to)
	cur := keypad.Activate
	var err error
	for _, d := range r.best {
		if dst, err = p.AppendPresses(dst, cur, d); err != nil {
			return dst, err
		}
		cur = d
	}

	return dst, nil
}

// Kind returns the keypad this layer operates.
func (l *Layer[S]) Kind() *keypad.Kind[S] { return l.kind }

// Stats returns a snapshot of the layer's cache activity.
func (l *Layer[S]) Stats() Stats {
	l.mu.RLock()
	cached := len(l.cache)
	l.mu.RUnlock()

	return Stats{
		Level:        l.level,
		Keypad:       l.kind.Name(),
		Hits:         l.hits.Load(),
		Enumerations: l.enumerations.Load(),
		Cached:       cached,
	}
}
