// Package paths enumerates the minimal finger routes between two keys of a
// keypad.Kind.
//
// What:
//
//   - Enumerate(k, from, to, opts...) returns every move sequence of length
//     Manhattan(from, to) that stays on real keys, each terminated by an
//     Activate press. from == to yields the single path [A].
//   - Exploration is depth-first. A move is tried only if it shrinks the
//     remaining distance on an axis that is not yet aligned, so no path ever
//     backtracks; the gap is pruned at the step that would land on it.
//
// Why:
//
//   - A robot pressing a key on the keypad it operates must choose among
//     these routes. Which one is cheapest depends on the keypads further down
//     the chain, so all of them are handed to the caller.
//
// Complexity:
//
//   - Time: O(P·L) for P paths of length L; both are tiny on the fixed
//     keypads (P ≤ 10 on the numeric keypad).
//   - Memory: O(L) recursion plus the result.
//
// Options:
//
//   - WithOnPath(fn)   hook invoked per discovered path; an error aborts.
//   - WithLimit(n)     stop after n paths (0 = no limit).
//
// Errors:
//
//   - ErrNilKind        k is nil.
//   - ErrUnknownSymbol  from or to is not a key of k.
//   - ErrNoPath         no gap-avoiding minimal route exists. The pruning rule
//     is only known to find a route for the two fixed layouts in package keypad;
//     a new layout needs this re-verified.
//   - any error returned by the OnPath hook.
package paths
