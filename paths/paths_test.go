package paths_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/padchain/keypad"
	"github.com/katalvlaran/padchain/paths"
)

// render turns routes into their typed strings for readable diffs.
func render(ps []paths.Path) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}

	return out
}

func TestEnumerate_NilKind(t *testing.T) {
	res, err := paths.Enumerate[keypad.Num](nil, keypad.Num1, keypad.Num2)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, paths.ErrNilKind)
}

func TestEnumerate_UnknownSymbol(t *testing.T) {
	res, err := paths.Enumerate(keypad.Numeric, keypad.Num(20), keypad.Num2)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, paths.ErrUnknownSymbol)

	res, err = paths.Enumerate(keypad.Directional, keypad.Up, keypad.Dir(9))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, paths.ErrUnknownSymbol)
}

func TestEnumerate_SameKey(t *testing.T) {
	for _, n := range keypad.Numeric.Symbols() {
		res, err := paths.Enumerate(keypad.Numeric, n, n)
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, render(res), "%s→%s", n, n)
	}
	for _, d := range keypad.Directional.Symbols() {
		res, err := paths.Enumerate(keypad.Directional, d, d)
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, render(res), "%s→%s", d, d)
	}
}

// TestEnumerate_NumericRoutes pins the route sets for representative pairs,
// including the ones that must bend around the gap.
func TestEnumerate_NumericRoutes(t *testing.T) {
	cases := []struct {
		from, to keypad.Num
		want     []string
	}{
		{keypad.NumActivate, keypad.Num0, []string{"<A"}},
		{keypad.Num0, keypad.Num2, []string{"^A"}},
		{keypad.Num2, keypad.Num9, []string{"^^>A", "^>^A", ">^^A"}},
		{keypad.Num9, keypad.NumActivate, []string{"vvvA"}},
		{keypad.NumActivate, keypad.Num1, []string{"^<<A", "<^<A"}},
		{keypad.Num1, keypad.NumActivate, []string{">v>A", ">>vA"}},
		{keypad.Num0, keypad.Num7, []string{"^^^<A", "^^<^A", "^<^^A"}},
	}
	for _, tc := range cases {
		res, err := paths.Enumerate(keypad.Numeric, tc.from, tc.to)
		require.NoError(t, err)
		if diff := cmp.Diff(tc.want, render(res)); diff != "" {
			t.Errorf("Enumerate(%s→%s) mismatch (-want +got):\n%s", tc.from, tc.to, diff)
		}
	}
}

func TestEnumerate_DirectionalRoutes(t *testing.T) {
	cases := []struct {
		from, to keypad.Dir
		want     []string
	}{
		{keypad.Activate, keypad.Left, []string{"v<<A", "<v<A"}},
		{keypad.Left, keypad.Activate, []string{">^>A", ">>^A"}},
		{keypad.Up, keypad.Left, []string{"v<A"}},
		{keypad.Left, keypad.Up, []string{">^A"}},
		{keypad.Activate, keypad.Down, []string{"v<A", "<vA"}},
		{keypad.Right, keypad.Up, []string{"^<A", "<^A"}},
	}
	for _, tc := range cases {
		res, err := paths.Enumerate(keypad.Directional, tc.from, tc.to)
		require.NoError(t, err)
		if diff := cmp.Diff(tc.want, render(res)); diff != "" {
			t.Errorf("Enumerate(%s→%s) mismatch (-want +got):\n%s", tc.from, tc.to, diff)
		}
	}
}

// TestEnumerate_CornerToCorner counts the interleavings of vvv>> that avoid
// the numeric gap: C(5,2) minus the single route through it.
func TestEnumerate_CornerToCorner(t *testing.T) {
	res, err := paths.Enumerate(keypad.Numeric, keypad.Num7, keypad.NumActivate)
	require.NoError(t, err)
	assert.Len(t, res, 9)
	assert.NotContains(t, render(res), "vvv>>A")
}

// checkRoutes replays every route of every pair on k and verifies the
// minimal-length, gap-free, ends-on-target invariants.
func checkRoutes[S keypad.Symbol](t *testing.T, k *keypad.Kind[S]) {
	t.Helper()
	for _, from := range k.Symbols() {
		for _, to := range k.Symbols() {
			res, err := paths.Enumerate(k, from, to)
			require.NoError(t, err, "%s→%s", from, to)
			require.NotEmpty(t, res)

			dist := keypad.Manhattan(k.Position(from), k.Position(to))
			seen := map[string]bool{}
			for _, p := range res {
				assert.Len(t, p, dist+1, "route %s for %s→%s", p, from, to)
				assert.Equal(t, keypad.Activate, p[len(p)-1])
				assert.False(t, seen[p.String()], "duplicate route %s", p)
				seen[p.String()] = true

				at := from
				for _, d := range p.Moves() {
					next, ok := k.Move(at, d)
					require.True(t, ok, "route %s leaves the keypad at %s", p, at)
					assert.NotEqual(t, k.Gap(), k.Position(next))
					at = next
				}
				assert.Equal(t, to, at, "route %s ends on %s", p, at)
			}
		}
	}
}

func TestEnumerate_Invariants(t *testing.T) {
	t.Run("Numeric", func(t *testing.T) { checkRoutes(t, keypad.Numeric) })
	t.Run("Directional", func(t *testing.T) { checkRoutes(t, keypad.Directional) })
}

//----------------------------------------------------------------------------//
// Option Tests
//----------------------------------------------------------------------------//

func TestEnumerate_OnPathHook(t *testing.T) {
	var seen []string
	res, err := paths.Enumerate(keypad.Numeric, keypad.Num2, keypad.Num9,
		paths.WithOnPath(func(p paths.Path) error {
			seen = append(seen, p.String())
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, render(res), seen)
}

func TestEnumerate_OnPathHookAborts(t *testing.T) {
	boom := errors.New("boom")
	res, err := paths.Enumerate(keypad.Numeric, keypad.Num2, keypad.Num9,
		paths.WithOnPath(func(paths.Path) error { return boom }))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
}

func TestEnumerate_Limit(t *testing.T) {
	res, err := paths.Enumerate(keypad.Numeric, keypad.Num7, keypad.NumActivate, paths.WithLimit(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"vv>v>A", "vv>>vA"}, render(res))

	// non-positive limits are ignored
	res, err = paths.Enumerate(keypad.Numeric, keypad.Num7, keypad.NumActivate, paths.WithLimit(-1))
	require.NoError(t, err)
	assert.Len(t, res, 9)
}

func TestPath_Moves(t *testing.T) {
	p := paths.Path{keypad.Up, keypad.Left, keypad.Activate}
	assert.Equal(t, []keypad.Dir{keypad.Up, keypad.Left}, p.Moves())
	assert.Equal(t, "^<A", p.String())
	assert.Empty(t, paths.Path{keypad.Activate}.Moves())
}
