// File: stencil/stencil_test.go
package stencil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/findiff/stencil"
)

// TestNew_NormalizesInput verifies sorting, deduplication and input
// isolation: the caller's slice must never be reordered.
func TestNew_NormalizesInput(t *testing.T) {
	raw := []int{2, 0, -1, 2, 0, 1}
	s, err := stencil.New(raw...)
	require.NoError(t, err, "normalizable input must construct")

	assert.Equal(t, stencil.Stencil{-1, 0, 1, 2}, s, "expected ascending distinct offsets")
	assert.Equal(t, []int{2, 0, -1, 2, 0, 1}, raw, "caller slice must stay untouched")
}

// TestNew_SingleOffset covers the L=1 lower bound.
func TestNew_SingleOffset(t *testing.T) {
	s, err := stencil.New(0)
	require.NoError(t, err)
	assert.Equal(t, stencil.Stencil{0}, s)
}

// TestNew_Empty ensures the empty input fails with the dedicated sentinel.
func TestNew_Empty(t *testing.T) {
	_, err := stencil.New()
	assert.ErrorIs(t, err, stencil.ErrEmpty, "empty input must yield ErrEmpty")
}

// TestFromRange covers the inclusive run and the inverted-range failure.
func TestFromRange(t *testing.T) {
	s, err := stencil.FromRange(-2, 2)
	require.NoError(t, err)
	assert.Equal(t, stencil.Stencil{-2, -1, 0, 1, 2}, s)

	// Degenerate one-point range is legal.
	s, err = stencil.FromRange(3, 3)
	require.NoError(t, err)
	assert.Equal(t, stencil.Stencil{3}, s)

	_, err = stencil.FromRange(1, -1)
	assert.ErrorIs(t, err, stencil.ErrBadRange)
}

// TestParse exercises every accepted textual form against the equivalent
// New/FromRange construction.
func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want stencil.Stencil
	}{
		{"colon range", "-2:2", stencil.Stencil{-2, -1, 0, 1, 2}},
		{"dotted range", "-1..1", stencil.Stencil{-1, 0, 1}},
		{"comma list", "-1,0,1", stencil.Stencil{-1, 0, 1}},
		{"space list", "2 0 -1", stencil.Stencil{-1, 0, 2}},
		{"braced list", "{1, -1, 0}", stencil.Stencil{-1, 0, 1}},
		{"bracketed dup list", "[0 0 1]", stencil.Stencil{0, 1}},
		{"single offset", "5", stencil.Stencil{5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := stencil.Parse(tc.in)
			require.NoError(t, err, "input %q must parse", tc.in)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestParse_Failures pins the sentinel for each malformed family.
func TestParse_Failures(t *testing.T) {
	for _, in := range []string{"", "{}", "  "} {
		_, err := stencil.Parse(in)
		assert.ErrorIs(t, err, stencil.ErrEmpty, "blank input %q", in)
	}
	for _, in := range []string{"a,b", "1;2", "1.5", "one:two"} {
		_, err := stencil.Parse(in)
		assert.ErrorIs(t, err, stencil.ErrSyntax, "malformed input %q", in)
	}
	_, err := stencil.Parse("2:-2")
	assert.ErrorIs(t, err, stencil.ErrBadRange, "inverted range must fail")
}

// TestAccessors covers Min/Max/Contains/Clone on a known stencil.
func TestAccessors(t *testing.T) {
	s, err := stencil.New(4, -2, 0)
	require.NoError(t, err)

	assert.Equal(t, -2, s.Min())
	assert.Equal(t, 4, s.Max())
	assert.True(t, s.Contains(0))
	assert.False(t, s.Contains(1))

	c := s.Clone()
	assert.Equal(t, s, c)
	c[0] = 99
	assert.Equal(t, -2, s.Min(), "mutating the clone must not leak into the original")
}

// TestIsSymmetric pins the symmetry predicate used by search tie-breaking.
func TestIsSymmetric(t *testing.T) {
	sym := []stencil.Stencil{{0}, {-1, 1}, {-1, 0, 1}, {-2, -1, 0, 1, 2}}
	for _, s := range sym {
		assert.True(t, s.IsSymmetric(), "%v must be symmetric", s)
	}
	asym := []stencil.Stencil{{1}, {0, 1}, {-1, 0, 2}, {-2, -1, 1, 3}}
	for _, s := range asym {
		assert.False(t, s.IsSymmetric(), "%v must not be symmetric", s)
	}
}

// TestString pins the brace rendering used in error messages and the CLI.
func TestString(t *testing.T) {
	s, err := stencil.New(1, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, "{-1,0,1}", s.String())
}
