package stencil

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Stencil is an ascending, duplicate-free sequence of integer grid offsets.
// The zero value is invalid; use New, FromRange or Parse.
type Stencil []int

// New normalizes arbitrary user input into a Stencil: offsets are copied,
// sorted ascending and deduplicated.
//
// Returns ErrEmpty when no offsets are given.
// Complexity: O(L log L), Memory: O(L).
func New(offsets ...int) (Stencil, error) {
	if len(offsets) == 0 {
		return nil, ErrEmpty
	}

	// 1) Copy so the caller's slice stays untouched.
	s := make(Stencil, len(offsets))
	copy(s, offsets)

	// 2) Sort ascending.
	sort.Ints(s)

	// 3) Deduplicate in place (slice is sorted, equal runs are adjacent).
	w := 1
	for r := 1; r < len(s); r++ {
		if s[r] != s[w-1] {
			s[w] = s[r]
			w++
		}
	}
	return s[:w], nil
}

// FromRange builds the inclusive run lo, lo+1, …, hi.
//
// Returns ErrBadRange when lo > hi.
// Complexity: O(hi−lo).
func FromRange(lo, hi int) (Stencil, error) {
	if lo > hi {
		return nil, fmt.Errorf("FromRange [%d:%d]: %w", lo, hi, ErrBadRange)
	}

	s := make(Stencil, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		s = append(s, v)
	}
	return s, nil
}

// Parse reads a stencil from text. Accepted forms:
//
//   - an inclusive range "lo:hi" (also "lo..hi"), e.g. "-2:2"
//   - a list of integers separated by commas and/or spaces, optionally
//     wrapped in {…} or […], e.g. "-1,0,1" or "{2 0 -1 0}"
//
// The result is normalized exactly as by New.
// Returns ErrSyntax for anything else, ErrEmpty for a blank list.
func Parse(text string) (Stencil, error) {
	t := strings.TrimSpace(text)
	t = strings.TrimPrefix(t, "{")
	t = strings.TrimPrefix(t, "[")
	t = strings.TrimSuffix(t, "}")
	t = strings.TrimSuffix(t, "]")
	t = strings.TrimSpace(t)
	if t == "" {
		return nil, fmt.Errorf("Parse %q: %w", text, ErrEmpty)
	}

	// Range form first: one separator, two integer ends.
	if sep := rangeSeparator(t); sep != "" {
		parts := strings.SplitN(t, sep, 2)
		lo, errLo := strconv.Atoi(strings.TrimSpace(parts[0]))
		hi, errHi := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errLo != nil || errHi != nil {
			return nil, fmt.Errorf("Parse %q: %w", text, ErrSyntax)
		}
		s, err := FromRange(lo, hi)
		if err != nil {
			return nil, fmt.Errorf("Parse %q: %w", text, ErrBadRange)
		}
		return s, nil
	}

	// List form: split on commas and whitespace.
	fields := strings.FieldsFunc(t, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("Parse %q: %w", text, ErrEmpty)
	}
	offsets := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("Parse %q: %w", text, ErrSyntax)
		}
		offsets = append(offsets, v)
	}
	return New(offsets...)
}

// rangeSeparator reports which range separator t uses, or "" for none.
// ":" is only a range separator when it splits the text in two; ".." wins
// over ":" so "-2..2" is not misread.
func rangeSeparator(t string) string {
	if strings.Contains(t, "..") {
		return ".."
	}
	// A leading "-" belongs to the first number, not to a separator.
	if strings.Count(t, ":") == 1 {
		return ":"
	}
	return ""
}

// Clone returns an independent copy.
func (s Stencil) Clone() Stencil {
	if s == nil {
		return nil
	}
	c := make(Stencil, len(s))
	copy(c, s)
	return c
}

// Min returns the smallest offset. Assumes the construction invariant
// (non-empty, ascending).
func (s Stencil) Min() int { return s[0] }

// Max returns the largest offset. Assumes the construction invariant.
func (s Stencil) Max() int { return s[len(s)-1] }

// Contains reports whether offset is present.
// Complexity: O(log L) via binary search on the ascending order.
func (s Stencil) Contains(offset int) bool {
	i := sort.SearchInts(s, offset)
	return i < len(s) && s[i] == offset
}

// IsSymmetric reports whether the stencil is symmetric around zero:
// for every offset j, −j is also present. The sorted ascending form makes
// this a single sweep from both ends.
// Complexity: O(L), no allocations.
func (s Stencil) IsSymmetric() bool {
	for i, j := 0, len(s)-1; i <= j; i, j = i+1, j-1 {
		if s[i]+s[j] != 0 {
			return false
		}
	}
	return true
}

// String renders the stencil in brace form, e.g. "{-2,-1,0,1,2}".
func (s Stencil) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('}')
	return b.String()
}
