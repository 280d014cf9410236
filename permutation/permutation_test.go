package permutation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendiamond-go/rcomb/permutation"
)

// TestIdentityFill_IsMultiset verifies IdentityFill produces exactly
// [0, C) in some order (trivially identity order here, but the check is
// multiset-based to document the invariant).
func TestIdentityFill_IsMultiset(t *testing.T) {
	p := permutation.New(5)
	p.IdentityFill()
	require.Equal(t, 5, p.Length())

	seen := make(map[int]bool)
	for i := 0; i < p.Capacity(); i++ {
		seen[p.Element(i)] = true
	}
	require.Len(t, seen, 5)
	for i := 0; i < 5; i++ {
		require.True(t, seen[i])
	}
}

// TestSwap_PreservesMultiset checks that repeated swaps never change the
// set of elements present, only their order.
func TestSwap_PreservesMultiset(t *testing.T) {
	p := permutation.New(6)
	p.IdentityFill()
	p.Swap(0, 5)
	p.Swap(1, 3)
	p.Swap(2, 2)

	seen := make(map[int]bool)
	for i := 0; i < p.Capacity(); i++ {
		seen[p.Element(i)] = true
	}
	require.Len(t, seen, 6)
}

// TestSwap_IsItsOwnInverse verifies swap;swap on the same indices
// restores the original state.
func TestSwap_IsItsOwnInverse(t *testing.T) {
	p := permutation.New(4)
	p.IdentityFill()
	before := p.Duplicate()

	p.Swap(1, 3)
	p.Swap(1, 3)

	require.True(t, permutation.Equal(before, p))
}

// TestDuplicate_EqualsOriginal verifies Duplicate produces a distinct
// object that still compares Equal, and that mutating the copy does not
// affect the original.
func TestDuplicate_EqualsOriginal(t *testing.T) {
	p := permutation.New(4)
	p.IdentityFill()
	dup := p.Duplicate()
	require.True(t, permutation.Equal(p, dup))

	dup.Swap(0, 1)
	require.False(t, permutation.Equal(p, dup))
}

// TestCopyAllFrom_RoundTrip verifies that CopyAllFrom chained through a
// fresh intermediate buffer (src to mid to dst) yields permutations
// Equal to src.
func TestCopyAllFrom_RoundTrip(t *testing.T) {
	src := permutation.New(4)
	src.IdentityFill()
	src.Swap(0, 3)

	mid := permutation.New(4)
	mid.CopyAllFrom(src)
	require.True(t, permutation.Equal(src, mid))

	dst := permutation.New(4)
	dst.CopyAllFrom(mid)
	require.True(t, permutation.Equal(src, dst))
}

// TestCopyFrom_UsesSourceLength verifies CopyFrom only copies the
// decided prefix and adopts its length, not the full capacity.
func TestCopyFrom_UsesSourceLength(t *testing.T) {
	src := permutation.New(5)
	src.SetElement(0, 7)
	src.SetElement(1, 8)
	require.Equal(t, 2, src.Length())

	dst := permutation.New(5)
	dst.CopyFrom(src)
	require.Equal(t, 2, dst.Length())
	require.Equal(t, 7, dst.Element(0))
	require.Equal(t, 8, dst.Element(1))
}

// TestElement_PanicsOutOfRange verifies out-of-capacity access panics.
func TestElement_PanicsOutOfRange(t *testing.T) {
	p := permutation.New(3)
	require.Panics(t, func() { p.Element(3) })
	require.Panics(t, func() { p.Element(-1) })
}

// TestElement_AllowsReadBeyondLength verifies reads between Length and
// Capacity are allowed (undecided suffix slots are still addressable).
func TestElement_AllowsReadBeyondLength(t *testing.T) {
	p := permutation.New(3)
	p.SetElement(0, 9)
	require.Equal(t, 1, p.Length())
	require.NotPanics(t, func() { p.Element(2) })
}

// TestDestroy_PanicsOnReuse verifies every method panics after Destroy,
// mirroring the original PM_VALID_MAGIC use-after-free guard.
func TestDestroy_PanicsOnReuse(t *testing.T) {
	p := permutation.New(2)
	p.IdentityFill()
	p.Destroy()

	require.Panics(t, func() { p.Length() })
	require.Panics(t, func() { p.Element(0) })
	require.Panics(t, func() { p.Swap(0, 1) })
	require.Panics(t, func() { p.Destroy() })
}

// TestNew_PanicsOnNegativeCapacity verifies the constructor's
// precondition check.
func TestNew_PanicsOnNegativeCapacity(t *testing.T) {
	require.Panics(t, func() { permutation.New(-1) })
}

// TestString_RendersDecidedPrefix verifies String only shows the
// decided prefix, not the full capacity.
func TestString_RendersDecidedPrefix(t *testing.T) {
	p := permutation.New(5)
	p.SetElement(0, 3)
	p.SetElement(1, 1)
	p.SetElement(2, 4)
	require.Equal(t, "[3 1 4]", p.String())
}
