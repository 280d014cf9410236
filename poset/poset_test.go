package poset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendiamond-go/rcomb/poset"
)

// TestClosure_TransitiveChain verifies that a two-edge chain 0<1<2
// closes to 0<2 (and its mirror 2>0), matching the engine's worked
// example of transitive closure over a chain.
func TestClosure_TransitiveChain(t *testing.T) {
	po := poset.New(3)
	po.SetOrder(0, 1, poset.LT)
	po.SetOrder(1, 2, poset.LT)
	po.Closure()

	require.Equal(t, poset.LT, po.Get(0, 2))
	require.Equal(t, poset.GT, po.Get(2, 0))
}

// TestSetOrder_MirrorsInverse verifies every SetOrder also writes the
// inverse relation into the mirrored cell.
func TestSetOrder_MirrorsInverse(t *testing.T) {
	po := poset.New(2)
	po.SetOrder(0, 1, poset.LT)
	require.Equal(t, poset.GT, po.Get(1, 0))

	po.SetOrder(0, 1, poset.EQ)
	require.Equal(t, poset.EQ, po.Get(1, 0))
}

// TestClosure_Idempotent verifies a second Closure call makes no
// further changes to an already-closed order.
func TestClosure_Idempotent(t *testing.T) {
	po := poset.New(4)
	po.SetOrder(0, 1, poset.LT)
	po.SetOrder(1, 2, poset.LT)
	po.SetOrder(2, 3, poset.LT)
	po.Closure()

	before := make([]poset.Relation, 0, 16)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			before = append(before, po.Get(i, j))
		}
	}

	po.Closure()

	idx := 0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.Equal(t, before[idx], po.Get(i, j))
			idx++
		}
	}
}

// TestClosure_DoesNotBridgeThroughEQ verifies the documented limitation:
// EQ edges do not propagate transitivity the way LT/GT edges do.
func TestClosure_DoesNotBridgeThroughEQ(t *testing.T) {
	po := poset.New(3)
	po.SetOrder(0, 1, poset.EQ)
	po.SetOrder(1, 2, poset.EQ)
	po.Closure()

	require.Equal(t, poset.Incomparable, po.Get(0, 2))
}

// TestIsMin_Basic verifies IsMin only holds for elements with nothing
// strictly less than them.
func TestIsMin_Basic(t *testing.T) {
	po := poset.New(3)
	po.SetOrder(0, 1, poset.LT)
	po.SetOrder(1, 2, poset.LT)

	require.True(t, po.IsMin(0))
	require.False(t, po.IsMin(1))
	require.False(t, po.IsMin(2))
}

// TestIsComparable_Basic verifies IsComparable/IsIncomparable agree with
// explicitly set and default (Incomparable) relations.
func TestIsComparable_Basic(t *testing.T) {
	po := poset.New(3)
	po.SetOrder(0, 1, poset.LT)

	require.True(t, po.IsComparable(0, 1))
	require.True(t, po.IsIncomparable(0, 2))
	require.False(t, po.IsComparable(0, 2))
}

// TestRelation_Inverse verifies LT/GT invert to each other, EQ inverts
// to itself, and Incomparable inverts to itself.
func TestRelation_Inverse(t *testing.T) {
	require.Equal(t, poset.GT, poset.LT.Inverse())
	require.Equal(t, poset.LT, poset.GT.Inverse())
	require.Equal(t, poset.EQ, poset.EQ.Inverse())
	require.Equal(t, poset.Incomparable, poset.Incomparable.Inverse())
}

// TestGet_PanicsOutOfRange verifies Get/SetOrder enforce the
// dimension bound.
func TestGet_PanicsOutOfRange(t *testing.T) {
	po := poset.New(2)
	require.Panics(t, func() { po.Get(2, 0) })
	require.Panics(t, func() { po.SetOrder(0, -1, poset.LT) })
}
