// Package rbtree_test exercises the public Tree API: the red-black rules after
// every mutation, key ordering, membership, the height bound and the handle
// contract of deletes.
package rbtree_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ordtree/rbtree"
)

const seed = 42

func build(keys ...int) *rbtree.Tree[int] {
	t := rbtree.New[int]()
	for _, k := range keys {
		t.Insert(k)
	}

	return t
}

// ------------------------------------------------------------------------
// 1. Scenarios with known shapes.
// ------------------------------------------------------------------------

func TestInsert_AscendingTripleRotatesLeft(t *testing.T) {
	tr := build(10, 20, 30)
	require.NoError(t, tr.Validate())

	root := tr.Root()
	key, err := tr.Key(root)
	require.NoError(t, err)
	assert.Equal(t, 20, key)
	assert.Equal(t, rbtree.Black, tr.ColorOf(root))

	left, right := tr.Left(root), tr.Right(root)
	lk, _ := tr.Key(left)
	rk, _ := tr.Key(right)
	assert.Equal(t, 10, lk)
	assert.Equal(t, 30, rk)
	// The old grandparent 10 is recoloured Red by the outer-child case and
	// the new node 30 keeps its insertion colour.
	assert.Equal(t, rbtree.Red, tr.ColorOf(left))
	assert.Equal(t, rbtree.Red, tr.ColorOf(right))
	assert.Equal(t, root, tr.Parent(left))
	assert.Equal(t, root, tr.Parent(right))
	assert.Equal(t, rbtree.Nil, tr.Parent(root))
}

func TestInsert_UncleRedRecolours(t *testing.T) {
	tr := build(50, 30, 70, 20)
	require.NoError(t, tr.Validate())

	root := tr.Root()
	assert.Equal(t, rbtree.Black, tr.ColorOf(root))
	assert.Equal(t, rbtree.Black, tr.ColorOf(tr.Left(root)))
	assert.Equal(t, rbtree.Black, tr.ColorOf(tr.Right(root)))
	assert.Equal(t, rbtree.Red, tr.ColorOf(tr.Left(tr.Left(root))))
	assert.Equal(t, 2, tr.BlackHeight())
}

func TestDelete_TwoChildrenTakesSuccessorKey(t *testing.T) {
	tr := build(50, 30, 70, 20, 40, 60, 80)
	require.NoError(t, tr.Validate())

	h30, ok := tr.Search(30)
	require.True(t, ok)
	h40, ok := tr.Search(40)
	require.True(t, ok)

	require.True(t, tr.Delete(30))
	require.NoError(t, tr.Validate())

	assert.False(t, tr.Contains(30))
	assert.True(t, tr.Contains(40))
	assert.Equal(t, []int{20, 40, 50, 60, 70, 80}, tr.Keys())

	// The node that held 30 now holds 40; the old 40 slot is released.
	key, err := tr.Key(h30)
	require.NoError(t, err)
	assert.Equal(t, 40, key)
	_, err = tr.Key(h40)
	assert.ErrorIs(t, err, rbtree.ErrInvalidHandle)
}

func TestDelete_SingleNodeEmptiesTree(t *testing.T) {
	tr := build(7)
	require.True(t, tr.Delete(7))
	require.NoError(t, tr.Validate())

	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, rbtree.Nil, tr.Root())
	for _, k := range []int{7, 0, -1, 100} {
		h, ok := tr.Search(k)
		assert.False(t, ok)
		assert.Equal(t, rbtree.Nil, h)
	}

	_, err := tr.Min()
	assert.ErrorIs(t, err, rbtree.ErrEmptyTree)
	_, err = tr.Max()
	assert.ErrorIs(t, err, rbtree.ErrEmptyTree)
	_, err = tr.MinHandle()
	assert.ErrorIs(t, err, rbtree.ErrEmptyTree)
	assert.Equal(t, 0, tr.Height())
	assert.Equal(t, 0, tr.BlackHeight())
}

func TestTraversals_Orders(t *testing.T) {
	tr := build(50, 30, 70, 20, 40, 60, 80)

	assert.Equal(t, []int{20, 30, 40, 50, 60, 70, 80}, slices.Collect(tr.InOrder()))
	assert.Equal(t, []int{50, 30, 20, 40, 70, 60, 80}, slices.Collect(tr.PreOrder()))
	assert.Equal(t, []int{20, 40, 30, 60, 80, 70, 50}, slices.Collect(tr.PostOrder()))

	var asc, desc []int
	tr.Ascend(func(k int) bool { asc = append(asc, k); return true })
	tr.Descend(func(k int) bool { desc = append(desc, k); return true })
	assert.Equal(t, []int{20, 30, 40, 50, 60, 70, 80}, asc)
	assert.Equal(t, []int{80, 70, 60, 50, 40, 30, 20}, desc)
}

func TestTraversals_StopEarly(t *testing.T) {
	tr := build(5, 1, 9, 3, 7)

	var got []int
	for k := range tr.InOrder() {
		if k > 5 {
			break
		}
		got = append(got, k)
	}
	assert.Equal(t, []int{1, 3, 5}, got)

	got = got[:0]
	for k := range tr.PostOrder() {
		got = append(got, k)
		if len(got) == 2 {
			break
		}
	}
	assert.Len(t, got, 2)

	got = got[:0]
	tr.Descend(func(k int) bool { got = append(got, k); return k > 7 })
	assert.Equal(t, []int{9, 7}, got)
}

func TestTraversals_EmptyTree(t *testing.T) {
	tr := rbtree.New[int]()
	assert.Empty(t, slices.Collect(tr.InOrder()))
	assert.Empty(t, slices.Collect(tr.PreOrder()))
	assert.Empty(t, slices.Collect(tr.PostOrder()))
	assert.Empty(t, tr.Keys())
	tr.Ascend(func(int) bool { t.Fatal("unexpected key"); return false })
	tr.Descend(func(int) bool { t.Fatal("unexpected key"); return false })
}

// ------------------------------------------------------------------------
// 2. Navigation by handle.
// ------------------------------------------------------------------------

func TestSuccessorPredecessor_Walk(t *testing.T) {
	keys := []int{15, 6, 18, 3, 7, 17, 20, 2, 4, 13, 9}
	tr := build(keys...)
	sorted := slices.Sorted(slices.Values(keys))

	h, err := tr.MinHandle()
	require.NoError(t, err)
	var fwd []int
	for h != rbtree.Nil {
		k, err := tr.Key(h)
		require.NoError(t, err)
		fwd = append(fwd, k)
		h, err = tr.Successor(h)
		require.NoError(t, err)
	}
	assert.Equal(t, sorted, fwd)

	h, err = tr.MaxHandle()
	require.NoError(t, err)
	var back []int
	for h != rbtree.Nil {
		k, _ := tr.Key(h)
		back = append(back, k)
		h, err = tr.Predecessor(h)
		require.NoError(t, err)
	}
	slices.Reverse(back)
	assert.Equal(t, sorted, back)
}

func TestSubtreeMinMax(t *testing.T) {
	tr := build(50, 30, 70, 20, 40, 60, 80)
	h70, ok := tr.Search(70)
	require.True(t, ok)

	lo, err := tr.SubtreeMin(h70)
	require.NoError(t, err)
	hi, err := tr.SubtreeMax(h70)
	require.NoError(t, err)
	lk, _ := tr.Key(lo)
	hk, _ := tr.Key(hi)
	assert.Equal(t, 60, lk)
	assert.Equal(t, 80, hk)

	mn, err := tr.Min()
	require.NoError(t, err)
	mx, err := tr.Max()
	require.NoError(t, err)
	assert.Equal(t, 20, mn)
	assert.Equal(t, 80, mx)
}

func TestHandleErrors(t *testing.T) {
	tr := build(1, 2, 3)

	_, err := tr.Successor(rbtree.Nil)
	assert.ErrorIs(t, err, rbtree.ErrEmptyTree)
	_, err = tr.Predecessor(rbtree.Nil)
	assert.ErrorIs(t, err, rbtree.ErrEmptyTree)
	_, err = tr.SubtreeMin(rbtree.Nil)
	assert.ErrorIs(t, err, rbtree.ErrEmptyTree)
	_, err = tr.SubtreeMax(rbtree.Nil)
	assert.ErrorIs(t, err, rbtree.ErrEmptyTree)
	_, err = tr.Key(rbtree.Nil)
	assert.ErrorIs(t, err, rbtree.ErrEmptyTree)
	assert.ErrorIs(t, tr.DeleteHandle(rbtree.Nil), rbtree.ErrEmptyTree)

	bogus := rbtree.Handle(1000)
	_, err = tr.Successor(bogus)
	assert.ErrorIs(t, err, rbtree.ErrInvalidHandle)
	assert.ErrorIs(t, tr.DeleteHandle(bogus), rbtree.ErrInvalidHandle)
	assert.Equal(t, rbtree.Black, tr.ColorOf(bogus))
	assert.Equal(t, rbtree.Nil, tr.Left(bogus))
	assert.Equal(t, rbtree.Nil, tr.Right(bogus))
	assert.Equal(t, rbtree.Nil, tr.Parent(bogus))

	h3, _ := tr.Search(3)
	require.NoError(t, tr.DeleteHandle(h3))
	assert.ErrorIs(t, tr.DeleteHandle(h3), rbtree.ErrInvalidHandle)
	assert.Equal(t, 2, tr.Len())
}

func TestDeleteHandle_ReleasedSlotIsReused(t *testing.T) {
	tr := build(1, 2, 3)
	h1, _ := tr.Search(1)
	require.NoError(t, tr.DeleteHandle(h1))

	h := tr.Insert(4)
	assert.Equal(t, h1, h)
	k, err := tr.Key(h)
	require.NoError(t, err)
	assert.Equal(t, 4, k)
	require.NoError(t, tr.Validate())
}

// ------------------------------------------------------------------------
// 3. Duplicates, set-style inserts, custom orders.
// ------------------------------------------------------------------------

func TestInsert_DuplicatesAccumulate(t *testing.T) {
	tr := build(5, 5, 5, 3, 5, 8, 3)
	require.NoError(t, tr.Validate())
	assert.Equal(t, 7, tr.Len())
	assert.Equal(t, []int{3, 3, 5, 5, 5, 5, 8}, tr.Keys())

	require.True(t, tr.Delete(5))
	assert.Equal(t, []int{3, 3, 5, 5, 5, 8}, tr.Keys())
	require.NoError(t, tr.Validate())

	for tr.Delete(5) {
	}
	assert.Equal(t, []int{3, 3, 8}, tr.Keys())
	require.NoError(t, tr.Validate())
}

func TestInsertUnique(t *testing.T) {
	tr := rbtree.New[string]()
	h1, created := tr.InsertUnique("b")
	require.True(t, created)
	h2, created := tr.InsertUnique("b")
	require.False(t, created)
	assert.Equal(t, h1, h2)

	for _, s := range []string{"a", "c", "a", "d", "c"} {
		tr.InsertUnique(s)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, tr.Keys())
	require.NoError(t, tr.Validate())
}

func TestNewFunc_CustomOrder(t *testing.T) {
	type span struct {
		start, end int
	}
	byLength := func(a, b span) int {
		if d := (a.end - a.start) - (b.end - b.start); d != 0 {
			return d
		}
		return a.start - b.start
	}

	tr := rbtree.NewFunc(byLength)
	for _, s := range []span{{0, 10}, {5, 6}, {2, 5}, {1, 2}, {3, 13}} {
		tr.Insert(s)
	}
	require.NoError(t, tr.Validate())
	assert.Equal(t, []span{{1, 2}, {5, 6}, {2, 5}, {0, 10}, {3, 13}}, tr.Keys())

	desc := rbtree.NewFunc(func(a, b int) int { return b - a })
	for _, k := range []int{1, 4, 2, 3} {
		desc.Insert(k)
	}
	assert.Equal(t, []int{4, 3, 2, 1}, desc.Keys())
}

func TestConstructorPanics(t *testing.T) {
	assert.PanicsWithValue(t, rbtree.ErrNilComparator.Error(), func() {
		rbtree.NewFunc[int](nil)
	})
	assert.PanicsWithValue(t, rbtree.ErrBadCapacity.Error(), func() {
		rbtree.New[int](rbtree.WithCapacity(-1))
	})
	assert.NotPanics(t, func() {
		rbtree.New[int](rbtree.WithCapacity(128), rbtree.WithInvariantChecks())
	})
}

func TestClear(t *testing.T) {
	tr := build(3, 1, 2)
	tr.Clear()
	assert.Equal(t, 0, tr.Len())
	assert.False(t, tr.Contains(1))
	require.NoError(t, tr.Validate())

	tr.Insert(9)
	assert.Equal(t, []int{9}, tr.Keys())
	require.NoError(t, tr.Validate())
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "Red", rbtree.Red.String())
	assert.Equal(t, "Black", rbtree.Black.String())
	assert.Equal(t, "Color(?)", rbtree.Color(7).String())
}

// ------------------------------------------------------------------------
// 4. Properties over random operation sequences.
// ------------------------------------------------------------------------

func TestRandomOps_InvariantsAndMembership(t *testing.T) {
	r := rand.New(rand.NewSource(seed))
	tr := rbtree.New[int](rbtree.WithInvariantChecks())
	ref := make(map[int]int)
	size := 0

	for i := 0; i < 3000; i++ {
		k := r.Intn(400)
		if r.Intn(3) == 0 {
			removed := tr.Delete(k)
			require.Equal(t, ref[k] > 0, removed, "delete %d at step %d", k, i)
			if removed {
				ref[k]--
				size--
			}
		} else {
			tr.Insert(k)
			ref[k]++
			size++
		}
		require.Equal(t, size, tr.Len())
	}

	for k := 0; k < 400; k++ {
		assert.Equal(t, ref[k] > 0, tr.Contains(k), "membership of %d", k)
	}

	want := make([]int, 0, size)
	for k, c := range ref {
		for ; c > 0; c-- {
			want = append(want, k)
		}
	}
	slices.Sort(want)
	assert.Equal(t, want, tr.Keys())
}

func TestRandomOps_DeleteEverything(t *testing.T) {
	r := rand.New(rand.NewSource(seed))
	keys := r.Perm(2000)
	tr := rbtree.New[int](rbtree.WithCapacity(len(keys)))
	for _, k := range keys {
		tr.Insert(k)
	}
	require.NoError(t, tr.Validate())

	r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for i, k := range keys {
		require.True(t, tr.Delete(k))
		require.False(t, tr.Contains(k), "key %d still present after delete %d", k, i)
		require.NoError(t, tr.Validate(), "after deleting %d (step %d)", k, i)
	}
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, rbtree.Nil, tr.Root())
}

func TestHeightBound(t *testing.T) {
	r := rand.New(rand.NewSource(seed))
	for _, n := range []int{1, 2, 3, 7, 100, 1023, 5000} {
		asc := rbtree.New[int]()
		rnd := rbtree.New[int]()
		for i := 0; i < n; i++ {
			asc.Insert(i)
			rnd.Insert(r.Intn(n))
		}
		limit := int(2 * math.Log2(float64(n+1)))
		assert.LessOrEqual(t, asc.Height(), limit, "ascending n=%d", n)
		assert.LessOrEqual(t, rnd.Height(), limit, "random n=%d", n)
	}
}

func TestDelete_AbsentIsIdempotent(t *testing.T) {
	tr := build(50, 30, 70, 20, 40, 60, 80)
	pre := slices.Collect(tr.PreOrder())
	colours := func() []rbtree.Color {
		var out []rbtree.Color
		for _, k := range tr.Keys() {
			h, _ := tr.Search(k)
			out = append(out, tr.ColorOf(h))
		}
		return out
	}
	before := colours()

	assert.False(t, tr.Delete(55))
	assert.Equal(t, pre, slices.Collect(tr.PreOrder()))
	assert.Equal(t, before, colours())

	assert.False(t, tr.Delete(55))
	assert.Equal(t, pre, slices.Collect(tr.PreOrder()))
	assert.Equal(t, before, colours())
	assert.Equal(t, 7, tr.Len())
}
