package tree

import (
	"errors"
	"maps"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNodes stores int keys with two independent link triples per node.
// Slot 0 is reserved for Nil.
type testNodes struct {
	keys  []int
	links [2][]Links
}

type testView struct {
	s    *testNodes
	role int
}

func (v testView) Links(n Ref) *Links { return &v.s.links[v.role][n] }
func (v testView) Key(n Ref) int      { return v.s.keys[n] }

type negView struct{ testView }

func (v negView) Key(n Ref) int { return -v.s.keys[n] }

func newTestNodes() *testNodes {
	return &testNodes{
		keys:  []int{0},
		links: [2][]Links{{{}}, {{}}},
	}
}

func (s *testNodes) add(key int) Ref {
	s.keys = append(s.keys, key)
	s.links[0] = append(s.links[0], Links{})
	s.links[1] = append(s.links[1], Links{})
	return Ref(len(s.keys) - 1)
}

func makeIntTree(t *testing.T, keys ...int) (*Tree[int], *testNodes) {
	t.Helper()
	s := newTestNodes()
	tree, err := New[int](testView{s: s}, Config[int]{Less: Less[int]()})
	require.NoError(t, err)
	refs := make([]Ref, len(keys))
	for i, k := range keys {
		refs[i] = s.add(k)
	}
	for _, n := range refs {
		tree.Insert(n)
	}
	return tree, s
}

func collectKeys(tree *Tree[int]) []int {
	out := []int{}
	for _, k := range tree.All() {
		out = append(out, k)
	}
	return out
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New[int](testView{s: newTestNodes()}, Config[int]{})
	assert.True(t, errors.Is(err, ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)
	_, err = New[int](nil, Config[int]{Less: Less[int]()})
	assert.True(t, errors.Is(err, ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)
}

func TestEmptyTree(t *testing.T) {
	tree, _ := makeIntTree(t)
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.True(t, tree.Begin().Equal(tree.End()))
	assert.True(t, tree.Last().IsEnd())
	assert.True(t, tree.Find(3).IsEnd())
	assert.True(t, tree.LowerBound(3).IsEnd())
	assert.True(t, tree.UpperBound(3).IsEnd())
	assert.NoError(t, tree.Check())
}

func TestInsertKeepsOrder(t *testing.T) {
	keys := []int{5, 3, 8, 1, 4, 7, 9, 2, 6}
	tree, _ := makeIntTree(t, keys...)
	require.NoError(t, tree.Check())
	assert.Equal(t, len(keys), tree.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, collectKeys(tree))
	for _, k := range keys {
		p := tree.Find(k)
		require.False(t, p.IsEnd(), "key %d not found", k)
		assert.Equal(t, k, p.Key())
	}
	assert.True(t, tree.Find(0).IsEnd())
	assert.True(t, tree.Find(10).IsEnd())
}

func TestInsertShapeFollowsInsertionOrder(t *testing.T) {
	tree, _ := makeIntTree(t, 1, 2, 3, 4, 5, 6)
	assert.Equal(t, 6, tree.Height(), "ascending inserts must degenerate into a list")
	balanced, _ := makeIntTree(t, 4, 2, 6, 1, 3, 5, 7)
	assert.Equal(t, 3, balanced.Height())
}

func TestBounds(t *testing.T) {
	tree, _ := makeIntTree(t, 50, 20, 80, 10, 30, 70, 90)
	cases := []struct {
		key          int
		lower, upper int // -1 denotes End
	}{
		{key: 5, lower: 10, upper: 10},
		{key: 10, lower: 10, upper: 20},
		{key: 25, lower: 30, upper: 30},
		{key: 50, lower: 50, upper: 70},
		{key: 85, lower: 90, upper: 90},
		{key: 90, lower: 90, upper: -1},
		{key: 95, lower: -1, upper: -1},
	}
	keyOf := func(p Position[int]) int {
		if p.IsEnd() {
			return -1
		}
		return p.Key()
	}
	for _, c := range cases {
		assert.Equal(t, c.lower, keyOf(tree.LowerBound(c.key)), "LowerBound(%d)", c.key)
		assert.Equal(t, c.upper, keyOf(tree.UpperBound(c.key)), "UpperBound(%d)", c.key)
	}
}

func TestNavigation(t *testing.T) {
	tree, _ := makeIntTree(t, 2, 1, 3)
	assert.Equal(t, 1, tree.Begin().Key())
	assert.Equal(t, 3, tree.Last().Key())
	assert.True(t, tree.Last().Next().IsEnd())
	assert.Equal(t, 3, tree.End().Prev().Key())
	assert.True(t, tree.Begin().Prev().IsEnd())
	assert.Panics(t, func() { tree.End().Next() })
	var back []int
	for _, k := range tree.Backward() {
		back = append(back, k)
	}
	assert.Equal(t, []int{3, 2, 1}, back)
}

func TestEraseCases(t *testing.T) {
	cases := []struct {
		name  string
		keys  []int
		erase int
	}{
		{name: "leaf", keys: []int{5, 3, 8}, erase: 3},
		{name: "only left child", keys: []int{5, 3, 2}, erase: 3},
		{name: "only right child", keys: []int{5, 3, 4}, erase: 3},
		{name: "successor is right child", keys: []int{5, 3, 8, 9}, erase: 5},
		{name: "successor deep left", keys: []int{5, 3, 10, 8, 12, 6, 7}, erase: 5},
		{name: "single root", keys: []int{5}, erase: 5},
		{name: "inner two children", keys: []int{50, 20, 80, 10, 30, 25, 35, 27}, erase: 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree, s := makeIntTree(t, c.keys...)
			p := tree.Find(c.erase)
			require.False(t, p.IsEnd())
			n := tree.Erase(p)
			assert.Equal(t, c.erase, s.keys[n])
			assert.Equal(t, Links{}, s.links[0][n], "erased node must be detached")
			require.NoError(t, tree.Check())
			want := slices.DeleteFunc(slices.Sorted(slices.Values(c.keys)), func(k int) bool {
				return k == c.erase
			})
			assert.Equal(t, want, collectKeys(tree))
			assert.True(t, tree.Find(c.erase).IsEnd())
		})
	}
}

func TestEraseEndPanics(t *testing.T) {
	tree, _ := makeIntTree(t, 1)
	assert.Panics(t, func() { tree.Erase(tree.End()) })
	other, _ := makeIntTree(t, 1)
	assert.Panics(t, func() { tree.Erase(other.Begin()) })
}

func TestEraseAllInOrder(t *testing.T) {
	tree, _ := makeIntTree(t, 4, 2, 6, 1, 3, 5, 7)
	for p := tree.Begin(); !p.IsEnd(); {
		next := p.Next()
		tree.Erase(p)
		require.NoError(t, tree.Check())
		p = next
	}
	assert.True(t, tree.IsEmpty())
}

func TestRandomInsertErase(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	s := newTestNodes()
	tree, err := New[int](testView{s: s}, Config[int]{Less: Less[int]()})
	require.NoError(t, err)
	model := map[int]Ref{}
	for i := range 2000 {
		k := rnd.IntN(300)
		if n, ok := model[k]; ok {
			p := tree.Find(k)
			require.Equal(t, n, p.Ref(), "step %d", i)
			tree.Erase(p)
			delete(model, k)
		} else {
			n := s.add(k)
			tree.Insert(n)
			model[k] = n
		}
		if i%50 == 0 {
			require.NoError(t, tree.Check(), "step %d", i)
		}
	}
	require.NoError(t, tree.Check())
	assert.ElementsMatch(t, slices.Collect(maps.Keys(model)), collectKeys(tree))
	assert.True(t, slices.IsSorted(collectKeys(tree)))
}

func TestSwap(t *testing.T) {
	a, _ := makeIntTree(t, 1, 2, 3)
	b, _ := makeIntTree(t, 9)
	a.Swap(b)
	assert.Equal(t, []int{9}, collectKeys(a))
	assert.Equal(t, []int{1, 2, 3}, collectKeys(b))
	assert.NoError(t, a.Check())
	assert.NoError(t, b.Check())
}

func TestSwapRefusesPairedTrees(t *testing.T) {
	s := newTestNodes()
	left, err := New[int](testView{s: s, role: 0}, Config[int]{Less: Less[int]()})
	require.NoError(t, err)
	right, err := New[int](testView{s: s, role: 1}, Config[int]{Less: Less[int]()})
	require.NoError(t, err)
	Pair(left, right)
	n := s.add(1)
	left.Insert(n)
	right.Insert(n)
	unpaired, _ := makeIntTree(t, 9)
	assert.Panics(t, func() { left.Swap(unpaired) })
	assert.Panics(t, func() { unpaired.Swap(right) })
	assert.Equal(t, []int{1}, collectKeys(left))
	assert.Equal(t, []int{9}, collectKeys(unpaired))
	assert.True(t, Flip[int, int](left.Begin()).Equal(right.Begin()))
}

func TestAtAndLess(t *testing.T) {
	tree, s := makeIntTree(t, 2, 1, 3)
	for n := Ref(1); int(n) < len(s.keys); n++ {
		p := tree.At(n)
		assert.Equal(t, s.keys[n], p.Key())
		assert.True(t, p.Equal(tree.Find(s.keys[n])))
	}
	assert.True(t, tree.Less(1, 2))
	assert.False(t, tree.Less(2, 2))
	assert.True(t, tree.Equiv(2, 2))

	desc, err := New[int](negView{testView{s: newTestNodes()}}, Config[int]{
		Less: func(a, b int) bool { return a > b },
	})
	require.NoError(t, err)
	assert.True(t, desc.Less(2, 1))
}

func TestFlipBetweenPairedTrees(t *testing.T) {
	s := newTestNodes()
	asc, err := New[int](testView{s: s, role: 0}, Config[int]{Less: Less[int]()})
	require.NoError(t, err)
	desc, err := New[int](negView{testView{s: s, role: 1}}, Config[int]{Less: Less[int]()})
	require.NoError(t, err)
	assert.Panics(t, func() { Flip[int, int](asc.Begin()) })
	Pair(asc, desc)
	for _, k := range []int{3, 1, 2} {
		n := s.add(k)
		asc.Insert(n)
		desc.Insert(n)
	}
	require.NoError(t, asc.Check())
	require.NoError(t, desc.Check())

	p := asc.Find(1)
	q := Flip[int, int](p)
	assert.Equal(t, p.Ref(), q.Ref())
	assert.Equal(t, -1, q.Key())
	assert.True(t, q.Equal(desc.Last()))
	assert.True(t, Flip[int, int](asc.End()).Equal(desc.End()))
	assert.True(t, Flip[int, int](q).Equal(p))
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree, s := makeIntTree(t, 2, 1, 3)
	left := tree.Find(1).Ref()
	s.links[0][left].Parent = tree.Find(3).Ref()
	assert.True(t, errors.Is(tree.Check(), ErrBrokenLinks))

	tree, s = makeIntTree(t, 2, 1, 3)
	s.keys[tree.Find(1).Ref()] = 7
	assert.True(t, errors.Is(tree.Check(), ErrBrokenOrder))
}
