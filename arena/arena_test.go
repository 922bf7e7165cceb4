package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/bimap/tree"
)

func TestAllocFree(t *testing.T) {
	a := New[int, string]()
	assert.Equal(t, 0, a.Size())
	assert.Equal(t, 0, a.Used())

	r1 := a.Alloc(1, "a")
	r2 := a.Alloc(2, "b")
	assert.NotEqual(t, tree.Nil, r1)
	assert.NotEqual(t, r1, r2)
	assert.Equal(t, 2, a.Used())
	assert.Equal(t, 1, a.Left(r1))
	assert.Equal(t, "b", a.Right(r2))

	a.Free(r1)
	assert.False(t, a.Live(r1))
	assert.Equal(t, 1, a.Used())
	assert.Equal(t, 2, a.Size())

	r3 := a.Alloc(3, "c")
	assert.Equal(t, r1, r3, "freed slot must be reused")
	assert.Equal(t, 3, a.Left(r3))
	assert.Equal(t, 2, a.Used())
}

func TestFreePanics(t *testing.T) {
	a := New[int, string]()
	r := a.Alloc(1, "a")
	assert.Panics(t, func() { a.Free(tree.Nil) })
	a.Free(r)
	assert.Panics(t, func() { a.Free(r) })
}

func TestRolesAreIndependent(t *testing.T) {
	a := New[int, string]()
	r := a.Alloc(1, "a")
	a.Links(r, LeftRole).Parent = 7
	assert.Equal(t, tree.Ref(7), a.LeftView().Links(r).Parent)
	assert.Equal(t, tree.Nil, a.RightView().Links(r).Parent)
	assert.Equal(t, 1, a.LeftView().Key(r))
	assert.Equal(t, "a", a.RightView().Key(r))
	assert.Equal(t, "left", LeftRole.String())
	assert.Equal(t, "right", RightRole.String())
}

func TestViewsThreadTwoTrees(t *testing.T) {
	a := New[int, string]()
	lt, err := tree.New[int](a.LeftView(), tree.Config[int]{Less: tree.Less[int]()})
	require.NoError(t, err)
	rt, err := tree.New[string](a.RightView(), tree.Config[string]{Less: tree.Less[string]()})
	require.NoError(t, err)
	tree.Pair(lt, rt)
	for i, s := range []string{"c", "a", "b"} {
		r := a.Alloc(i, s)
		lt.Insert(r)
		rt.Insert(r)
	}
	require.NoError(t, lt.Check())
	require.NoError(t, rt.Check())
	p := lt.Find(1)
	q := tree.Flip[int, string](p)
	assert.Equal(t, "a", q.Key())
	assert.True(t, q.Equal(rt.Begin()))
}
