package dynlist

import (
	"slices"
	"testing"

	"github.com/hupe1980/dynlist/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	intType    = value.Type{Kind: value.KindInt}
	stringType = value.Type{Kind: value.KindString}
	floatType  = value.Type{Kind: value.KindFloat}
)

func mustList(t *testing.T, vs ...value.Value) *List {
	t.Helper()
	l, err := From(vs)
	require.NoError(t, err)
	return l
}

func assertSequence(t *testing.T, l *List, want ...value.Value) {
	t.Helper()
	got := l.Slice()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "index %d: want %s, got %s", i, want[i], got[i])
	}
}

func assertSequenceEqual(t *testing.T, want, got []value.Value) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "index %d: want %s, got %s", i, want[i], got[i])
	}
}

func TestList(t *testing.T) {
	t.Run("ConcreteScenario", func(t *testing.T) {
		l := New()

		for _, v := range []value.Value{value.Int(1), value.Int(2), value.String("x"), value.Int(3)} {
			_, err := l.Add(v)
			require.NoError(t, err)
		}
		assert.Equal(t, 4, l.Len())
		assertSequence(t, l, value.Int(1), value.Int(2), value.String("x"), value.Int(3))

		require.NoError(t, l.Insert(1, value.Int(99)))
		assert.Equal(t, 5, l.Len())
		assertSequence(t, l, value.Int(1), value.Int(99), value.Int(2), value.String("x"), value.Int(3))

		require.NoError(t, l.RemoveAt(2))
		assertSequence(t, l, value.Int(1), value.Int(99), value.String("x"), value.Int(3))

		assert.Equal(t, 2, l.IndexOf(value.String("x")))
		assert.True(t, l.Contains(value.Int(3)))
		assert.False(t, l.Contains(value.Int(7)))
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var l List
		assert.Equal(t, 0, l.Len())

		idx, err := l.Add(value.Int(1))
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
		require.NoError(t, l.Insert(0, value.String("a")))
		assertSequence(t, &l, value.String("a"), value.Int(1))
	})

	t.Run("FromRejectsNull", func(t *testing.T) {
		_, err := From([]value.Value{value.Int(1), value.Null()})
		assert.ErrorIs(t, err, ErrNullArgument)
	})
}

func TestListAdd(t *testing.T) {
	t.Run("ReturnsIndex", func(t *testing.T) {
		l := New()
		for i := range 5 {
			idx, err := l.Add(value.Int(int64(i)))
			require.NoError(t, err)
			assert.Equal(t, i, idx)
		}
	})

	t.Run("ExtendsTrailingRun", func(t *testing.T) {
		l := mustList(t, value.Int(1), value.Int(2), value.String("x"), value.Int(3))
		assert.Equal(t, []Run{{intType, 2}, {stringType, 1}, {intType, 1}}, l.Runs())
	})

	t.Run("NeverJoinsNonTrailingRun", func(t *testing.T) {
		l := mustList(t, value.Int(1), value.String("a"), value.Int(2))
		assert.Equal(t, []Run{{intType, 1}, {stringType, 1}, {intType, 1}}, l.Runs())
	})

	t.Run("Null", func(t *testing.T) {
		l := mustList(t, value.Int(1))

		idx, err := l.Add(value.Null())
		assert.ErrorIs(t, err, ErrNullArgument)
		assert.Equal(t, -1, idx)

		_, err = l.Add(value.Value{})
		assert.ErrorIs(t, err, ErrNullArgument)

		_, err = l.Add(value.Of((*tag)(nil)))
		assert.ErrorIs(t, err, ErrNullArgument)

		_, err = l.AddAny((*tag)(nil))
		assert.ErrorIs(t, err, ErrNullArgument)

		assert.Equal(t, 1, l.Len())
	})

	t.Run("AddAny", func(t *testing.T) {
		l := New()

		idx, err := l.AddAny(1)
		require.NoError(t, err)
		assert.Equal(t, 0, idx)

		_, err = l.AddAny("a")
		require.NoError(t, err)

		_, err = l.AddAny(nil)
		assert.ErrorIs(t, err, ErrNullArgument)

		_, err = l.AddAny(struct{}{})
		var ute *value.UnsupportedTypeError
		assert.ErrorAs(t, err, &ute)

		assertSequence(t, l, value.Int(1), value.String("a"))
	})
}

func TestListGet(t *testing.T) {
	l := mustList(t, value.Int(1), value.String("a"), value.String("b"), value.Float(0.5))

	for i, want := range []value.Value{value.Int(1), value.String("a"), value.String("b"), value.Float(0.5)} {
		got, err := l.Get(i)
		require.NoError(t, err)
		assert.True(t, want.Equal(got))
	}

	for _, idx := range []int{-1, 4, 100} {
		_, err := l.Get(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", idx)
	}
}

func TestListSet(t *testing.T) {
	t.Run("Replaces", func(t *testing.T) {
		l := mustList(t, value.Int(1), value.Int(2), value.Int(3))
		require.NoError(t, l.Set(1, value.Int(20)))
		assertSequence(t, l, value.Int(1), value.Int(20), value.Int(3))
		assert.Equal(t, []Run{{intType, 3}}, l.Runs())
	})

	t.Run("SplitsRun", func(t *testing.T) {
		l := mustList(t, value.Int(1), value.Int(2), value.Int(3))
		require.NoError(t, l.Set(1, value.String("x")))
		assert.Equal(t, []Run{{intType, 1}, {stringType, 1}, {intType, 1}}, l.Runs())
	})

	t.Run("JoinsRuns", func(t *testing.T) {
		l := mustList(t, value.Int(1), value.String("a"), value.Int(2))
		require.NoError(t, l.Set(1, value.Int(5)))
		assert.Equal(t, []Run{{intType, 3}}, l.Runs())
	})

	t.Run("SameValueKeepsSequence", func(t *testing.T) {
		l := mustList(t, value.Int(1), value.String("a"), value.Int(2), value.Float(1.5))
		before := l.Slice()
		for i := range l.Len() {
			v, err := l.Get(i)
			require.NoError(t, err)
			require.NoError(t, l.Set(i, v))
		}
		assertSequence(t, l, before...)
	})

	t.Run("Errors", func(t *testing.T) {
		l := mustList(t, value.Int(1))
		assert.ErrorIs(t, l.Set(1, value.Int(2)), ErrIndexOutOfRange)
		assert.ErrorIs(t, l.Set(-1, value.Int(2)), ErrIndexOutOfRange)
		assert.ErrorIs(t, l.Set(0, value.Null()), ErrNullArgument)
		assertSequence(t, l, value.Int(1))
	})
}

func TestListInsert(t *testing.T) {
	t.Run("Front", func(t *testing.T) {
		l := mustList(t, value.Int(1), value.Int(2))
		require.NoError(t, l.Insert(0, value.String("a")))
		assertSequence(t, l, value.String("a"), value.Int(1), value.Int(2))
		assert.Equal(t, []Run{{stringType, 1}, {intType, 2}}, l.Runs())
	})

	t.Run("AtLengthAppends", func(t *testing.T) {
		l := mustList(t, value.Int(1))
		require.NoError(t, l.Insert(1, value.Int(2)))
		assertSequence(t, l, value.Int(1), value.Int(2))
		assert.Equal(t, []Run{{intType, 2}}, l.Runs())
	})

	t.Run("EmptyList", func(t *testing.T) {
		l := New()
		require.NoError(t, l.Insert(0, value.Float(1)))
		assertSequence(t, l, value.Float(1))
		assert.Equal(t, []Run{{floatType, 1}}, l.Runs())
	})

	t.Run("Errors", func(t *testing.T) {
		l := mustList(t, value.Int(1))
		assert.ErrorIs(t, l.Insert(2, value.Int(2)), ErrIndexOutOfRange)
		assert.ErrorIs(t, l.Insert(-1, value.Int(2)), ErrIndexOutOfRange)
		assert.ErrorIs(t, l.Insert(0, value.Null()), ErrNullArgument)
		assertSequence(t, l, value.Int(1))
	})
}

func TestListRemove(t *testing.T) {
	t.Run("RemoveAt", func(t *testing.T) {
		l := mustList(t, value.Int(1), value.String("a"), value.Int(2))
		require.NoError(t, l.RemoveAt(0))
		assertSequence(t, l, value.String("a"), value.Int(2))

		assert.ErrorIs(t, l.RemoveAt(2), ErrIndexOutOfRange)
		assert.ErrorIs(t, l.RemoveAt(-1), ErrIndexOutOfRange)
	})

	t.Run("RemoveAtRebuildsAdjacentRuns", func(t *testing.T) {
		l := mustList(t, value.Int(1), value.String("a"), value.Int(2))
		require.NoError(t, l.RemoveAt(1))
		assert.Equal(t, []Run{{intType, 2}}, l.Runs())
	})

	t.Run("RemoveLastLeavesNoEmptySegment", func(t *testing.T) {
		l := mustList(t, value.Int(1), value.String("a"))
		require.NoError(t, l.RemoveAt(1))
		assert.Equal(t, []Run{{intType, 1}}, l.Runs())

		require.NoError(t, l.RemoveAt(0))
		assert.Empty(t, l.Runs())
		assert.Equal(t, 0, l.Len())
	})

	t.Run("RemoveFirstMatch", func(t *testing.T) {
		l := mustList(t, value.Int(1), value.String("a"), value.Int(1))
		assert.True(t, l.Remove(value.Int(1)))
		assertSequence(t, l, value.String("a"), value.Int(1))
	})

	t.Run("RemoveAbsent", func(t *testing.T) {
		l := mustList(t, value.Int(1), value.String("a"))
		runs := l.Runs()
		assert.False(t, l.Remove(value.Int(2)))
		assert.False(t, l.Remove(value.Null()))
		assertSequence(t, l, value.Int(1), value.String("a"))
		assert.Equal(t, runs, l.Runs())
	})

	t.Run("RemoveAll", func(t *testing.T) {
		l := mustList(t, value.Int(1), value.String("a"), value.Int(1), value.Int(2), value.Int(1))
		assert.Equal(t, 3, l.RemoveAll(value.Int(1)))
		assertSequence(t, l, value.String("a"), value.Int(2))
		assert.Equal(t, 0, l.RemoveAll(value.Int(1)))
		assert.Equal(t, 0, l.RemoveAll(value.Null()))
	})
}

func TestListClear(t *testing.T) {
	l := mustList(t, value.Int(1), value.String("a"))
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Runs())

	_, err := l.Add(value.Bool(true))
	require.NoError(t, err)
	assert.Equal(t, 1, l.Len())
}

func TestListSearch(t *testing.T) {
	l := mustList(t, value.Int(1), value.Float(1), value.String("1"), value.Int(1))

	assert.Equal(t, 0, l.IndexOf(value.Int(1)))
	assert.Equal(t, 1, l.IndexOf(value.Float(1)))
	assert.Equal(t, 2, l.IndexOf(value.String("1")))
	assert.Equal(t, -1, l.IndexOf(value.Bool(true)))
	assert.Equal(t, -1, l.IndexOf(value.Null()))

	assert.True(t, l.Contains(value.Float(1)))
	assert.False(t, l.Contains(value.Null()))
	assert.False(t, l.Contains(value.Value{}))

	hits := l.IndexesOf(value.Int(1))
	assert.Equal(t, []uint64{0, 3}, hits.ToArray())
	assert.True(t, l.IndexesOf(value.Null()).IsEmpty())
}

func TestListIteration(t *testing.T) {
	in := []value.Value{value.Int(1), value.String("a"), value.Int(2)}
	l := mustList(t, in...)

	t.Run("All", func(t *testing.T) {
		var idx []int
		for i, v := range l.All() {
			idx = append(idx, i)
			assert.True(t, in[i].Equal(v))
		}
		assert.Equal(t, []int{0, 1, 2}, idx)
	})

	t.Run("Restartable", func(t *testing.T) {
		seq := l.Values()
		assert.Len(t, slices.Collect(seq), 3)
		assert.Len(t, slices.Collect(seq), 3)
	})

	t.Run("RestartAfterRebuild", func(t *testing.T) {
		m := mustList(t, value.Int(1), value.Int(2), value.Int(3))
		vals := m.Values()
		pairs := m.All()

		require.NoError(t, m.Insert(0, value.String("new")))
		assertSequenceEqual(t, m.Slice(), slices.Collect(vals))

		require.NoError(t, m.RemoveAt(0))
		require.NoError(t, m.RemoveAt(0))
		got := slices.Collect(vals)
		assert.Len(t, got, m.Len())
		assertSequenceEqual(t, m.Slice(), got)

		n := 0
		for i, v := range pairs {
			want, err := m.Get(i)
			require.NoError(t, err)
			assert.True(t, want.Equal(v))
			n++
		}
		assert.Equal(t, m.Len(), n)

		require.NoError(t, m.Set(0, value.Bool(true)))
		assertSequenceEqual(t, m.Slice(), slices.Collect(vals))

		m.Clear()
		assert.Empty(t, slices.Collect(vals))
	})

	t.Run("SnapshotAtStart", func(t *testing.T) {
		m := mustList(t, in...)
		var got []value.Value
		for v := range m.Values() {
			got = append(got, v)
			require.NoError(t, m.Insert(0, value.Bool(true)))
		}
		assert.Len(t, got, 3)
		assert.Equal(t, 6, m.Len())
	})
}

func TestListCapabilities(t *testing.T) {
	l := New()

	assert.False(t, l.IsSynchronized())
	assert.False(t, l.IsFixedSize())
	assert.False(t, l.IsReadOnly())

	a, b := l.SyncRoot(), l.SyncRoot()
	assert.NotNil(t, a)
	assert.NotSame(t, a, b)

	err := l.CopyTo(make([]value.Value, 4), 0)
	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestListCustomValues(t *testing.T) {
	l := mustList(t, value.Of(tag("a")), value.Of(tag("b")), value.Of(otherTag("a")))

	assert.Equal(t, []Run{
		{value.Type{Kind: value.KindCustom, Name: "tag"}, 2},
		{value.Type{Kind: value.KindCustom, Name: "other"}, 1},
	}, l.Runs())

	assert.Equal(t, 2, l.IndexOf(value.Of(otherTag("a"))))
	assert.True(t, l.Remove(value.Of(tag("b"))))
	assert.Equal(t, 2, l.Len())
}

type tag string

func (tag) TypeName() string { return "tag" }

func (t tag) Equal(other value.Custom) bool {
	o, ok := other.(tag)
	return ok && o == t
}

type otherTag string

func (otherTag) TypeName() string { return "other" }

func (t otherTag) Equal(other value.Custom) bool {
	o, ok := other.(otherTag)
	return ok && o == t
}
