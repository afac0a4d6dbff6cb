package vector

import (
	"testing"

	"github.com/amp-labs/amp-vector/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strs(values ...string) []sortable.String {
	out := make([]sortable.String, len(values))
	for i, s := range values {
		out[i] = sortable.String(s)
	}

	return out
}

func filled(t *testing.T, values ...string) *Vector[sortable.String] {
	t.Helper()

	v := New[sortable.String]()
	for _, s := range values {
		v.Add(sortable.String(s))
	}

	require.Equal(t, len(values), v.Size())

	return v
}

func requireShape[T sortable.Sortable[T]](t *testing.T, v *Vector[T], size, capacity int) {
	t.Helper()

	require.Equal(t, size, v.Size(), "size")
	require.Equal(t, capacity, v.Capacity(), "capacity")
	require.LessOrEqual(t, v.Size(), v.Capacity())
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("uses default capacity", func(t *testing.T) {
		t.Parallel()

		v := New[sortable.Int]()
		requireShape(t, v, 0, DefaultInitialCapacity)
		assert.True(t, v.IsEmpty())
		assert.Empty(t, v.String())
	})

	t.Run("honors initial capacity", func(t *testing.T) {
		t.Parallel()

		requireShape(t, New[sortable.Int](WithInitialCapacity(3)), 0, 3)
	})

	t.Run("allows zero capacity", func(t *testing.T) {
		t.Parallel()

		v := New[sortable.Int](WithInitialCapacity(0))
		requireShape(t, v, 0, 0)

		v.Add(1)
		requireShape(t, v, 1, DefaultGrowthBoost)
	})

	t.Run("clamps negative capacity to zero", func(t *testing.T) {
		t.Parallel()

		requireShape(t, New[sortable.Int](WithInitialCapacity(-5)), 0, 0)
	})

	t.Run("ignores non-positive growth boost", func(t *testing.T) {
		t.Parallel()

		v := New[sortable.Int](WithInitialCapacity(0), WithGrowthBoost(0), WithGrowthBoost(-1))
		v.Add(1)
		requireShape(t, v, 1, DefaultGrowthBoost)
	})
}

func TestVector_Get(t *testing.T) {
	t.Parallel()

	v := filled(t, "a", "b", "c")

	for i, want := range strs("a", "b", "c") {
		got, err := v.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, index := range []int{-1, 3, 100} {
		_, err := v.Get(index)
		require.ErrorIs(t, err, ErrOutOfBounds)
		assert.NotErrorIs(t, err, ErrInvalidInsertIndex)
	}

	_, err := New[sortable.String]().Get(0)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestVector_Set(t *testing.T) {
	t.Parallel()

	t.Run("overwrites in place", func(t *testing.T) {
		t.Parallel()

		v := filled(t, "a", "b", "c")
		require.NoError(t, v.Set(1, "z"))

		assert.Equal(t, strs("a", "z", "c"), v.Entries())
		requireShape(t, v, 3, DefaultInitialCapacity)
	})

	t.Run("rejects bad index without mutating", func(t *testing.T) {
		t.Parallel()

		v := filled(t, "a", "b")

		for _, index := range []int{-1, 2, 3} {
			err := v.Set(index, "z")
			require.ErrorIs(t, err, ErrOutOfBounds)
		}

		assert.Equal(t, strs("a", "b"), v.Entries())
		requireShape(t, v, 2, DefaultInitialCapacity)
	})
}

func TestVector_Add(t *testing.T) {
	t.Parallel()

	t.Run("appends in order", func(t *testing.T) {
		t.Parallel()

		v := filled(t, "c", "a", "b")
		assert.Equal(t, strs("c", "a", "b"), v.Entries())
		assert.Equal(t, "c a b", v.String())
	})

	t.Run("grows by exactly one boost when full", func(t *testing.T) {
		t.Parallel()

		v := New[sortable.Int](WithInitialCapacity(4))
		for i := range 4 {
			v.Add(sortable.Int(i))
		}

		requireShape(t, v, 4, 4)

		v.Add(99)
		requireShape(t, v, 5, 4+DefaultGrowthBoost)
		assert.Equal(t, []sortable.Int{0, 1, 2, 3, 99}, v.Entries())

		last, err := v.Get(4)
		require.NoError(t, err)
		assert.Equal(t, sortable.Int(99), last)
	})

	t.Run("growth is additive across many boosts", func(t *testing.T) {
		t.Parallel()

		const n = 95

		v := New[sortable.Int](WithInitialCapacity(5), WithGrowthBoost(7))
		for i := range n {
			v.Add(sortable.Int(i))
			require.LessOrEqual(t, v.Size(), v.Capacity())
			require.Equal(t, 0, (v.Capacity()-5)%7, "capacity must stay on the 5+7k grid")
		}

		requireShape(t, v, n, 96)

		for i := range n {
			got, err := v.Get(i)
			require.NoError(t, err)
			require.Equal(t, sortable.Int(i), got)
		}
	})
}

func TestVector_Insert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		start  []string
		value  string
		index  int
		expect []string
	}{
		{name: "into empty", start: nil, value: "a", index: 0, expect: []string{"a"}},
		{name: "at front", start: []string{"b", "c"}, value: "a", index: 0, expect: []string{"a", "b", "c"}},
		{name: "in middle", start: []string{"a", "c"}, value: "b", index: 1, expect: []string{"a", "b", "c"}},
		{name: "at size appends", start: []string{"a", "b"}, value: "c", index: 2, expect: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := filled(t, tt.start...)
			require.NoError(t, v.Insert(sortable.String(tt.value), tt.index))
			assert.Equal(t, strs(tt.expect...), v.Entries())
		})
	}

	t.Run("shifts correctly across growth", func(t *testing.T) {
		t.Parallel()

		v := New[sortable.Int](WithInitialCapacity(3), WithGrowthBoost(2))
		v.Add(1)
		v.Add(2)
		v.Add(3)

		require.NoError(t, v.Insert(0, 0))
		requireShape(t, v, 4, 5)
		assert.Equal(t, []sortable.Int{0, 1, 2, 3}, v.Entries())

		require.NoError(t, v.Insert(9, 2))
		requireShape(t, v, 5, 5)
		assert.Equal(t, []sortable.Int{0, 1, 9, 2, 3}, v.Entries())
	})

	t.Run("rejects index past size without mutating", func(t *testing.T) {
		t.Parallel()

		v := filled(t, "a", "b", "c")

		err := v.Insert("x", 4)
		require.ErrorIs(t, err, ErrInvalidInsertIndex)
		assert.NotErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, strs("a", "b", "c"), v.Entries())
		requireShape(t, v, 3, DefaultInitialCapacity)
	})

	t.Run("rejects negative index without mutating", func(t *testing.T) {
		t.Parallel()

		v := filled(t, "a")

		require.ErrorIs(t, v.Insert("x", -1), ErrInvalidInsertIndex)
		assert.Equal(t, strs("a"), v.Entries())
	})

	t.Run("rejected insert on a full vector does not grow it", func(t *testing.T) {
		t.Parallel()

		v := New[sortable.Int](WithInitialCapacity(1))
		v.Add(1)

		require.ErrorIs(t, v.Insert(2, 5), ErrInvalidInsertIndex)
		requireShape(t, v, 1, 1)
	})
}

func TestVector_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes first element", func(t *testing.T) {
		t.Parallel()

		v := filled(t, "a", "b", "c")
		require.NoError(t, v.Remove(0))

		assert.Equal(t, strs("b", "c"), v.Entries())
		requireShape(t, v, 2, DefaultInitialCapacity)
	})

	t.Run("removes middle and last", func(t *testing.T) {
		t.Parallel()

		v := filled(t, "a", "b", "c", "d")
		require.NoError(t, v.Remove(1))
		assert.Equal(t, strs("a", "c", "d"), v.Entries())

		require.NoError(t, v.Remove(2))
		assert.Equal(t, strs("a", "c"), v.Entries())
	})

	t.Run("clears the vacated slot", func(t *testing.T) {
		t.Parallel()

		v := filled(t, "a", "b")
		require.NoError(t, v.Remove(0))

		assert.Equal(t, sortable.String(""), v.elements[1])
	})

	t.Run("never shrinks capacity", func(t *testing.T) {
		t.Parallel()

		v := New[sortable.Int](WithInitialCapacity(1))
		for i := range 12 {
			v.Add(sortable.Int(i))
		}

		capacity := v.Capacity()
		for !v.IsEmpty() {
			require.NoError(t, v.Remove(v.Size()-1))
			require.Equal(t, capacity, v.Capacity())
		}
	})

	t.Run("rejects bad index without mutating", func(t *testing.T) {
		t.Parallel()

		v := filled(t, "a", "b", "c")

		for _, index := range []int{-1, 3, 7} {
			err := v.Remove(index)
			require.ErrorIs(t, err, ErrOutOfBounds)
		}

		assert.Equal(t, strs("a", "b", "c"), v.Entries())

		require.ErrorIs(t, New[sortable.String]().Remove(0), ErrOutOfBounds)
	})
}

func TestVector_Clear(t *testing.T) {
	t.Parallel()

	v := New[sortable.Int](WithInitialCapacity(2))
	for i := range 5 {
		v.Add(sortable.Int(i))
	}

	v.Clear()

	requireShape(t, v, 0, 12)
	assert.Empty(t, v.Entries())

	v.Add(7)
	assert.Equal(t, []sortable.Int{7}, v.Entries())
}

func TestVector_Clone(t *testing.T) {
	t.Parallel()

	t.Run("copies elements and capacity", func(t *testing.T) {
		t.Parallel()

		a := filled(t, "a", "b", "c")
		b := a.Clone()

		requireShape(t, b, 3, a.Capacity())
		assert.True(t, a.Equal(b))
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("clone of empty vector", func(t *testing.T) {
		t.Parallel()

		a := New[sortable.String](WithInitialCapacity(0))
		b := a.Clone()

		requireShape(t, b, 0, 0)
		b.Add("x")
		assert.True(t, a.IsEmpty())
	})

	t.Run("mutating the clone leaves the source alone", func(t *testing.T) {
		t.Parallel()

		a := filled(t, "a", "b", "c")
		b := a.Clone()

		b.Add("d")
		require.NoError(t, b.Set(0, "z"))
		require.NoError(t, b.Remove(1))

		assert.Equal(t, strs("a", "b", "c"), a.Entries())
		assert.Equal(t, strs("z", "c", "d"), b.Entries())
	})

	t.Run("mutating the source leaves the clone alone", func(t *testing.T) {
		t.Parallel()

		a := filled(t, "a", "b", "c")
		b := a.Clone()

		require.NoError(t, a.Set(2, "q"))
		a.BinaryInsert("0")
		a.Clear()

		assert.Equal(t, strs("a", "b", "c"), b.Entries())
	})

	t.Run("clone grows at the same point as the source", func(t *testing.T) {
		t.Parallel()

		a := New[sortable.Int](WithInitialCapacity(4), WithGrowthBoost(3))
		a.Add(1)

		b := a.Clone()
		for i := range 3 {
			a.Add(sortable.Int(i))
			b.Add(sortable.Int(i))
		}

		requireShape(t, a, 4, 4)
		requireShape(t, b, 4, 4)

		a.Add(0)
		b.Add(0)
		requireShape(t, a, 5, 7)
		requireShape(t, b, 5, 7)
	})
}

func TestVector_Entries(t *testing.T) {
	t.Parallel()

	v := filled(t, "a", "b")
	entries := v.Entries()
	entries[0] = "changed"

	got, err := v.Get(0)
	require.NoError(t, err)
	assert.Equal(t, sortable.String("a"), got)
}

func TestVector_Equal(t *testing.T) {
	t.Parallel()

	a := filled(t, "a", "b")
	b := New[sortable.String](WithInitialCapacity(2))
	b.Add("a")
	b.Add("b")

	assert.True(t, a.Equal(b), "capacity does not matter")
	assert.False(t, a.Equal(nil))

	b.Add("c")
	assert.False(t, a.Equal(b))
}

func TestVector_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", New[sortable.Int]().String())
	assert.Equal(t, "a", filled(t, "a").String())
	assert.Equal(t, "a b c", filled(t, "a", "b", "c").String())

	bytes := New[sortable.Byte]()
	bytes.Add('x')
	bytes.Add('y')
	assert.Equal(t, "x y", bytes.String())
}
