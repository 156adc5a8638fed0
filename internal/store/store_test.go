package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutStore_Persists(t *testing.T) {
	dir := t.TempDir()

	s, err := NewLayoutStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save(Layout{Name: "work", Direction: "vertical", Sizes: []float64{30, 70}}))
	require.NoError(t, s.Close())

	s, err = NewLayoutStore(dir)
	require.NoError(t, err)
	defer s.Close()

	l, err := s.Get("work")
	require.NoError(t, err)
	assert.Equal(t, "vertical", l.Direction)
	assert.Equal(t, []float64{30, 70}, l.Sizes)
	assert.False(t, l.SavedAt.IsZero())

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"work"}, names)
}

func TestLayoutStore_MemoryOnly(t *testing.T) {
	s, err := NewLayoutStore("")
	require.NoError(t, err)

	require.NoError(t, s.Save(Layout{Name: "b", Sizes: []float64{50, 50}}))
	require.NoError(t, s.Save(Layout{Name: "a", Sizes: []float64{10, 90}}))

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	require.NoError(t, s.Delete("a"))
	_, err = s.Get("a")
	assert.True(t, errors.Is(err, ErrLayoutNotFound))
	assert.NoError(t, s.Close())
}

func TestLayoutStore_Delete(t *testing.T) {
	s, err := NewLayoutStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(Layout{Name: "x", Sizes: []float64{100}}))
	_, err = s.Get("x")
	require.NoError(t, err)

	require.NoError(t, s.Delete("x"))
	_, err = s.Get("x")
	assert.ErrorIs(t, err, ErrLayoutNotFound)
}

func TestLayoutStore_RejectsEmptyName(t *testing.T) {
	s, err := NewLayoutStore("")
	require.NoError(t, err)
	assert.Error(t, s.Save(Layout{Sizes: []float64{100}}))
}
