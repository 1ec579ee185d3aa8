package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPageMeta(t *testing.T) {
	t.Run("pembagian pas", func(t *testing.T) {
		meta := BuildPageMeta(10, 1, 5)
		assert.Equal(t, 10, meta.Total)
		assert.Equal(t, 2, meta.TotalPages)
		assert.True(t, meta.HasNextPage)
		assert.False(t, meta.HasPrevPage)
	})

	t.Run("sisa dibulatkan ke atas", func(t *testing.T) {
		meta := BuildPageMeta(11, 3, 5)
		assert.Equal(t, 3, meta.TotalPages)
		assert.False(t, meta.HasNextPage)
		assert.True(t, meta.HasPrevPage)
	})

	t.Run("koleksi kosong", func(t *testing.T) {
		meta := BuildPageMeta(0, 1, 5)
		assert.Equal(t, 0, meta.TotalPages)
		assert.False(t, meta.HasNextPage)
		assert.False(t, meta.HasPrevPage)
	})

	t.Run("page melebihi total", func(t *testing.T) {
		meta := BuildPageMeta(10, 99, 5)
		assert.Equal(t, 99, meta.CurrentPage)
		assert.False(t, meta.HasNextPage)
		assert.True(t, meta.HasPrevPage)
	})
}

func TestSliceBounds(t *testing.T) {
	t.Run("halaman pertama", func(t *testing.T) {
		start, end := SliceBounds(12, 1, 5)
		assert.Equal(t, 0, start)
		assert.Equal(t, 5, end)
	})

	t.Run("halaman terakhir parsial", func(t *testing.T) {
		start, end := SliceBounds(12, 3, 5)
		assert.Equal(t, 10, start)
		assert.Equal(t, 12, end)
	})

	t.Run("di luar jangkauan menghasilkan slice kosong", func(t *testing.T) {
		start, end := SliceBounds(12, 50, 5)
		assert.Equal(t, start, end)
	})
}
