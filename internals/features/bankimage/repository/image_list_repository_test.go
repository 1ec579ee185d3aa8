package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/databases/rtdb"
	"kampusku_backend/internals/features/bankimage/dto"
	helper "kampusku_backend/internals/helpers"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return New(rtdb.NewWithClient(client), helper.NewValidator())
}

func TestImageListCreate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	t.Run("record tersimpan", func(t *testing.T) {
		key, err := repo.Create(ctx, dto.ImageListRequest{
			Name: "Denah Kampus",
			URL:  "https://cdn.example.com/denah.webp",
			Tags: []string{"denah", "kampus"},
		})
		require.NoError(t, err)
		require.NotEmpty(t, key)

		m, err := repo.GetByID(ctx, key)
		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, "Denah Kampus", m.Name)
		assert.Equal(t, []string{"denah", "kampus"}, m.Tags)
	})

	t.Run("url wajib valid", func(t *testing.T) {
		_, err := repo.Create(ctx, dto.ImageListRequest{Name: "X", URL: "bukan-url"})
		require.Error(t, err)
		ve, ok := helper.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.FieldErrors["url"], "URL gambar tidak valid")
	})

	t.Run("nama wajib diisi", func(t *testing.T) {
		_, err := repo.Create(ctx, dto.ImageListRequest{URL: "https://example.com/a.png"})
		require.Error(t, err)
		ve, ok := helper.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.FieldErrors["name"], "Nama gambar wajib diisi")
	})
}

func TestImageListUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	key, err := repo.Create(ctx, dto.ImageListRequest{
		Name: "Logo",
		URL:  "https://cdn.example.com/logo.png",
	})
	require.NoError(t, err)

	t.Run("update menimpa field", func(t *testing.T) {
		err := repo.Update(ctx, key, dto.ImageListRequest{
			Name:        "Logo Baru",
			URL:         "https://cdn.example.com/logo-v2.png",
			Description: "versi revisi",
		})
		require.NoError(t, err)

		m, err := repo.GetByID(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "Logo Baru", m.Name)
		assert.Equal(t, "versi revisi", m.Description)
	})

	t.Run("update record hilang", func(t *testing.T) {
		err := repo.Update(ctx, "missing", dto.ImageListRequest{
			Name: "X", URL: "https://example.com/x.png",
		})
		require.Error(t, err)
		assert.True(t, helper.IsNotFound(err))
	})

	t.Run("delete lalu get nil", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, key))

		m, err := repo.GetByID(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, m)

		assert.True(t, helper.IsNotFound(repo.Delete(ctx, key)))
	})
}

func TestImageListPagination(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for i := 0; i < 7; i++ {
		_, err := repo.Create(ctx, dto.ImageListRequest{
			Name: "Gambar",
			URL:  "https://cdn.example.com/a.png",
		})
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, 1, 5)
	require.NoError(t, err)
	assert.Len(t, page.Data, 5)
	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasNextPage)

	page, err = repo.List(ctx, 2, 5)
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.False(t, page.HasNextPage)
	assert.True(t, page.HasPrevPage)
}
