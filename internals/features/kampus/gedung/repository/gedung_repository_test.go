package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/databases/rtdb"
	"kampusku_backend/internals/features/kampus/gedung/dto"
	"kampusku_backend/internals/features/kampus/relation"
	helper "kampusku_backend/internals/helpers"
)

func newTestRepo(t *testing.T) (*Repository, rtdb.Store) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := rtdb.NewWithClient(client)
	return New(store, helper.NewValidator(), relation.NewManager(store)), store
}

func TestGedungCreate(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	t.Run("record tersimpan lengkap", func(t *testing.T) {
		key, err := repo.Create(ctx, dto.GedungRequest{
			Name:       "Gedung Rektorat",
			KodeGedung: "GR",
		})
		require.NoError(t, err)
		require.NotEmpty(t, key)

		g, err := repo.GetByID(ctx, key)
		require.NoError(t, err)
		require.NotNil(t, g)
		assert.Equal(t, 1, g.ID)
		assert.Equal(t, "Gedung Rektorat", g.Name)
		assert.Equal(t, "gedung-rektorat", g.Slug)
		assert.Nil(t, g.Image)
		assert.NotNil(t, g.Kelas)
		assert.Empty(t, g.Kelas)
		assert.Equal(t, g.CreatedAt, g.UpdatedAt)
	})

	t.Run("nomor urut bertambah", func(t *testing.T) {
		key, err := repo.Create(ctx, dto.GedungRequest{Name: "Gedung Baru", KodeGedung: "GB"})
		require.NoError(t, err)

		g, err := repo.GetByID(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, 2, g.ID)
	})
}

func TestGedungCreateValidation(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepo(t)

	_, err := repo.Create(ctx, dto.GedungRequest{Name: "AB", KodeGedung: "G"})
	require.Error(t, err)

	ve, ok := helper.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.FieldErrors["name"], "Name must be at least 3 characters")
	assert.Contains(t, ve.FieldErrors["kode_gedung"], "Kode gedung minimal 2 karakter")

	// validasi gagal → tidak ada record yang tertulis
	snap, err := store.Get(ctx, relation.GedungCollection)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestGedungGetBySlug(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	key, err := repo.Create(ctx, dto.GedungRequest{Name: "Aula Utama", KodeGedung: "AU"})
	require.NoError(t, err)

	g, err := repo.GetBySlug(ctx, "aula-utama")
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, key, g.FirebaseID)

	missing, err := repo.GetBySlug(ctx, "tidak-ada")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGedungUpdate(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	key, err := repo.Create(ctx, dto.GedungRequest{Name: "Gedung Lama", KodeGedung: "GL"})
	require.NoError(t, err)

	t.Run("nama baru menurunkan slug baru", func(t *testing.T) {
		err := repo.Update(ctx, key, dto.GedungRequest{Name: "Gedung Baru", KodeGedung: "GB"})
		require.NoError(t, err)

		g, err := repo.GetByID(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "Gedung Baru", g.Name)
		assert.Equal(t, "gedung-baru", g.Slug)
		assert.Equal(t, 1, g.ID, "nomor urut tidak berubah saat update")
	})

	t.Run("gedung tidak ada", func(t *testing.T) {
		err := repo.Update(ctx, "missing", dto.GedungRequest{Name: "Apa Saja", KodeGedung: "AS"})
		require.Error(t, err)
		assert.True(t, helper.IsNotFound(err))
	})
}

func TestGedungListPaginated(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	for _, name := range []string{"Gedung Satu", "Gedung Dua", "Gedung Tiga"} {
		_, err := repo.Create(ctx, dto.GedungRequest{Name: name, KodeGedung: "GX"})
		require.NoError(t, err)
	}

	t.Run("halaman pertama", func(t *testing.T) {
		page, err := repo.ListPaginated(ctx, 1, 2)
		require.NoError(t, err)
		assert.Len(t, page.Data, 2)
		assert.Equal(t, 3, page.Total)
		assert.Equal(t, 2, page.TotalPages)
		assert.True(t, page.HasNextPage)
		assert.False(t, page.HasPrevPage)
	})

	t.Run("halaman terakhir", func(t *testing.T) {
		page, err := repo.ListPaginated(ctx, 2, 2)
		require.NoError(t, err)
		assert.Len(t, page.Data, 1)
		assert.False(t, page.HasNextPage)
		assert.True(t, page.HasPrevPage)
	})

	t.Run("halaman di luar jangkauan", func(t *testing.T) {
		page, err := repo.ListPaginated(ctx, 9, 2)
		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.False(t, page.HasNextPage)
	})
}

// Dua sesi yang membaca snapshot koleksi yang sama sebelum menulis
// mendapat nomor urut identik. Interleaving itu direka ulang di sini
// secara deterministik: count dibaca sekali, dua record ditulis dengan
// nomor turunan yang sama. Push key tetap membedakan keduanya.
func TestGedungSequentialIDCollision(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepo(t)

	snap, err := store.Get(ctx, relation.GedungCollection)
	require.NoError(t, err)
	staleCount := len(rtdb.AsMap(snap))

	keys := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		key, err := store.Push(ctx, relation.GedungCollection)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, relation.GedungPath(key), map[string]any{
			"id":   helper.NextSequentialID(staleCount),
			"name": "Gedung Kembar",
			"slug": "gedung-kembar",
		}))
		keys = append(keys, key)
	}

	assert.NotEqual(t, keys[0], keys[1], "push key harus tetap unik")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, list[0].ID, list[1].ID, "nomor urut dobel adalah konsekuensi count-then-write")
}
