package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/databases/rtdb"
	gedungDTO "kampusku_backend/internals/features/kampus/gedung/dto"
	gedungRepo "kampusku_backend/internals/features/kampus/gedung/repository"
	"kampusku_backend/internals/features/kampus/kelas/dto"
	"kampusku_backend/internals/features/kampus/relation"
	helper "kampusku_backend/internals/helpers"
)

type fixture struct {
	kelas  *Repository
	gedung *gedungRepo.Repository
	rel    *relation.Manager
	store  rtdb.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := rtdb.NewWithClient(client)
	v := helper.NewValidator()
	rel := relation.NewManager(store)
	return &fixture{
		kelas:  New(store, v, rel),
		gedung: gedungRepo.New(store, v, rel),
		rel:    rel,
		store:  store,
	}
}

func (f *fixture) mustGedung(t *testing.T, ctx context.Context, name string) string {
	t.Helper()
	key, err := f.gedung.Create(ctx, gedungDTO.GedungRequest{Name: name, KodeGedung: "GX"})
	require.NoError(t, err)
	return key
}

func kelasReq(gedungID, lantai, code string) dto.KelasRequest {
	return dto.KelasRequest{
		CodeKelas:      code,
		KapasitasOrang: 30,
		Lantai:         lantai,
		GedungID:       gedungID,
	}
}

func TestKelasCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	gid := f.mustGedung(t, ctx, "Gedung A")

	t.Run("record flat + referensi gedung", func(t *testing.T) {
		key, err := f.kelas.Create(ctx, kelasReq(gid, constants.Lantai2, "TI-2A"))
		require.NoError(t, err)

		k, err := f.kelas.GetByID(ctx, key, gid, constants.Lantai2)
		require.NoError(t, err)
		require.NotNil(t, k)
		assert.Equal(t, "lantai_2-1", k.ID)
		assert.Equal(t, "ti-2a-lantai-2", k.Slug)

		g, err := f.gedung.GetByID(ctx, gid)
		require.NoError(t, err)
		ref, ok := g.Kelas[key]
		require.True(t, ok, "referensi harus tertanam di gedung")
		assert.Equal(t, "lantai_2-1", ref.ID)
		assert.Equal(t, constants.Lantai2, ref.Lantai)
	})

	t.Run("nomor lokal per lantai", func(t *testing.T) {
		key, err := f.kelas.Create(ctx, kelasReq(gid, constants.Lantai2, "TI-2B"))
		require.NoError(t, err)
		k, err := f.kelas.GetByID(ctx, key, gid, constants.Lantai2)
		require.NoError(t, err)
		assert.Equal(t, "lantai_2-2", k.ID)

		// lantai lain mulai lagi dari 1
		key3, err := f.kelas.Create(ctx, kelasReq(gid, constants.Lantai3, "TI-3A"))
		require.NoError(t, err)
		k3, err := f.kelas.GetByID(ctx, key3, gid, constants.Lantai3)
		require.NoError(t, err)
		assert.Equal(t, "lantai_3-1", k3.ID)
	})

	t.Run("gedung tidak ada", func(t *testing.T) {
		_, err := f.kelas.Create(ctx, kelasReq("missing", constants.Lantai1, "TI-1A"))
		require.Error(t, err)
		assert.True(t, helper.IsNotFound(err))
	})

	t.Run("lantai tak dikenal ditolak", func(t *testing.T) {
		_, err := f.kelas.Create(ctx, kelasReq(gid, "lantai_9", "TI-9A"))
		require.Error(t, err)
		ve, ok := helper.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.FieldErrors["lantai"], "Lantai harus ditentukan")
	})
}

func TestKelasGetByIDGedungMismatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	gidA := f.mustGedung(t, ctx, "Gedung A")
	gidB := f.mustGedung(t, ctx, "Gedung B")

	key, err := f.kelas.Create(ctx, kelasReq(gidA, constants.Lantai1, "TI-1A"))
	require.NoError(t, err)

	k, err := f.kelas.GetByID(ctx, key, gidB, constants.Lantai1)
	require.NoError(t, err)
	assert.Nil(t, k, "koordinat gedung salah harus dianggap absen")
}

func TestKelasMove(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	gidA := f.mustGedung(t, ctx, "Gedung A")
	gidB := f.mustGedung(t, ctx, "Gedung B")

	key, err := f.kelas.Create(ctx, kelasReq(gidA, constants.Lantai1, "TI-1A"))
	require.NoError(t, err)

	req := kelasReq(gidB, constants.Lantai3, "TI-1A")
	require.NoError(t, f.kelas.Update(ctx, key, gidA, constants.Lantai1, req))

	t.Run("record pindah path", func(t *testing.T) {
		old, err := f.store.Get(ctx, relation.KelasPath(constants.Lantai1, key))
		require.NoError(t, err)
		assert.Nil(t, old, "path lama harus kosong")

		moved, err := f.kelas.GetByID(ctx, key, gidB, constants.Lantai3)
		require.NoError(t, err)
		require.NotNil(t, moved)
		assert.Equal(t, constants.Lantai3, moved.Lantai)
		assert.Equal(t, gidB, moved.GedungID)
	})

	t.Run("gedung tujuan dapat referensi, gedung asal tidak dibersihkan", func(t *testing.T) {
		gb, err := f.gedung.GetByID(ctx, gidB)
		require.NoError(t, err)
		_, ok := gb.Kelas[key]
		assert.True(t, ok)

		ga, err := f.gedung.GetByID(ctx, gidA)
		require.NoError(t, err)
		_, stale := ga.Kelas[key]
		assert.True(t, stale, "referensi asal sengaja ditinggalkan untuk audit")
	})

	t.Run("kelas hanya terhitung di gedung tujuan", func(t *testing.T) {
		listA, err := f.kelas.ListByGedung(ctx, gidA, 1, 10)
		require.NoError(t, err)
		assert.Empty(t, listA.Data, "gedung asal tidak boleh ikut menghitung kelas yang pindah")

		listB, err := f.kelas.ListByGedung(ctx, gidB, 1, 10)
		require.NoError(t, err)
		require.Len(t, listB.Data, 1)
		assert.Equal(t, gidB, listB.Data[0].GedungID)

		statsA, err := f.rel.Statistics(ctx, gidA)
		require.NoError(t, err)
		assert.Zero(t, statsA.TotalKelas)

		statsB, err := f.rel.Statistics(ctx, gidB)
		require.NoError(t, err)
		assert.Equal(t, 1, statsB.TotalKelas)
	})

	t.Run("audit melaporkan referensi basi", func(t *testing.T) {
		report, err := f.rel.ValidateConsistency(ctx)
		require.NoError(t, err)
		require.Len(t, report.MissingKelasRefs, 1)
		assert.Equal(t, gidA, report.MissingKelasRefs[0].GedungID)
		assert.Equal(t, key, report.MissingKelasRefs[0].KelasID)
	})
}

func TestKelasDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	gid := f.mustGedung(t, ctx, "Gedung A")

	key, err := f.kelas.Create(ctx, kelasReq(gid, constants.Lantai1, "TI-1A"))
	require.NoError(t, err)

	deleted, err := f.kelas.Delete(ctx, key, gid, constants.Lantai1)
	require.NoError(t, err)
	assert.Equal(t, "lantai_1-1", deleted.ID)

	// Delete repository hanya menghapus record flat; referensi gedung
	// tetap ada sampai caller memanggil DetachReference.
	g, err := f.gedung.GetByID(ctx, gid)
	require.NoError(t, err)
	_, ok := g.Kelas[key]
	assert.True(t, ok)

	require.NoError(t, f.rel.DetachReference(ctx, gid, key))
	g, err = f.gedung.GetByID(ctx, gid)
	require.NoError(t, err)
	_, ok = g.Kelas[key]
	assert.False(t, ok)

	t.Run("hapus dua kali = not found", func(t *testing.T) {
		_, err := f.kelas.Delete(ctx, key, gid, constants.Lantai1)
		require.Error(t, err)
		assert.True(t, helper.IsNotFound(err))
	})
}
