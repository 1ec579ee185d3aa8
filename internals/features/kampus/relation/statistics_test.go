package relation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/constants"
	kelasModel "kampusku_backend/internals/features/kampus/kelas/model"
)

func TestStatistics(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t)
	seedGedung(t, ctx, store, "g1", "Gedung A")

	caps := []int{40, 35, 50}
	for i, kapasitas := range caps {
		key := string(rune('a' + i))
		rec := kelasModel.KelasModel{
			ID:              constants.Lantai1 + "-1",
			CodeKelas:       "K" + key,
			KapasitasOrang:  kapasitas,
			TotalPapanTulis: 1,
			TotalTelevisi:   i % 2,
			Lantai:          constants.Lantai1,
			GedungID:        "g1",
		}
		require.NoError(t, store.Set(ctx, KelasPath(constants.Lantai1, "k"+key), rec))
		require.NoError(t, m.AttachReference(ctx, "g1", "k"+key, rec.Ref()))
	}

	stats, err := m.Statistics(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalKelas)
	assert.Equal(t, 125, stats.TotalKapasitas)
	assert.Equal(t, 3, stats.TotalPapanTulis)
	assert.Equal(t, 1, stats.TotalTelevisi)
}

func TestStatisticsMissingGedung(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	stats, err := m.Statistics(ctx, "tidak-ada")
	require.NoError(t, err)
	assert.Zero(t, stats.TotalKelas)
	assert.Zero(t, stats.TotalKapasitas)
}
