// file: internals/features/kampus/relation/statistics.go
package relation

import "context"

// GedungStatistics: rollup per gedung dari relasi gedung→kelas.
type GedungStatistics struct {
	TotalKelas      int `json:"totalKelas"`
	TotalKapasitas  int `json:"totalKapasitas"`
	TotalPapanTulis int `json:"totalPapanTulis"`
	TotalTelevisi   int `json:"totalTelevisi"`
}

// Statistics menjumlahkan seluruh kelas milik gedung. Gedung tanpa
// kelas atau gedung yang tidak ada sama-sama menghasilkan statistik
// nol (bukan error); pemanggil yang butuh membedakan harus cek
// keberadaan gedung sendiri.
func (m *Manager) Statistics(ctx context.Context, gedungID string) (GedungStatistics, error) {
	list, err := m.KelasForGedung(ctx, gedungID)
	if err != nil {
		return GedungStatistics{}, err
	}

	stats := GedungStatistics{}
	for _, k := range list {
		stats.TotalKelas++
		stats.TotalKapasitas += k.KapasitasOrang
		stats.TotalPapanTulis += k.TotalPapanTulis
		stats.TotalTelevisi += k.TotalTelevisi
	}
	return stats, nil
}
