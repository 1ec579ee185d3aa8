// file: internals/features/kampus/relation/relation_manager.go
package relation

import (
	"context"
	"log"
	"sort"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/databases/rtdb"
	gedungModel "kampusku_backend/internals/features/kampus/gedung/model"
	kelasModel "kampusku_backend/internals/features/kampus/kelas/model"
	helper "kampusku_backend/internals/helpers"
)

/* =========================================================
   RELATION CONSISTENCY MANAGER
   Peta referensi di gedung dan flat collection kelas adalah dua
   view denormalisasi dari satu relasi. Hanya komponen ini yang
   boleh menulis ke dua sisi sekaligus. Store tidak punya transaksi
   multi-path: "atomik" di sini berarti tulis berurutan best-effort,
   dan langkah yang gagal setelah langkah pertama sukses dicatat
   sebagai partial failure.
========================================================= */

const (
	GedungCollection = "gedung"
	KelasCollection  = "kelas"
)

func GedungPath(gedungID string) string {
	return GedungCollection + "/" + gedungID
}

func GedungKelasRefPath(gedungID, kelasID string) string {
	return GedungCollection + "/" + gedungID + "/kelas/" + kelasID
}

func LantaiPath(lantai string) string {
	return KelasCollection + "/" + lantai
}

func KelasPath(lantai, kelasID string) string {
	return KelasCollection + "/" + lantai + "/" + kelasID
}

type Manager struct {
	store rtdb.Store
}

func NewManager(store rtdb.Store) *Manager {
	return &Manager{store: store}
}

func (m *Manager) Store() rtdb.Store { return m.store }

/* =========================================================
   Attach / Detach referensi
========================================================= */

func (m *Manager) AttachReference(ctx context.Context, gedungID, kelasID string, ref gedungModel.KelasReference) error {
	if err := m.store.Set(ctx, GedungKelasRefPath(gedungID, kelasID), ref); err != nil {
		return helper.NewPersistenceError("attach reference", err)
	}
	return nil
}

func (m *Manager) DetachReference(ctx context.Context, gedungID, kelasID string) error {
	if err := m.store.Remove(ctx, GedungKelasRefPath(gedungID, kelasID)); err != nil {
		return helper.NewPersistenceError("detach reference", err)
	}
	return nil
}

/* =========================================================
   Cascade delete gedung
   1. Baca gedung (NotFound bila tidak ada).
   2. Enumerasi key peta referensinya.
   3. Per key: cek shard sesuai hint lantai di payload referensi,
      fallback scan semua lantai; hapus tiap match, counter++.
      Referensi yang tidak ketemu di flat collection dilewati
      diam-diam (drift; kerjaan audit, bukan cascade).
   4. Hapus record gedung.
========================================================= */

func (m *Manager) CascadeDeleteGedung(ctx context.Context, gedungID string) (int, error) {
	snap, err := m.store.Get(ctx, GedungPath(gedungID))
	if err != nil {
		return 0, helper.NewPersistenceError("baca gedung", err)
	}
	if snap == nil {
		return 0, helper.NewNotFoundError("Gedung tidak ditemukan")
	}

	var gdg gedungModel.GedungModel
	if err := rtdb.Decode(snap, &gdg); err != nil {
		return 0, helper.NewPersistenceError("decode gedung", err)
	}

	deleted := 0
	for kelasID, ref := range gdg.Kelas {
		// Hint lantai dulu, baru full scan.
		floors := make([]string, 0, len(constants.AllLantai))
		if constants.IsValidLantai(ref.Lantai) {
			floors = append(floors, ref.Lantai)
		}
		for _, l := range constants.AllLantai {
			if l != ref.Lantai {
				floors = append(floors, l)
			}
		}

		found := false
		for _, lantai := range floors {
			rec, err := m.store.Get(ctx, KelasPath(lantai, kelasID))
			if err != nil {
				return deleted, helper.NewPersistenceError("scan kelas "+kelasID, err)
			}
			if rec == nil {
				continue
			}
			if err := m.store.Remove(ctx, KelasPath(lantai, kelasID)); err != nil {
				log.Printf("[RELATION] partial failure cascade gedung=%s: hapus kelas %s/%s: %v",
					gedungID, lantai, kelasID, err)
				return deleted, helper.NewPersistenceError("hapus kelas "+kelasID, err)
			}
			deleted++
			found = true
			if lantai == ref.Lantai {
				// Hint kena; tidak perlu lanjut scan shard lain.
				break
			}
		}
		if !found {
			// Referensi yatim: dilaporkan validator, bukan error di sini.
			continue
		}
	}

	if err := m.store.Remove(ctx, GedungPath(gedungID)); err != nil {
		log.Printf("[RELATION] partial failure cascade gedung=%s: kelas terhapus %d tapi gedung gagal dihapus: %v",
			gedungID, deleted, err)
		return deleted, helper.NewPersistenceError("hapus gedung", err)
	}
	return deleted, nil
}

/* =========================================================
   Pembacaan lintas-view (dipakai repository & statistik)
========================================================= */

// AllKelas membaca seluruh flat collection, semua lantai, dan
// meratakannya jadi satu list dengan key store terlampir.
func (m *Manager) AllKelas(ctx context.Context) ([]kelasModel.KelasModel, error) {
	snap, err := m.store.Get(ctx, KelasCollection)
	if err != nil {
		return nil, helper.NewPersistenceError("baca koleksi kelas", err)
	}

	out := []kelasModel.KelasModel{}
	for lantai, lantaiSnap := range rtdb.AsMap(snap) {
		for kelasID, rec := range rtdb.AsMap(lantaiSnap) {
			var k kelasModel.KelasModel
			if err := rtdb.Decode(rec, &k); err != nil {
				log.Printf("[RELATION] lewati record rusak %s/%s: %v", lantai, kelasID, err)
				continue
			}
			k.FirebaseID = kelasID
			k.GedungFirebaseID = k.GedungID
			out = append(out, k)
		}
	}
	return out, nil
}

// KelasForGedung mengumpulkan record penuh semua kelas milik satu
// gedung lewat peta referensinya (hint lantai dulu, fallback scan).
// Referensi tanpa record penuh dilewati diam-diam, begitu juga
// referensi basi yang record-nya sudah milik gedung lain (tertinggal
// setelah move antar gedung): kelas hanya boleh terhitung di gedung
// yang dicatat record flat-nya.
func (m *Manager) KelasForGedung(ctx context.Context, gedungID string) ([]kelasModel.KelasModel, error) {
	snap, err := m.store.Get(ctx, GedungPath(gedungID)+"/kelas")
	if err != nil {
		return nil, helper.NewPersistenceError("baca referensi gedung", err)
	}

	out := []kelasModel.KelasModel{}
	for kelasID, refSnap := range rtdb.AsMap(snap) {
		var ref gedungModel.KelasReference
		if err := rtdb.Decode(refSnap, &ref); err != nil {
			continue
		}
		k, _, err := m.findKelas(ctx, kelasID, ref.Lantai)
		if err != nil {
			return nil, err
		}
		if k == nil || k.GedungID != gedungID {
			continue
		}
		k.FirebaseID = kelasID
		k.GedungFirebaseID = gedungID
		out = append(out, *k)
	}
	return out, nil
}

// KelasOnLantaiForGedung: record flat satu lantai milik satu gedung.
// Dipakai untuk menghitung id lokal berikutnya saat create.
func (m *Manager) KelasOnLantaiForGedung(ctx context.Context, gedungID, lantai string) ([]kelasModel.KelasModel, error) {
	snap, err := m.store.Get(ctx, LantaiPath(lantai))
	if err != nil {
		return nil, helper.NewPersistenceError("baca lantai "+lantai, err)
	}

	out := []kelasModel.KelasModel{}
	for kelasID, rec := range rtdb.AsMap(snap) {
		var k kelasModel.KelasModel
		if err := rtdb.Decode(rec, &k); err != nil {
			continue
		}
		if k.GedungID != gedungID {
			continue
		}
		k.FirebaseID = kelasID
		k.GedungFirebaseID = gedungID
		out = append(out, k)
	}
	return out, nil
}

// findKelas mencari record flat berdasarkan key; coba hint lantai
// dulu, lalu scan semua lantai lain.
func (m *Manager) findKelas(ctx context.Context, kelasID, lantaiHint string) (*kelasModel.KelasModel, string, error) {
	floors := make([]string, 0, len(constants.AllLantai))
	if constants.IsValidLantai(lantaiHint) {
		floors = append(floors, lantaiHint)
	}
	for _, l := range constants.AllLantai {
		if l != lantaiHint {
			floors = append(floors, l)
		}
	}

	for _, lantai := range floors {
		rec, err := m.store.Get(ctx, KelasPath(lantai, kelasID))
		if err != nil {
			return nil, "", helper.NewPersistenceError("cari kelas "+kelasID, err)
		}
		if rec == nil {
			continue
		}
		var k kelasModel.KelasModel
		if err := rtdb.Decode(rec, &k); err != nil {
			return nil, "", helper.NewPersistenceError("decode kelas "+kelasID, err)
		}
		return &k, lantai, nil
	}
	return nil, "", nil
}

/* =========================================================
   Audit konsistensi (read-only, tanpa perbaikan otomatis)
========================================================= */

type MissingRef struct {
	GedungID string `json:"gedungId"`
	KelasID  string `json:"kelasId"`
}

type AuditReport struct {
	OrphanedKelas    []kelasModel.KelasModel `json:"orphanedKelas"`
	MissingKelasRefs []MissingRef            `json:"missingKelasRefs"`
}

// ValidateConsistency memindai kedua koleksi dan melaporkan drift:
// - orphanedKelas: record flat yang gedung_id-nya tidak menunjuk gedung yang ada;
// - missingKelasRefs: pasangan (gedung, kelas) di peta referensi tanpa record
//   flat yang masih milik gedung itu (termasuk referensi basi yang tertinggal
//   setelah kelas dipindah antar gedung — celah yang memang dibiarkan oleh
//   jalur move dan hanya dilaporkan di sini).
func (m *Manager) ValidateConsistency(ctx context.Context) (*AuditReport, error) {
	allKelas, err := m.AllKelas(ctx)
	if err != nil {
		return nil, err
	}

	gedungSnap, err := m.store.Get(ctx, GedungCollection)
	if err != nil {
		return nil, helper.NewPersistenceError("baca koleksi gedung", err)
	}
	gedungMap := rtdb.AsMap(gedungSnap)

	report := &AuditReport{
		OrphanedKelas:    []kelasModel.KelasModel{},
		MissingKelasRefs: []MissingRef{},
	}

	// Kelas yatim: gedung_id tidak menunjuk gedung manapun.
	for _, k := range allKelas {
		if _, ok := gedungMap[k.GedungID]; !ok {
			report.OrphanedKelas = append(report.OrphanedKelas, k)
		}
	}

	// Referensi tanpa record flat yang sesuai.
	gedungIDs := make([]string, 0, len(gedungMap))
	for gid := range gedungMap {
		gedungIDs = append(gedungIDs, gid)
	}
	sort.Strings(gedungIDs) // urutan laporan deterministik

	for _, gid := range gedungIDs {
		var gdg gedungModel.GedungModel
		if err := rtdb.Decode(gedungMap[gid], &gdg); err != nil {
			continue
		}
		for kelasID, ref := range gdg.Kelas {
			k, _, err := m.findKelas(ctx, kelasID, ref.Lantai)
			if err != nil {
				return nil, err
			}
			if k == nil || k.GedungID != gid {
				report.MissingKelasRefs = append(report.MissingKelasRefs, MissingRef{
					GedungID: gid,
					KelasID:  kelasID,
				})
			}
		}
	}

	sort.Slice(report.MissingKelasRefs, func(i, j int) bool {
		a, b := report.MissingKelasRefs[i], report.MissingKelasRefs[j]
		if a.GedungID != b.GedungID {
			return a.GedungID < b.GedungID
		}
		return a.KelasID < b.KelasID
	})

	return report, nil
}
