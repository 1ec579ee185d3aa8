// file: internals/features/kampus/kelas/repository/kelas_repository.go
package repository

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/databases/rtdb"
	"kampusku_backend/internals/features/kampus/kelas/dto"
	"kampusku_backend/internals/features/kampus/kelas/model"
	"kampusku_backend/internals/features/kampus/relation"
	helper "kampusku_backend/internals/helpers"
)

/* =========================================================
   KELAS REPOSITORY
   Record penuh hidup di flat collection kelas/{lantai}/{key};
   referensi ringan ditanam di gedung pemilik lewat relation
   manager. Alamat sebuah kelas selalu tiga koordinat:
   (gedung_id, lantai, key).
========================================================= */

type Repository struct {
	store    rtdb.Store
	validate *validator.Validate
	relation *relation.Manager
}

func New(store rtdb.Store, v *validator.Validate, rel *relation.Manager) *Repository {
	return &Repository{store: store, validate: v, relation: rel}
}

func (r *Repository) validateRequest(req dto.KelasRequest) error {
	if verr := helper.ValidateStruct(r.validate, req, dto.ValidationMessages); verr != nil {
		return verr
	}
	if !constants.IsValidLantai(req.Lantai) {
		return helper.SingleFieldError("lantai", "Lantai harus ditentukan")
	}
	return nil
}

// Create menulis record penuh ke flat collection lalu menanam
// referensi di gedung pemilik. Dua tulisan tanpa transaksi: bila
// tulisan kedua gagal setelah yang pertama sukses, record flat sudah
// ada tanpa referensi — dicatat sebagai partial failure.
func (r *Repository) Create(ctx context.Context, req dto.KelasRequest) (string, error) {
	if err := r.validateRequest(req); err != nil {
		return "", err
	}

	gdg, err := r.store.Get(ctx, relation.GedungPath(req.GedungID))
	if err != nil {
		return "", helper.NewPersistenceError("baca gedung", err)
	}
	if gdg == nil {
		return "", helper.NewNotFoundError("Gedung tidak ditemukan")
	}

	// Nomor lokal per (gedung, lantai): scan record yang ada, max+1.
	existing, err := r.relation.KelasOnLantaiForGedung(ctx, req.GedungID, req.Lantai)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(existing))
	for _, k := range existing {
		ids = append(ids, k.ID)
	}
	humanID := fmt.Sprintf("%s-%d", req.Lantai, helper.NextFloorLocalID(ids))

	key, err := r.store.Push(ctx, relation.LantaiPath(req.Lantai))
	if err != nil {
		return "", helper.NewPersistenceError("push key kelas", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	rec := model.KelasModel{
		ID:              humanID,
		CodeKelas:       req.CodeKelas,
		KapasitasOrang:  req.KapasitasOrang,
		TotalPapanTulis: req.TotalPapanTulis,
		TotalTelevisi:   req.TotalTelevisi,
		Lantai:          req.Lantai,
		GedungID:        req.GedungID,
		Image:           optionalURL(req.Image),
		Slug:            helper.KelasSlug(req.CodeKelas, req.Lantai),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := r.store.Set(ctx, relation.KelasPath(req.Lantai, key), rec); err != nil {
		return "", helper.NewPersistenceError("simpan kelas", err)
	}

	if err := r.relation.AttachReference(ctx, req.GedungID, key, rec.Ref()); err != nil {
		log.Printf("[KELAS] partial failure create %s: record flat tersimpan, referensi gedung %s gagal: %v",
			key, req.GedungID, err)
		return key, err
	}
	return key, nil
}

// ListAll: jalan-jalan seluruh flat collection, ratakan, sort
// created_at desc, paginasi in-memory.
func (r *Repository) ListAll(ctx context.Context, page, limit int) (*dto.KelasPage, error) {
	list, err := r.relation.AllKelas(ctx)
	if err != nil {
		return nil, err
	}
	return paginate(list, page, limit), nil
}

// ListByGedung: jalan yang sama dibatasi satu gedung.
func (r *Repository) ListByGedung(ctx context.Context, gedungID string, page, limit int) (*dto.KelasPage, error) {
	list, err := r.relation.KelasForGedung(ctx, gedungID)
	if err != nil {
		return nil, err
	}
	return paginate(list, page, limit), nil
}

// GetByID butuh tiga koordinat; path record tidak bisa dialamatkan
// tanpa tahu gedung pemilik dan lantai. (nil, nil) bila absen atau
// gedung tidak cocok.
func (r *Repository) GetByID(ctx context.Context, kelasID, gedungID, lantai string) (*model.KelasModel, error) {
	snap, err := r.store.Get(ctx, relation.KelasPath(lantai, kelasID))
	if err != nil {
		return nil, helper.NewPersistenceError("baca kelas", err)
	}
	if snap == nil {
		return nil, nil
	}

	var k model.KelasModel
	if err := rtdb.Decode(snap, &k); err != nil {
		return nil, helper.NewPersistenceError("decode kelas", err)
	}
	if k.GedungID != gedungID {
		return nil, nil
	}
	k.FirebaseID = kelasID
	k.GedungFirebaseID = gedungID
	return &k, nil
}

// Update mengubah record di koordinat lama. Bila gedung/lantai
// berubah, lakukan MOVE: tulis record penuh di path baru, hapus path
// lama, tanam referensi di gedung baru. Referensi di gedung ASAL
// sengaja tidak dibersihkan di jalur ini — drift yang ditinggalkan
// dilaporkan audit konsistensi, bukan diperbaiki diam-diam.
// Move = delete+create dua path tanpa state antara: crash di tengah
// meninggalkan kelas dobel atau hilang.
func (r *Repository) Update(ctx context.Context, kelasID, gedungID, lantai string, req dto.KelasRequest) error {
	if err := r.validateRequest(req); err != nil {
		return err
	}

	existing, err := r.GetByID(ctx, kelasID, gedungID, lantai)
	if err != nil {
		return err
	}
	if existing == nil {
		return helper.NewNotFoundError("Kelas tidak ditemukan")
	}

	updated := *existing
	updated.CodeKelas = req.CodeKelas
	updated.KapasitasOrang = req.KapasitasOrang
	updated.TotalPapanTulis = req.TotalPapanTulis
	updated.TotalTelevisi = req.TotalTelevisi
	updated.Lantai = req.Lantai
	updated.GedungID = req.GedungID
	updated.Image = optionalURL(req.Image)
	updated.Slug = helper.KelasSlug(req.CodeKelas, req.Lantai)
	updated.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	updated.FirebaseID = ""
	updated.GedungFirebaseID = ""

	moved := req.GedungID != gedungID || req.Lantai != lantai
	if moved {
		if err := r.store.Set(ctx, relation.KelasPath(req.Lantai, kelasID), updated); err != nil {
			return helper.NewPersistenceError("tulis kelas di lokasi baru", err)
		}
		if err := r.store.Remove(ctx, relation.KelasPath(lantai, kelasID)); err != nil {
			log.Printf("[KELAS] partial failure move %s: lokasi baru tertulis, lokasi lama gagal dihapus: %v",
				kelasID, err)
			return helper.NewPersistenceError("hapus kelas di lokasi lama", err)
		}
	} else {
		if err := r.store.Set(ctx, relation.KelasPath(lantai, kelasID), updated); err != nil {
			return helper.NewPersistenceError("simpan kelas", err)
		}
	}

	// Referensi di gedung tujuan selalu disegarkan (menimpa bila sudah
	// ada); referensi gedung asal dibiarkan bila pindah antar gedung.
	if err := r.relation.AttachReference(ctx, req.GedungID, kelasID, updated.Ref()); err != nil {
		log.Printf("[KELAS] partial failure update %s: record tersimpan, referensi gedung %s gagal: %v",
			kelasID, req.GedungID, err)
		return err
	}
	return nil
}

// Delete menghapus SATU path saja (record flat). Pembersihan
// referensi gedung adalah urusan relation manager dan harus
// dipanggil eksplisit oleh caller.
func (r *Repository) Delete(ctx context.Context, kelasID, gedungID, lantai string) (*model.KelasModel, error) {
	existing, err := r.GetByID(ctx, kelasID, gedungID, lantai)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, helper.NewNotFoundError("Kelas tidak ditemukan")
	}

	if err := r.store.Remove(ctx, relation.KelasPath(lantai, kelasID)); err != nil {
		return nil, helper.NewPersistenceError("hapus kelas", err)
	}
	return existing, nil
}

/* ========= internal ========= */

func paginate(list []model.KelasModel, page, limit int) *dto.KelasPage {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt != list[j].CreatedAt {
			return list[i].CreatedAt > list[j].CreatedAt
		}
		return list[i].FirebaseID > list[j].FirebaseID
	})

	start, end := helper.SliceBounds(len(list), page, limit)
	return &dto.KelasPage{
		Data:     list[start:end],
		PageMeta: helper.BuildPageMeta(len(list), page, limit),
	}
}

func optionalURL(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
