// file: internals/features/kampus/gedung/repository/gedung_repository.go
package repository

import (
	"context"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"kampusku_backend/internals/databases/rtdb"
	"kampusku_backend/internals/features/kampus/gedung/dto"
	"kampusku_backend/internals/features/kampus/gedung/model"
	"kampusku_backend/internals/features/kampus/relation"
	helper "kampusku_backend/internals/helpers"
)

/* =========================================================
   GEDUNG REPOSITORY
   Semua operasi baca koleksi penuh lalu olah in-memory:
   store tidak menyediakan query/pagination server-side.
========================================================= */

type Repository struct {
	store    rtdb.Store
	validate *validator.Validate
	relation *relation.Manager
}

func New(store rtdb.Store, v *validator.Validate, rel *relation.Manager) *Repository {
	return &Repository{store: store, validate: v, relation: rel}
}

// Create memvalidasi input, menghitung nomor urut dengan membaca
// seluruh koleksi (count-then-write, O(n), rawan race antar sesi —
// perilaku ini disengaja; identitas sesungguhnya adalah push key),
// lalu menulis record baru dengan peta kelas kosong.
func (r *Repository) Create(ctx context.Context, req dto.GedungRequest) (string, error) {
	if verr := helper.ValidateStruct(r.validate, req, dto.ValidationMessages); verr != nil {
		return "", verr
	}

	snap, err := r.store.Get(ctx, relation.GedungCollection)
	if err != nil {
		return "", helper.NewPersistenceError("baca koleksi gedung", err)
	}
	existingCount := len(rtdb.AsMap(snap))

	key, err := r.store.Push(ctx, relation.GedungCollection)
	if err != nil {
		return "", helper.NewPersistenceError("push key gedung", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	rec := model.GedungModel{
		ID:         helper.NextSequentialID(existingCount),
		Name:       req.Name,
		KodeGedung: req.KodeGedung,
		Image:      optionalURL(req.Image),
		Slug:       helper.Slugify(req.Name, 100),
		Kelas:      map[string]model.KelasReference{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := r.store.Set(ctx, relation.GedungPath(key), rec); err != nil {
		return "", helper.NewPersistenceError("simpan gedung", err)
	}
	return key, nil
}

// List meratakan koleksi jadi slice dengan key store terlampir.
func (r *Repository) List(ctx context.Context) ([]model.GedungModel, error) {
	snap, err := r.store.Get(ctx, relation.GedungCollection)
	if err != nil {
		return nil, helper.NewPersistenceError("baca koleksi gedung", err)
	}

	out := []model.GedungModel{}
	for key, rec := range rtdb.AsMap(snap) {
		var g model.GedungModel
		if err := rtdb.Decode(rec, &g); err != nil {
			continue
		}
		g.FirebaseID = key
		out = append(out, g)
	}
	return out, nil
}

// ListPaginated: sort created_at desc lalu slice in-memory.
// Halaman 1-based; halaman di luar jangkauan = slice kosong, bukan error.
func (r *Repository) ListPaginated(ctx context.Context, page, limit int) (*dto.GedungPage, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt != list[j].CreatedAt {
			return list[i].CreatedAt > list[j].CreatedAt
		}
		return list[i].FirebaseID > list[j].FirebaseID
	})

	start, end := helper.SliceBounds(len(list), page, limit)
	return &dto.GedungPage{
		Data:     list[start:end],
		PageMeta: helper.BuildPageMeta(len(list), page, limit),
	}, nil
}

// GetByID: lookup langsung by key. Mengembalikan (nil, nil) bila absen.
func (r *Repository) GetByID(ctx context.Context, gedungID string) (*model.GedungModel, error) {
	snap, err := r.store.Get(ctx, relation.GedungPath(gedungID))
	if err != nil {
		return nil, helper.NewPersistenceError("baca gedung", err)
	}
	if snap == nil {
		return nil, nil
	}

	var g model.GedungModel
	if err := rtdb.Decode(snap, &g); err != nil {
		return nil, helper.NewPersistenceError("decode gedung", err)
	}
	g.FirebaseID = gedungID
	return &g, nil
}

// GetBySlug: linear scan, kembalikan match pertama. Slug tidak dijamin
// unik; saat tabrakan, record mana yang terpilih mengikuti urutan
// iterasi koleksi (anggap non-deterministik).
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*model.GedungModel, error) {
	snap, err := r.store.Get(ctx, relation.GedungCollection)
	if err != nil {
		return nil, helper.NewPersistenceError("baca koleksi gedung", err)
	}

	for key, rec := range rtdb.AsMap(snap) {
		var g model.GedungModel
		if err := rtdb.Decode(rec, &g); err != nil {
			continue
		}
		if g.Slug == slug {
			g.FirebaseID = key
			return &g, nil
		}
	}
	return nil, nil
}

// Update merge field baru di atas record lama; slug diturunkan ulang
// dari nama baru; peta kelas tidak disentuh.
func (r *Repository) Update(ctx context.Context, gedungID string, req dto.GedungRequest) error {
	if verr := helper.ValidateStruct(r.validate, req, dto.ValidationMessages); verr != nil {
		return verr
	}

	existing, err := r.GetByID(ctx, gedungID)
	if err != nil {
		return err
	}
	if existing == nil {
		return helper.NewNotFoundError("Gedung tidak ditemukan")
	}

	existing.Name = req.Name
	existing.KodeGedung = req.KodeGedung
	existing.Image = optionalURL(req.Image)
	existing.Slug = helper.Slugify(req.Name, 100)
	existing.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	existing.FirebaseID = "" // key tidak ikut dipersist

	if err := r.store.Set(ctx, relation.GedungPath(gedungID), existing); err != nil {
		return helper.NewPersistenceError("simpan gedung", err)
	}
	return nil
}

// Delete: cascade lewat Relation Consistency Manager; mengembalikan
// jumlah record kelas flat yang ikut terhapus.
func (r *Repository) Delete(ctx context.Context, gedungID string) (int, error) {
	return r.relation.CascadeDeleteGedung(ctx, gedungID)
}

func optionalURL(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
