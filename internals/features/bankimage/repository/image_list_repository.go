// file: internals/features/bankimage/repository/image_list_repository.go
package repository

import (
	"context"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"kampusku_backend/internals/databases/rtdb"
	"kampusku_backend/internals/features/bankimage/dto"
	"kampusku_backend/internals/features/bankimage/model"
	helper "kampusku_backend/internals/helpers"
)

const Collection = "bank_image"

// Repository bank gambar lokal: record {name,url,description,tags}
// langsung di pohon dokumen, tanpa provider.
type Repository struct {
	store    rtdb.Store
	validate *validator.Validate
}

func New(store rtdb.Store, v *validator.Validate) *Repository {
	return &Repository{store: store, validate: v}
}

func (r *Repository) Create(ctx context.Context, req dto.ImageListRequest) (string, error) {
	if verr := helper.ValidateStruct(r.validate, req, dto.ImageListValidationMessages); verr != nil {
		return "", verr
	}

	key, err := r.store.Push(ctx, Collection)
	if err != nil {
		return "", helper.NewPersistenceError("push key bank image", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	rec := model.ImageListModel{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		Tags:        normalizeTags(req.Tags),
		AssetID:     req.AssetID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := r.store.Set(ctx, Collection+"/"+key, rec); err != nil {
		return "", helper.NewPersistenceError("simpan bank image", err)
	}
	return key, nil
}

func (r *Repository) List(ctx context.Context, page, limit int) (*dto.ImageListPage, error) {
	snap, err := r.store.Get(ctx, Collection)
	if err != nil {
		return nil, helper.NewPersistenceError("baca bank image", err)
	}

	list := []model.ImageListModel{}
	for key, rec := range rtdb.AsMap(snap) {
		var m model.ImageListModel
		if err := rtdb.Decode(rec, &m); err != nil {
			continue
		}
		m.FirebaseID = key
		list = append(list, m)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt != list[j].CreatedAt {
			return list[i].CreatedAt > list[j].CreatedAt
		}
		return list[i].FirebaseID > list[j].FirebaseID
	})

	start, end := helper.SliceBounds(len(list), page, limit)
	return &dto.ImageListPage{
		Data:     list[start:end],
		PageMeta: helper.BuildPageMeta(len(list), page, limit),
	}, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*model.ImageListModel, error) {
	snap, err := r.store.Get(ctx, Collection+"/"+id)
	if err != nil {
		return nil, helper.NewPersistenceError("baca bank image", err)
	}
	if snap == nil {
		return nil, nil
	}

	var m model.ImageListModel
	if err := rtdb.Decode(snap, &m); err != nil {
		return nil, helper.NewPersistenceError("decode bank image", err)
	}
	m.FirebaseID = id
	return &m, nil
}

func (r *Repository) Update(ctx context.Context, id string, req dto.ImageListRequest) error {
	if verr := helper.ValidateStruct(r.validate, req, dto.ImageListValidationMessages); verr != nil {
		return verr
	}

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return helper.NewNotFoundError("Gambar tidak ditemukan")
	}

	existing.Name = req.Name
	existing.URL = req.URL
	existing.Description = req.Description
	existing.Tags = normalizeTags(req.Tags)
	existing.AssetID = req.AssetID
	existing.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	existing.FirebaseID = ""

	if err := r.store.Set(ctx, Collection+"/"+id, existing); err != nil {
		return helper.NewPersistenceError("simpan bank image", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return helper.NewNotFoundError("Gambar tidak ditemukan")
	}
	if err := r.store.Remove(ctx, Collection+"/"+id); err != nil {
		return helper.NewPersistenceError("hapus bank image", err)
	}
	return nil
}

func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
