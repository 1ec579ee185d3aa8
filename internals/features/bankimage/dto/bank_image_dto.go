// file: internals/features/bankimage/dto/bank_image_dto.go
package dto

import (
	helper "kampusku_backend/internals/helpers"

	"kampusku_backend/internals/features/bankimage/model"
)

/* ========= Bank provider (OSS) ========= */

type AssetResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	URL         string   `json:"url"`
	Size        int64    `json:"size,omitempty"`
	UploadedAt  string   `json:"uploadedAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

type UpdateAssetMetaRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

/* ========= Bank lokal (freeform URL) ========= */

type ImageListRequest struct {
	Name        string   `json:"name" validate:"required,min=1"`
	URL         string   `json:"url" validate:"required,url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	AssetID     string   `json:"asset_id"`
}

var ImageListValidationMessages = map[string]string{
	"name.required": "Nama gambar wajib diisi",
	"name.min":      "Nama gambar wajib diisi",
	"url.required":  "URL gambar wajib diisi",
	"url.url":       "URL gambar tidak valid",
}

type ImageListPage struct {
	Data []model.ImageListModel `json:"data"`
	helper.PageMeta
}
