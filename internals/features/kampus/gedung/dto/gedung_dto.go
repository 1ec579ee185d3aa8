// file: internals/features/kampus/gedung/dto/gedung_dto.go
package dto

import (
	helper "kampusku_backend/internals/helpers"

	"kampusku_backend/internals/features/kampus/gedung/model"
)

/* =========================================================
   REQUEST DTO — CREATE / UPDATE (writable fields only)
   Pesan validasi mengikuti form dashboard.
========================================================= */

type GedungRequest struct {
	Name       string `json:"name" validate:"required,min=3"`
	KodeGedung string `json:"kode_gedung" validate:"required,min=2"`
	Image      string `json:"image" validate:"omitempty,url"`
}

// ValidationMessages: pesan per field.tag untuk helper.ValidateStruct.
var ValidationMessages = map[string]string{
	"name.required":        "Name must be at least 3 characters",
	"name.min":             "Name must be at least 3 characters",
	"kode_gedung.required": "Kode gedung minimal 2 karakter",
	"kode_gedung.min":      "Kode gedung minimal 2 karakter",
	"image.url":            "Image must be a valid URL",
}

/* =========================================================
   RESPONSE / PAGE DTO
========================================================= */

type GedungPage struct {
	Data []model.GedungModel `json:"data"`
	helper.PageMeta
}

type DeleteGedungResult struct {
	DeletedKelas int `json:"deletedKelas"`
}
