// file: internals/features/kampus/kelas/dto/kelas_dto.go
package dto

import (
	helper "kampusku_backend/internals/helpers"

	"kampusku_backend/internals/features/kampus/kelas/model"
)

/* =========================================================
   REQUEST DTO — CREATE / UPDATE
   kapasitas_orang yang tidak dikirim jatuh ke 0 dan ditolak
   oleh min=1, sama seperti coercion di form lama.
========================================================= */

type KelasRequest struct {
	CodeKelas       string `json:"code_kelas" validate:"required,min=3"`
	KapasitasOrang  int    `json:"kapasitas_orang" validate:"min=1"`
	TotalPapanTulis int    `json:"total_papan_tulis" validate:"min=0"`
	TotalTelevisi   int    `json:"total_televisi" validate:"min=0"`
	Lantai          string `json:"lantai" validate:"required"`
	GedungID        string `json:"gedung_id" validate:"required"`
	Image           string `json:"image" validate:"omitempty,url"`
}

var ValidationMessages = map[string]string{
	"code_kelas.required":    "Nama kelas harus minimal 3 karakter",
	"code_kelas.min":         "Nama kelas harus minimal 3 karakter",
	"kapasitas_orang.min":    "Kapasitas minimal 1 orang",
	"total_papan_tulis.min":  "Jumlah papan tulis tidak boleh negatif",
	"total_televisi.min":     "Jumlah televisi tidak boleh negatif",
	"lantai.required":        "Lantai harus ditentukan",
	"gedung_id.required":     "Gedung harus dipilih",
	"image.url":              "URL gambar tidak valid",
}

/* =========================================================
   PAGE DTO
========================================================= */

type KelasPage struct {
	Data []model.KelasModel `json:"data"`
	helper.PageMeta
}
