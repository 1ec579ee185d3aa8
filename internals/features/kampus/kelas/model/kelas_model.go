// file: internals/features/kampus/kelas/model/kelas_model.go
package model

import (
	gedungModel "kampusku_backend/internals/features/kampus/gedung/model"
)

/* =========================================================
   KELAS — record penuh di flat collection kelas/{lantai}/{key}.
   Disimpan dua kali secara logis: record penuh di sini, plus
   referensi ringan di gedung/{gedung_id}/kelas/{key}.
========================================================= */

type KelasModel struct {
	// Key dari store + key gedung pemilik; dilekatkan saat baca.
	FirebaseID       string `json:"firebaseId,omitempty"`
	GedungFirebaseID string `json:"gedungFirebaseId,omitempty"`

	// Id komposit "{lantai}-{n}", n lokal per lantai per gedung.
	ID              string  `json:"id"`
	CodeKelas       string  `json:"code_kelas"`
	KapasitasOrang  int     `json:"kapasitas_orang"`
	TotalPapanTulis int     `json:"total_papan_tulis"`
	TotalTelevisi   int     `json:"total_televisi"`
	Lantai          string  `json:"lantai"`
	GedungID        string  `json:"gedung_id"`
	Image           *string `json:"image"`
	Slug            string  `json:"slug"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// Ref membentuk referensi ringan untuk ditanam di gedung pemilik.
func (k KelasModel) Ref() gedungModel.KelasReference {
	return gedungModel.KelasReference{
		ID:        k.ID,
		CodeKelas: k.CodeKelas,
		Lantai:    k.Lantai,
		Slug:      k.Slug,
	}
}
