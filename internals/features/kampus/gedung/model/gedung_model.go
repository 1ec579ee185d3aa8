// file: internals/features/kampus/gedung/model/gedung_model.go
package model

/* =========================================================
   GEDUNG — record di path gedung/{firebaseId}.
   Field kelas adalah peta referensi ringan ke record kelas
   di flat collection (dua-arah, denormalisasi disengaja).
========================================================= */

type GedungModel struct {
	// Key dari store; dilekatkan saat baca, tidak ikut dipersist.
	FirebaseID string `json:"firebaseId,omitempty"`

	// Nomor urut tampilan (count+1 saat create, tidak dijamin unik).
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	KodeGedung string  `json:"kode_gedung"`
	Image      *string `json:"image"`
	Slug       string  `json:"slug"`

	// kelasId → referensi ringan
	Kelas map[string]KelasReference `json:"kelas"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// KelasReference: salinan identitas kelas yang ditanam di gedung.
// Lantai di sini dipakai sebagai hint shard saat cascade delete.
type KelasReference struct {
	ID        string `json:"id"`
	CodeKelas string `json:"code_kelas"`
	Lantai    string `json:"lantai"`
	Slug      string `json:"slug"`
}
