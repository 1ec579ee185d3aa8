// file: internals/features/bankimage/model/image_list_model.go
package model

/* =========================================================
   IMAGE LIST — bank gambar lokal (freeform URL) di path
   bank_image/{key}. Terpisah total dari bank berbasis provider:
   record di sini boleh menunjuk URL mana pun dan tidak
   disinkronkan dengan lifecycle asset di OSS.
========================================================= */

type ImageListModel struct {
	FirebaseID string `json:"firebaseId,omitempty"`

	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`

	// Terisi hanya bila record berasal dari picker provider; dipakai
	// untuk reverse lookup asset (URL basi tetap mungkin bila asset
	// dihapus langsung di provider).
	AssetID string `json:"asset_id,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
