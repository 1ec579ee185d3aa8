// file: internals/databases/rtdb/store.go
package rtdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

/* =========================================================
   STORE — key-path API di atas satu pohon dokumen hierarkis
   Semantik mengikuti ref/get/set/push:
   - Get mengembalikan nil bila path tidak ada (bukan error).
   - Set dengan value nil berarti hapus subtree di path itu.
   - Push menghasilkan child key unik (time-ordered).
   Tidak ada transaksi multi-path; setiap Set pada path dalam
   adalah read-modify-write terhadap dokumen koleksi.
========================================================= */

type Store interface {
	Get(ctx context.Context, path string) (any, error)
	Set(ctx context.Context, path string, value any) error
	Remove(ctx context.Context, path string) error
	Push(ctx context.Context, path string) (string, error)
}

// splitPath memecah "gedung/abc/kelas" → ["gedung","abc","kelas"].
func splitPath(path string) ([]string, error) {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return nil, fmt.Errorf("rtdb: path kosong")
	}
	segs := strings.Split(path, "/")
	for _, s := range segs {
		if s == "" {
			return nil, fmt.Errorf("rtdb: path tidak valid: %q", path)
		}
	}
	return segs, nil
}

// normalize meratakan value apa pun menjadi pohon map/slice/skalar JSON,
// supaya isi dokumen konsisten tidak peduli tipe Go yang disimpan.
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("rtdb: marshal value: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("rtdb: unmarshal value: %w", err)
	}
	return out, nil
}

// Decode menuangkan snapshot (map[string]any hasil Get) ke struct tujuan.
func Decode(snapshot any, out any) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("rtdb: marshal snapshot: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("rtdb: decode snapshot: %w", err)
	}
	return nil
}

// AsMap mengembalikan snapshot sebagai map (nil bila bukan map / kosong).
func AsMap(snapshot any) map[string]any {
	m, _ := snapshot.(map[string]any)
	return m
}
