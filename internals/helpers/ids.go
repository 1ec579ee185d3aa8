package helper

import (
	"strconv"
	"strings"
)

// NextSequentialID: nomor urut gedung = jumlah entri saat ini + 1.
// Strategi count-then-write; tidak aman terhadap create bersamaan
// (dua pembaca snapshot yang sama mendapat nomor sama).
func NextSequentialID(existingCount int) int {
	return existingCount + 1
}

// NextFloorLocalID memberi nomor lokal berikutnya pada satu lantai.
// Setiap id kelas berbentuk "{lantai}-{n}"; ambil suffix numerik
// terakhir, cari max, +1. Fallback 1 bila tidak ada yang bisa diparse.
func NextFloorLocalID(existingIDs []string) int {
	max := 0
	for _, id := range existingIDs {
		parts := strings.Split(id, "-")
		if len(parts) < 2 {
			continue
		}
		n, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil || n <= 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max + 1
}
