package constants

// Daftar lantai yang dikenal sistem. Record kelas hanya boleh
// berada di salah satu lantai ini (flat collection di-shard per lantai).
const (
	Lantai1 = "lantai_1"
	Lantai2 = "lantai_2"
	Lantai3 = "lantai_3"
	Lantai4 = "lantai_4"
	Lantai5 = "lantai_5"
)

var AllLantai = []string{Lantai1, Lantai2, Lantai3, Lantai4, Lantai5}

func IsValidLantai(lantai string) bool {
	for _, l := range AllLantai {
		if l == lantai {
			return true
		}
	}
	return false
}
