// file: internals/features/kampus/kelas/route/kelas_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/databases/rtdb"
	"kampusku_backend/internals/features/kampus/kelas/controller"
	"kampusku_backend/internals/features/kampus/kelas/repository"
	"kampusku_backend/internals/features/kampus/relation"
)

func KelasRoutes(public fiber.Router, admin fiber.Router, store rtdb.Store, v *validator.Validate, rel *relation.Manager) {
	ctl := controller.NewKelasController(repository.New(store, v, rel), rel)

	k := public.Group("/kelas")
	k.Get("/", ctl.ListAll)
	k.Get("/:gedungId/:lantai/:kelasId", ctl.GetByID)

	// Daftar kelas per gedung menumpang path gedung.
	public.Get("/gedung/:id/kelas", ctl.ListByGedung)

	// Audit konsistensi relasi (operator only).
	admin.Get("/kampus/consistency", ctl.Consistency)

	ka := admin.Group("/kelas")
	ka.Post("/", ctl.Create)                              // ➕ Buat kelas
	ka.Put("/:gedungId/:lantai/:kelasId", ctl.Update)     // ✏️ Edit / pindah kelas
	ka.Delete("/:gedungId/:lantai/:kelasId", ctl.Delete)  // ❌ Hapus kelas + lepas referensi
}
