// file: internals/features/kampus/gedung/route/gedung_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/databases/rtdb"
	"kampusku_backend/internals/features/kampus/gedung/controller"
	"kampusku_backend/internals/features/kampus/gedung/repository"
	"kampusku_backend/internals/features/kampus/relation"
)

// GedungRoutes: baca terbuka, mutasi lewat group admin (JWT).
func GedungRoutes(public fiber.Router, admin fiber.Router, store rtdb.Store, v *validator.Validate, rel *relation.Manager) {
	ctl := controller.NewGedungController(repository.New(store, v, rel), rel)

	g := public.Group("/gedung")
	g.Get("/", ctl.List)
	g.Get("/paginated", ctl.ListPaginated)
	g.Get("/slug/:slug", ctl.GetBySlug)
	g.Get("/:id", ctl.GetByID)
	g.Get("/:id/statistics", ctl.Statistics)

	ga := admin.Group("/gedung")
	ga.Post("/", ctl.Create)      // ➕ Buat gedung
	ga.Put("/:id", ctl.Update)    // ✏️ Edit gedung
	ga.Delete("/:id", ctl.Delete) // ❌ Hapus gedung + cascade kelas
}
