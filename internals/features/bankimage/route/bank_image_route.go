// file: internals/features/bankimage/route/bank_image_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/databases/rtdb"
	"kampusku_backend/internals/features/bankimage/controller"
	"kampusku_backend/internals/features/bankimage/repository"
)

// BankImageRoutes: dua bank gambar yang tidak saling sinkron.
// /bank-image → provider (OSS), /image-list → daftar URL bebas.
func BankImageRoutes(public fiber.Router, admin fiber.Router, store rtdb.Store, v *validator.Validate) {
	bank := controller.NewBankImageController()
	list := controller.NewImageListController(repository.New(store, v))

	public.Get("/bank-image", bank.List)
	ba := admin.Group("/bank-image")
	ba.Post("/", bank.Upload)      // 📤 Upload + konversi WebP
	ba.Patch("/*", bank.UpdateMeta) // ✏️ Metadata object
	ba.Delete("/*", bank.Delete)    // ❌ Hapus object (key mengandung slash)

	il := public.Group("/image-list")
	il.Get("/", list.List)
	il.Get("/:id", list.GetByID)

	ila := admin.Group("/image-list")
	ila.Post("/", list.Create)
	ila.Put("/:id", list.Update)
	ila.Delete("/:id", list.Delete)
}
