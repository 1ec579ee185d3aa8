// file: internals/features/bankimage/controller/image_list_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/features/bankimage/dto"
	"kampusku_backend/internals/features/bankimage/repository"
	helper "kampusku_backend/internals/helpers"
)

// ImageListController: bank gambar lokal berbasis URL bebas.
// Terpisah penuh dari bank provider; tidak ada sinkronisasi.
type ImageListController struct {
	Repo *repository.Repository
}

func NewImageListController(repo *repository.Repository) *ImageListController {
	return &ImageListController{Repo: repo}
}

// ➕ POST /image-list
func (ctl *ImageListController) Create(c *fiber.Ctx) error {
	var req dto.ImageListRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	key, err := ctl.Repo.Create(c.UserContext(), req)
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonCreated(c, "Gambar berhasil ditambahkan", fiber.Map{"id": key})
}

// 📄 GET /image-list
func (ctl *ImageListController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	page, err := ctl.Repo.List(c.UserContext(), paging.Page, paging.Limit)
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonOK(c, "OK", page)
}

// 🔍 GET /image-list/:id
func (ctl *ImageListController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.Repo.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Gambar tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", m)
}

// ✏️ PUT /image-list/:id
func (ctl *ImageListController) Update(c *fiber.Ctx) error {
	var req dto.ImageListRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := ctl.Repo.Update(c.UserContext(), c.Params("id"), req); err != nil {
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonUpdated(c, "Gambar berhasil diperbarui", fiber.Map{"id": c.Params("id")})
}

// 🗑️ DELETE /image-list/:id
func (ctl *ImageListController) Delete(c *fiber.Ctx) error {
	if err := ctl.Repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonDeleted(c, "Gambar berhasil dihapus", fiber.Map{"id": c.Params("id")})
}
