// file: internals/features/kampus/gedung/controller/gedung_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/features/kampus/gedung/dto"
	"kampusku_backend/internals/features/kampus/gedung/repository"
	"kampusku_backend/internals/features/kampus/relation"
	helper "kampusku_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type GedungController struct {
	Repo     *repository.Repository
	Relation *relation.Manager
}

func NewGedungController(repo *repository.Repository, rel *relation.Manager) *GedungController {
	return &GedungController{Repo: repo, Relation: rel}
}

// POST /gedung
func (ctl *GedungController) Create(c *fiber.Ctx) error {
	var req dto.GedungRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	id, err := ctl.Repo.Create(c.UserContext(), req)
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonCreated(c, "Gedung berhasil dibuat", fiber.Map{"id": id})
}

// GET /gedung
func (ctl *GedungController) List(c *fiber.Ctx) error {
	list, err := ctl.Repo.List(c.UserContext())
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonOK(c, "", list)
}

// GET /gedung/paginated?page=&limit=
func (ctl *GedungController) ListPaginated(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	page, err := ctl.Repo.ListPaginated(c.UserContext(), p.Page, p.Limit)
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonOK(c, "", page)
}

// GET /gedung/:id
func (ctl *GedungController) GetByID(c *fiber.Ctx) error {
	g, err := ctl.Repo.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	if g == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Gedung tidak ditemukan")
	}
	return helper.JsonOK(c, "", g)
}

// GET /gedung/slug/:slug
func (ctl *GedungController) GetBySlug(c *fiber.Ctx) error {
	g, err := ctl.Repo.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	if g == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Gedung tidak ditemukan")
	}
	return helper.JsonOK(c, "", g)
}

// PUT /gedung/:id
func (ctl *GedungController) Update(c *fiber.Ctx) error {
	var req dto.GedungRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	id := c.Params("id")
	if err := ctl.Repo.Update(c.UserContext(), id, req); err != nil {
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonUpdated(c, "Gedung berhasil diupdate", fiber.Map{"id": id})
}

// DELETE /gedung/:id — cascade bersama seluruh kelas yang dirujuk.
func (ctl *GedungController) Delete(c *fiber.Ctx) error {
	deleted, err := ctl.Repo.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonDeleted(c, "Gedung berhasil dihapus", dto.DeleteGedungResult{DeletedKelas: deleted})
}

// GET /gedung/:id/statistics
func (ctl *GedungController) Statistics(c *fiber.Ctx) error {
	stats, err := ctl.Relation.Statistics(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonOK(c, "", stats)
}
