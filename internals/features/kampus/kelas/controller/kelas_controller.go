// file: internals/features/kampus/kelas/controller/kelas_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/features/kampus/kelas/dto"
	"kampusku_backend/internals/features/kampus/kelas/repository"
	"kampusku_backend/internals/features/kampus/relation"
	helper "kampusku_backend/internals/helpers"
)

type KelasController struct {
	Repo     *repository.Repository
	Relation *relation.Manager
}

func NewKelasController(repo *repository.Repository, rel *relation.Manager) *KelasController {
	return &KelasController{Repo: repo, Relation: rel}
}

// POST /kelas
func (ctl *KelasController) Create(c *fiber.Ctx) error {
	var req dto.KelasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	id, err := ctl.Repo.Create(c.UserContext(), req)
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat di "+req.Lantai, fiber.Map{"id": id})
}

// GET /kelas?page=&limit=
func (ctl *KelasController) ListAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	page, err := ctl.Repo.ListAll(c.UserContext(), p.Page, p.Limit)
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonOK(c, "", page)
}

// GET /gedung/:id/kelas?page=&limit=
func (ctl *KelasController) ListByGedung(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	page, err := ctl.Repo.ListByGedung(c.UserContext(), c.Params("id"), p.Page, p.Limit)
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonOK(c, "", page)
}

// GET /kelas/:gedungId/:lantai/:kelasId
func (ctl *KelasController) GetByID(c *fiber.Ctx) error {
	k, err := ctl.Repo.GetByID(c.UserContext(), c.Params("kelasId"), c.Params("gedungId"), c.Params("lantai"))
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	if k == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonOK(c, "", k)
}

// PUT /kelas/:gedungId/:lantai/:kelasId — gedung/lantai baru di body
// memicu move (delete+create dua path).
func (ctl *KelasController) Update(c *fiber.Ctx) error {
	var req dto.KelasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	kelasID := c.Params("kelasId")
	err := ctl.Repo.Update(c.UserContext(), kelasID, c.Params("gedungId"), c.Params("lantai"), req)
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonUpdated(c, "Kelas "+req.CodeKelas+" berhasil diupdate", fiber.Map{"id": kelasID})
}

// DELETE /kelas/:gedungId/:lantai/:kelasId — repository hanya
// menghapus record flat; referensi gedung dilepas eksplisit lewat
// relation manager di sini.
func (ctl *KelasController) Delete(c *fiber.Ctx) error {
	kelasID := c.Params("kelasId")
	gedungID := c.Params("gedungId")

	deleted, err := ctl.Repo.Delete(c.UserContext(), kelasID, gedungID, c.Params("lantai"))
	if err != nil {
		return helper.JsonRepoError(c, err)
	}

	if err := ctl.Relation.DetachReference(c.UserContext(), gedungID, kelasID); err != nil {
		// Record flat sudah hilang; referensi basi tinggal untuk audit.
		log.Printf("[KELAS] partial failure delete %s: referensi gedung %s gagal dilepas: %v",
			kelasID, gedungID, err)
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonDeleted(c, "Kelas "+deleted.CodeKelas+" berhasil dihapus", fiber.Map{"id": kelasID})
}

// GET /kampus/consistency — audit read-only untuk operator.
func (ctl *KelasController) Consistency(c *fiber.Ctx) error {
	report, err := ctl.Relation.ValidateConsistency(c.UserContext())
	if err != nil {
		return helper.JsonRepoError(c, err)
	}
	return helper.JsonOK(c, "", report)
}
