// file: internals/features/bankimage/controller/bank_image_controller.go
package controller

import (
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/features/bankimage/dto"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/helpers/oss"
)

// BankImageController: bank gambar berbasis provider (Aliyun OSS).
// Metadata (nama, deskripsi, tag) disimpan sebagai x-oss-meta-* pada object.
type BankImageController struct{}

func NewBankImageController() *BankImageController {
	return &BankImageController{}
}

const bankImagePrefix = "bank-image"

// 📤 POST /bank-image — upload file, konversi WebP, simpan metadata awal
func (ctl *BankImageController) Upload(c *fiber.Ctx) error {
	svc, err := oss.NewServiceFromEnv(bankImagePrefix)
	if err != nil {
		log.Printf("[BANK-IMAGE] OSS init gagal: %v", err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Layanan penyimpanan gambar tidak tersedia")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonValidationError(c, helper.SingleFieldError("file", "File gambar wajib diunggah").FieldErrors)
	}
	if fh.Size > oss.MaxUploadSize() {
		return helper.JsonValidationError(c, helper.SingleFieldError("file", "Ukuran file melebihi batas unggah").FieldErrors)
	}

	ctx := c.UserContext()
	key, publicURL, err := svc.UploadAsWebP(ctx, fh)
	if err != nil {
		log.Printf("[BANK-IMAGE] upload gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunggah gambar")
	}

	meta := map[string]string{}
	if name := strings.TrimSpace(c.FormValue("name")); name != "" {
		meta["name"] = name
	}
	if desc := strings.TrimSpace(c.FormValue("description")); desc != "" {
		meta["description"] = desc
	}
	if tags := strings.TrimSpace(c.FormValue("tags")); tags != "" {
		meta["tags"] = tags
	}
	if len(meta) > 0 {
		if err := svc.SetMeta(ctx, key, meta); err != nil {
			log.Printf("[BANK-IMAGE] set meta gagal untuk %s: %v", key, err)
		}
	}

	return helper.JsonCreated(c, "Gambar berhasil diunggah", fiber.Map{
		"id":  key,
		"url": publicURL,
	})
}

// 📄 GET /bank-image — daftar object + metadata
func (ctl *BankImageController) List(c *fiber.Ctx) error {
	svc, err := oss.NewServiceFromEnv(bankImagePrefix)
	if err != nil {
		log.Printf("[BANK-IMAGE] OSS init gagal: %v", err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Layanan penyimpanan gambar tidak tersedia")
	}

	max, _ := strconv.Atoi(c.Query("max", "100"))
	ctx := c.UserContext()

	objects, err := svc.ListObjects(ctx, max)
	if err != nil {
		log.Printf("[BANK-IMAGE] list gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca daftar gambar")
	}

	assets := make([]dto.AssetResponse, 0, len(objects))
	for _, obj := range objects {
		asset := dto.AssetResponse{
			ID:         obj.Key,
			URL:        obj.URL,
			Size:       obj.Size,
			UploadedAt: obj.LastModified.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
		if hdr, err := svc.GetMeta(ctx, obj.Key); err == nil {
			asset.Name = hdr.Get("x-oss-meta-name")
			asset.Description = hdr.Get("x-oss-meta-description")
			if raw := hdr.Get("x-oss-meta-tags"); raw != "" {
				asset.Tags = splitTags(raw)
			}
		}
		assets = append(assets, asset)
	}

	return helper.JsonOK(c, "OK", assets)
}

// ✏️ PATCH /bank-image/* — timpa metadata object
func (ctl *BankImageController) UpdateMeta(c *fiber.Ctx) error {
	svc, err := oss.NewServiceFromEnv(bankImagePrefix)
	if err != nil {
		log.Printf("[BANK-IMAGE] OSS init gagal: %v", err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Layanan penyimpanan gambar tidak tersedia")
	}

	key, err := wildcardKey(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Key gambar tidak valid")
	}

	var req dto.UpdateAssetMetaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	ctx := c.UserContext()
	exists, err := svc.Exists(ctx, key)
	if err != nil {
		log.Printf("[BANK-IMAGE] cek object gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa gambar")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusNotFound, "Image not found")
	}

	meta := map[string]string{
		"name":        strings.TrimSpace(req.Name),
		"description": strings.TrimSpace(req.Description),
		"tags":        strings.Join(req.Tags, ","),
	}
	if err := svc.SetMeta(ctx, key, meta); err != nil {
		log.Printf("[BANK-IMAGE] set meta gagal untuk %s: %v", key, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui metadata gambar")
	}

	return helper.JsonUpdated(c, "Metadata gambar berhasil diperbarui", fiber.Map{"id": key})
}

// 🗑️ DELETE /bank-image/* — hapus object
func (ctl *BankImageController) Delete(c *fiber.Ctx) error {
	svc, err := oss.NewServiceFromEnv(bankImagePrefix)
	if err != nil {
		log.Printf("[BANK-IMAGE] OSS init gagal: %v", err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Layanan penyimpanan gambar tidak tersedia")
	}

	key, err := wildcardKey(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Key gambar tidak valid")
	}

	ctx := c.UserContext()
	exists, err := svc.Exists(ctx, key)
	if err != nil {
		log.Printf("[BANK-IMAGE] cek object gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa gambar")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusNotFound, "Image not found")
	}

	if err := svc.DeleteObject(ctx, key); err != nil {
		log.Printf("[BANK-IMAGE] hapus gagal untuk %s: %v", key, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus gambar")
	}

	return helper.JsonDeleted(c, "Gambar berhasil dihapus", fiber.Map{"id": key})
}

// wildcardKey mengambil object key dari segment wildcard; key OSS
// mengandung slash sehingga route memakai `*`.
func wildcardKey(c *fiber.Ctx) (string, error) {
	raw := c.Params("*")
	if raw == "" {
		return "", fiber.ErrBadRequest
	}
	key, err := url.QueryUnescape(raw)
	if err != nil {
		return "", err
	}
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return "", fiber.ErrBadRequest
	}
	return key, nil
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
