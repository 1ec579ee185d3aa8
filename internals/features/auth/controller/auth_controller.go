// file: internals/features/auth/controller/auth_controller.go
package controller

import (
	"crypto/subtle"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"kampusku_backend/internals/configs"
	helper "kampusku_backend/internals/helpers"
)

// AuthController: login operator tunggal. Password dicocokkan dengan
// ADMIN_PASSWORD, token HS256 berumur 12 jam.
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

type loginRequest struct {
	Password string `json:"password"`
}

const tokenLifetime = 12 * time.Hour

// 🔑 POST /auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if configs.AdminPassword == "" || configs.JWTSecret == "" {
		log.Println("[AUTH] ADMIN_PASSWORD / JWT_SECRET belum diset")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Autentikasi belum dikonfigurasi")
	}

	supplied := strings.TrimSpace(req.Password)
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(configs.AdminPassword)) != 1 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password salah")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Println("[AUTH] Gagal menandatangani token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": signed,
		"token_type":   "Bearer",
		"expires_in":   int64(tokenLifetime.Seconds()),
	})
}
