// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/databases/rtdb"
	authRoute "kampusku_backend/internals/features/auth/route"
	bankImageRoute "kampusku_backend/internals/features/bankimage/route"
	gedungRoute "kampusku_backend/internals/features/kampus/gedung/route"
	kelasRoute "kampusku_backend/internals/features/kampus/kelas/route"
	"kampusku_backend/internals/features/kampus/relation"
	helper "kampusku_backend/internals/helpers"
	middlewares "kampusku_backend/internals/middlewares"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, store rtdb.Store) {
	startTime = time.Now()

	BaseRoutes(app, store)

	validate := helper.NewValidator()
	rel := relation.NewManager(store)

	// ===================== GROUPS =====================

	// PUBLIC → baca terbuka
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")

	// ADMIN → mutasi butuh token operator; prefix terpisah supaya
	// middleware JWT tidak menimpa route publik.
	log.Println("[INFO] Setting up ADMIN group (JWT)...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	app.Use("/api/auth/login", middlewares.LoginRateLimiter())
	authRoute.AuthRoutes(public)

	// ===================== KAMPUS =====================
	log.Println("[INFO] Setting up GedungRoutes...")
	gedungRoute.GedungRoutes(public, admin, store, validate, rel)

	log.Println("[INFO] Setting up KelasRoutes...")
	kelasRoute.KelasRoutes(public, admin, store, validate, rel)

	// ===================== BANK IMAGE =====================
	log.Println("[INFO] Setting up BankImageRoutes...")
	bankImageRoute.BankImageRoutes(public, admin, store, validate)
}
