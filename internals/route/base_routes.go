package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/databases/rtdb"
)

func BaseRoutes(app *fiber.App, store rtdb.Store) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Kampusku backend connected successfully 🚀")
	})

	app.Get("/panic-test", func(c *fiber.Ctx) error {
		panic("Simulasi panic error!") // testing panic handler
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		storeStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if _, err := store.Get(c.UserContext(), "gedung"); err != nil {
			storeStatus = "Store connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"store":          storeStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
