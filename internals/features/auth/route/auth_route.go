// file: internals/features/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/features/auth/controller"
)

func AuthRoutes(public fiber.Router) {
	ctl := controller.NewAuthController()
	public.Post("/auth/login", ctl.Login) // 🔑 Login operator
}
