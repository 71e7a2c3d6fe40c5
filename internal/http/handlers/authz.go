package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"

	applog "storekeeper/internal/log"
	"storekeeper/internal/services"
)

// RequireAuth guards a mutating route with HTTP Basic credentials. The check
// runs before the handler, so an unauthenticated request never reaches
// business logic.
func RequireAuth(auth *services.AuthService) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm:      "storekeeper",
		Authorizer: auth.Verify,
		Unauthorized: func(c *fiber.Ctx) error {
			applog.Security(c, "auth.basic.fail", nil)
			return msg(c, fiber.StatusUnauthorized, "Unauthorized.")
		},
	})
}
