package serverutils

import (
	"evalassist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionAuthMiddleware validates the Bearer session token and stores the
// session id in Locals("session_id") for the handlers downstream.
func SessionAuthMiddleware(auth service.IAuthService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}
		tokenStr := authHeader[7:]

		sessionID, err := auth.ParseSessionToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		ctx.Locals("session_id", sessionID)
		return ctx.Next()
	}
}
