package handlers

import "github.com/gofiber/fiber/v2"

// Every non-list response in this API is a {"msg": ...} object.
func msg(c *fiber.Ctx, status int, text string) error {
	return c.Status(status).JSON(fiber.Map{"msg": text})
}
