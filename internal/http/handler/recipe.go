package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"cookbook/internal/service"
)

// CreateRecipe handles POST /create. The body is an open-ended JSON document;
// only the image field receives special treatment (defaulted downstream).
func CreateRecipe(svc service.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var doc bson.M
		if err := c.BodyParser(&doc); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if err := svc.Create(c.UserContext(), doc); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		}
		return c.JSON(fiber.Map{"message": "Recipe Posted"})
	}
}

// Menu handles GET /menu: every recipe document, unfiltered.
func Menu(svc service.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recipes, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		}
		return c.JSON(recipes)
	}
}
