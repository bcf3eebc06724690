package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"cookbook/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /login. The distinct not-found and bad-password messages
// are part of the existing client contract.
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res, err := svc.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUserNotFound):
				return writeError(c, fiber.StatusUnauthorized, "USER_NOT_FOUND", "User not found")
			case errors.Is(err, service.ErrPasswordIncorrect):
				return writeError(c, fiber.StatusUnauthorized, "PASSWORD_INCORRECT", "Password Incorrect")
			default:
				return writeError(c, fiber.StatusUnauthorized, "LOGIN_FAILED", "Something went wrong")
			}
		}

		return c.JSON(fiber.Map{
			"message":   "Login Success",
			"token":     res.Token,
			"loginuser": res.User,
		})
	}
}

// Register handles POST /register. Arbitrary fields pass through; only the
// password is replaced with its hash before storage.
func Register(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var doc bson.M
		if err := c.BodyParser(&doc); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if err := svc.Register(c.UserContext(), doc); err != nil {
			switch {
			case errors.Is(err, service.ErrPasswordRequired):
				return writeError(c, fiber.StatusBadRequest, "PASSWORD_REQUIRED", "password is required")
			case errors.Is(err, service.ErrEmailTaken):
				return writeError(c, fiber.StatusConflict, "EMAIL_TAKEN", "email is already registered")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "User Not Registered")
			}
		}

		// Success message preserved verbatim for existing clients, typo included.
		return c.JSON(fiber.Map{"message": "User Registered Scccessfully"})
	}
}
