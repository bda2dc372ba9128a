package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ikrashahmed/taazamart/internal/services"
)

type signupInput struct {
	Email    string `json:"email" form:"email"`
	Name     string `json:"name" form:"name"`
	Password string `json:"password" form:"password"`
}

type loginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (handler *Handler) Signup(c *fiber.Ctx) error {
	input := signupInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.auth.Signup(input.Email, input.Name, input.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := handler.setSessionCookie(c, user.Email); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.auth.Login(input.Email, input.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := handler.setSessionCookie(c, user.Email); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"user": user})
}

// Logout revokes the cookie and succeeds whether or not a session existed.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearSessionCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// Me reports the current identity. An absent or stale session is not an
// error: the response carries a null user, and a cookie pointing at a
// deleted account is revoked on the way out.
func (handler *Handler) Me(c *fiber.Ctx) error {
	email, err := handler.sessionEmail(c)
	if err != nil {
		return c.JSON(fiber.Map{"user": nil})
	}

	user, err := handler.auth.ResolveUser(email)
	if err != nil {
		var notFoundErr *services.NotFoundError
		if errors.As(err, &notFoundErr) {
			handler.clearSessionCookie(c)
			return c.JSON(fiber.Map{"user": nil})
		}
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	email, ok := sessionEmailFromContext(c)
	if !ok {
		return respondServiceError(c, &services.UnauthenticatedError{})
	}

	update := services.ProfileUpdate{}
	if err := c.BodyParser(&update); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.auth.UpdateProfile(email, update); err != nil {
		return respondServiceError(c, err)
	}

	user, err := handler.auth.ResolveUser(email)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}
