package handlers

import (
	"errors"

	"nordhem/internal/domain"
	applog "nordhem/internal/log"
	"nordhem/internal/services"
	"nordhem/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type registerBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID      int    `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

func payloadOf(u *domain.User) userPayload {
	return userPayload{ID: u.ID, Email: u.Email, IsAdmin: u.IsAdmin}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body registerBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []validate.FieldError{{Field: "body", Message: "Malformed request body"}},
		})
	}
	email, errs := validate.Register(body.Name, body.Email, body.Password)
	if len(errs) > 0 {
		applog.Security(c, "auth.register.invalid", map[string]any{"fields": len(errs)})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	u, tok, err := h.Auth.Register(body.Name, email, body.Password)
	if errors.Is(err, services.ErrEmailTaken) {
		applog.Security(c, "auth.register.conflict", map[string]any{"email": email})
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "User already exists"})
	}
	if err != nil {
		applog.Error(c, "auth.register.fail", err, nil)
		return fiber.ErrInternalServerError
	}

	applog.Audit(c, "auth.register.success", map[string]any{"user": u.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": tok, "user": payloadOf(u)})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginBody
	if err := c.BodyParser(&body); err != nil {
		return unauthorized(c)
	}
	email, ok := validate.Login(body.Email, body.Password)
	if !ok {
		// Same signal as a wrong password: never disclose which part failed.
		applog.Security(c, "auth.login.invalid", nil)
		return unauthorized(c)
	}

	u, tok, err := h.Auth.Login(email, body.Password)
	if errors.Is(err, services.ErrBadCreds) {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return unauthorized(c)
	}
	if err != nil {
		applog.Error(c, "auth.login.error", err, nil)
		return fiber.ErrInternalServerError
	}

	applog.Audit(c, "auth.login.success", map[string]any{"user": u.ID})
	return c.JSON(fiber.Map{"token": tok, "user": payloadOf(u)})
}

// Me echoes the identity carried by the verified bearer token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, ok := c.Locals("user").(*domain.User)
	if !ok {
		return unauthorized(c)
	}
	return c.JSON(fiber.Map{"user": payloadOf(u)})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
}
