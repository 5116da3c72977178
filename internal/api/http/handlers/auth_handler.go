package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/goods-service/internal/api/dto"
	"github.com/spec-kit/goods-service/internal/service"
	"github.com/spec-kit/goods-service/pkg/response"
)

// AuthHandler exposes the admin login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login. On success the token is carried in the
// Authorization response header and the body echoes the account identity.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	// An unparseable body leaves the fields empty and fails input
	// validation below.
	_ = c.BodyParser(&req)

	token, err := h.auth.Login(c.Context(), req.Account, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			return c.JSON(response.Fail(response.KindInvalidInput))
		case errors.Is(err, service.ErrAccountMissing):
			return c.JSON(response.FailMessage(response.KindInvalidAccountOrPassword, "user not found"))
		case errors.Is(err, service.ErrInvalidAccountOrPassword):
			return c.JSON(response.Fail(response.KindInvalidAccountOrPassword))
		default:
			return err
		}
	}

	c.Set(fiber.HeaderAuthorization, token)
	return c.JSON(response.OK(dto.LoginResponse{Account: req.Account, Name: req.Account}))
}
