package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sol1corejz/invoicedash/internal/auth"
	"github.com/sol1corejz/invoicedash/internal/logger"
)

const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWentWrong = "Something went wrong."
)

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (h *Handler) LoginHandler(c *fiber.Ctx) error {
	var request LoginRequest
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": MsgInvalidCredentials,
		})
	}

	user, err := auth.Authenticate(ctx, h.store, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": MsgInvalidCredentials,
			})
		}
		logger.Log.Error("Error authenticating user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": MsgSomethingWentWrong,
		})
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		logger.Log.Error("Error generating token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": MsgSomethingWentWrong,
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    token,
		Expires:  time.Now().Add(auth.TokenExp),
		HTTPOnly: true,
	})

	logger.Log.Info("User signed in", zap.String("userID", user.ID.String()))
	return c.Redirect(auth.ProtectedPrefix, fiber.StatusSeeOther)
}

func (h *Handler) LogoutHandler(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect(auth.LoginPath, fiber.StatusSeeOther)
}
