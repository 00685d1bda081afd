package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sol1corejz/invoicedash/internal/logger"
)

type CardsResponse struct {
	InvoiceCount      int64 `json:"invoice_count"`
	CustomerCount     int64 `json:"customer_count"`
	TotalPaidCents    int64 `json:"total_paid"`
	TotalPendingCents int64 `json:"total_pending"`
}

func (h *Handler) DashboardHandler(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	data, err := h.store.GetCardData(ctx)
	if err != nil {
		logger.Log.Error("Error getting card data", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(CardsResponse{
		InvoiceCount:      data.InvoiceCount,
		CustomerCount:     data.CustomerCount,
		TotalPaidCents:    data.TotalPaidCents,
		TotalPendingCents: data.TotalPendingCents,
	})
}

type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) GetCustomersHandler(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	customers, err := h.store.GetCustomers(ctx)
	if err != nil {
		logger.Log.Error("Error getting customers", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	response := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		response = append(response, CustomerResponse{
			ID:    customer.ID.String(),
			Name:  customer.Name,
			Email: customer.Email,
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
