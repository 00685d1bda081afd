package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sol1corejz/invoicedash/internal/actions"
	"github.com/sol1corejz/invoicedash/internal/cache"
	"github.com/sol1corejz/invoicedash/internal/forms"
	"github.com/sol1corejz/invoicedash/internal/logger"
	"github.com/sol1corejz/invoicedash/internal/storage"
)

var invoiceFormFields = []string{"customerId", "amount", "status"}

func formValues(c *fiber.Ctx) *forms.Values {
	values := forms.NewValues()
	for _, field := range invoiceFormFields {
		values.Set(field, c.FormValue(field))
	}
	return values
}

type InvoiceResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	Date          string `json:"date"`
}

type InvoiceListResponse struct {
	Invoices   []InvoiceResponse `json:"invoices"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	Query      string            `json:"query"`
}

func (h *Handler) ListInvoicesHandler(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	query := c.Query("query")
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	key := cache.ListKey(query, page)
	if cached, err := h.cache.Get(ctx, key); err != nil {
		logger.Log.Warn("Error reading invoice list cache", zap.Error(err))
	} else if cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	invoices, err := h.store.GetFilteredInvoices(ctx, query, page)
	if err != nil {
		logger.Log.Error("Error getting invoices", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	totalPages, err := h.store.CountInvoicePages(ctx, query)
	if err != nil {
		logger.Log.Error("Error counting invoice pages", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	response := InvoiceListResponse{
		Invoices:   make([]InvoiceResponse, 0, len(invoices)),
		Page:       page,
		TotalPages: totalPages,
		Query:      query,
	}
	for _, invoice := range invoices {
		response.Invoices = append(response.Invoices, InvoiceResponse{
			ID:            invoice.ID.String(),
			CustomerID:    invoice.CustomerID.String(),
			CustomerName:  invoice.CustomerName,
			CustomerEmail: invoice.CustomerEmail,
			Amount:        invoice.AmountCents,
			Status:        string(invoice.Status),
			Date:          invoice.Date.Format("2006-01-02"),
		})
	}

	payload, err := json.Marshal(response)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	if err := h.cache.Set(ctx, key, string(payload)); err != nil {
		logger.Log.Warn("Error writing invoice list cache", zap.Error(err))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}

// InvoiceDetailResponse backs the edit form, which selects the customer by id
// and has no use for the joined customer columns.
type InvoiceDetailResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}

func (h *Handler) GetInvoiceHandler(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	invoice, err := h.store.GetInvoiceByID(ctx, c.Params("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Invoice not found.",
			})
		}
		logger.Log.Error("Error getting invoice", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(InvoiceDetailResponse{
		ID:         invoice.ID.String(),
		CustomerID: invoice.CustomerID.String(),
		Amount:     invoice.AmountCents,
		Status:     string(invoice.Status),
		Date:       invoice.Date.Format("2006-01-02"),
	})
}

func (h *Handler) CreateInvoiceHandler(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	state := h.actions.CreateInvoice(ctx, formValues(c))
	return respondMutation(c, state)
}

func (h *Handler) UpdateInvoiceHandler(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	state := h.actions.UpdateInvoice(ctx, c.Params("id"), formValues(c))
	return respondMutation(c, state)
}

func (h *Handler) DeleteInvoiceHandler(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	state := h.actions.DeleteInvoice(ctx, c.Params("id"))
	if !state.Ok {
		return c.Status(fiber.StatusInternalServerError).JSON(state)
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

// respondMutation turns a create/update result into an HTTP response:
// redirect on success, field errors back to the form otherwise.
func respondMutation(c *fiber.Ctx, state actions.State) error {
	if state.Ok {
		return c.Redirect(state.RedirectTo, fiber.StatusSeeOther)
	}

	if state.Errors != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(state)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(state)
}
