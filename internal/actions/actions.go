// Package actions implements the invoice mutation pipeline:
// validate, persist, invalidate the cached list view, redirect.
package actions

import (
	"context"

	"go.uber.org/zap"

	"github.com/sol1corejz/invoicedash/internal/forms"
	"github.com/sol1corejz/invoicedash/internal/logger"
	"github.com/sol1corejz/invoicedash/internal/models"
	"github.com/sol1corejz/invoicedash/internal/storage"
)

const (
	MsgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	MsgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	MsgCreateDBError       = "Database Error: Failed to Create Invoice"
	MsgUpdateDBError       = "Database Error: Failed to Update Invoice"
	MsgDeleteDBError       = "Database Error: Failed to Delete Invoice."
	MsgDeleted             = "Deleted Invoice."

	InvoiceListPath = "/dashboard/invoices"
)

// State is what a mutation reports back to the form: field errors on
// validation failure, a bare message on store failure, a redirect target on
// success. A store failure never carries field errors, so the two are
// distinguishable.
type State struct {
	Errors     forms.FieldErrors `json:"errors,omitempty"`
	Message    string            `json:"message,omitempty"`
	RedirectTo string            `json:"-"`
	Ok         bool              `json:"-"`
}

type InvoiceStore interface {
	CreateInvoice(ctx context.Context, customerID string, amountCents int64, status models.InvoiceStatus, date string) error
	UpdateInvoice(ctx context.Context, id string, customerID string, amountCents int64, status models.InvoiceStatus) error
	DeleteInvoice(ctx context.Context, id string) error
}

type ListInvalidator interface {
	InvalidateInvoices(ctx context.Context) error
}

type Actions struct {
	store InvoiceStore
	cache ListInvalidator
}

func New(store InvoiceStore, cache ListInvalidator) *Actions {
	return &Actions{store: store, cache: cache}
}

func (a *Actions) CreateInvoice(ctx context.Context, values *forms.Values) State {
	fields, fieldErrors := forms.ParseInvoice(values)
	if fieldErrors != nil {
		return State{Errors: fieldErrors, Message: MsgCreateMissingFields}
	}

	date := storage.CurrentDate()

	if err := a.store.CreateInvoice(ctx, fields.CustomerID, fields.AmountCents, fields.Status, date); err != nil {
		logger.Log.Error("Error creating invoice", zap.Error(err))
		return State{Message: MsgCreateDBError}
	}

	a.invalidateList(ctx)
	return State{Ok: true, RedirectTo: InvoiceListPath}
}

func (a *Actions) UpdateInvoice(ctx context.Context, id string, values *forms.Values) State {
	fields, fieldErrors := forms.ParseInvoice(values)
	if fieldErrors != nil {
		return State{Errors: fieldErrors, Message: MsgUpdateMissingFields}
	}

	if err := a.store.UpdateInvoice(ctx, id, fields.CustomerID, fields.AmountCents, fields.Status); err != nil {
		logger.Log.Error("Error updating invoice", zap.Error(err))
		return State{Message: MsgUpdateDBError}
	}

	a.invalidateList(ctx)
	return State{Ok: true, RedirectTo: InvoiceListPath}
}

// DeleteInvoice never redirects: it is invoked inline from a list row, not
// from a full-page form navigation.
func (a *Actions) DeleteInvoice(ctx context.Context, id string) State {
	if err := a.store.DeleteInvoice(ctx, id); err != nil {
		logger.Log.Error("Error deleting invoice", zap.Error(err))
		return State{Message: MsgDeleteDBError}
	}

	a.invalidateList(ctx)
	return State{Ok: true, Message: MsgDeleted}
}

// invalidateList runs before any redirect so the destination view is fresh.
// Failures are logged and swallowed: a stale page expires on its own TTL.
func (a *Actions) invalidateList(ctx context.Context) {
	if err := a.cache.InvalidateInvoices(ctx); err != nil {
		logger.Log.Warn("Error invalidating invoice list cache", zap.Error(err))
	}
}
