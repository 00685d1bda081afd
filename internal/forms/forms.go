// Package forms validates raw form input before it reaches a mutation
// handler. It never touches the request object or the store, so handlers can
// be tested without an HTTP layer.
package forms

import (
	"math"
	"strconv"
	"strings"

	"github.com/sol1corejz/invoicedash/internal/models"
)

// Values is an ordered field name → raw string mapping, filled from a form
// submission by the HTTP layer.
type Values struct {
	keys   []string
	fields map[string]string
}

func NewValues() *Values {
	return &Values{fields: make(map[string]string)}
}

func (v *Values) Set(key, value string) {
	if _, ok := v.fields[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.fields[key] = value
}

func (v *Values) Get(key string) string {
	return v.fields[key]
}

func (v *Values) Has(key string) bool {
	_, ok := v.fields[key]
	return ok
}

func (v *Values) Keys() []string {
	return v.keys
}

const (
	MsgSelectCustomer = "Please select a customer."
	MsgInvalidAmount  = "Please enter an amount greater than 0."
	MsgSelectStatus   = "Please select an invoice status."
)

// FieldErrors maps a field name to its validation messages, in check order.
type FieldErrors map[string][]string

// InvoiceFields is the typed, normalized result of a successful parse. The
// amount is already converted to minor currency units.
type InvoiceFields struct {
	CustomerID  string
	AmountCents int64
	Status      models.InvoiceStatus
}

// ParseInvoice checks the create/update form fields. It returns either the
// typed fields or a non-empty error map, never both. The id and date fields
// are system-assigned and never read from input.
func ParseInvoice(values *Values) (InvoiceFields, FieldErrors) {
	fieldErrors := make(FieldErrors)

	customerID := strings.TrimSpace(values.Get("customerId"))
	if customerID == "" {
		fieldErrors["customerId"] = append(fieldErrors["customerId"], MsgSelectCustomer)
	}

	// ParseFloat admits "NaN" and "Inf", which slip past a <= 0 test.
	var amountCents int64
	amount, err := strconv.ParseFloat(strings.TrimSpace(values.Get("amount")), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		fieldErrors["amount"] = append(fieldErrors["amount"], MsgInvalidAmount)
	} else {
		amountCents = int64(math.Round(amount * 100))
	}

	status := models.InvoiceStatus(values.Get("status"))
	if !status.Valid() {
		fieldErrors["status"] = append(fieldErrors["status"], MsgSelectStatus)
	}

	if len(fieldErrors) > 0 {
		return InvoiceFields{}, fieldErrors
	}

	return InvoiceFields{
		CustomerID:  customerID,
		AmountCents: amountCents,
		Status:      status,
	}, nil
}
