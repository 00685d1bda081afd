package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol1corejz/invoicedash/internal/models"
)

func invoiceValues(customerID, amount, status string) *Values {
	values := NewValues()
	values.Set("customerId", customerID)
	values.Set("amount", amount)
	values.Set("status", status)
	return values
}

func TestParseInvoiceValid(t *testing.T) {
	fields, fieldErrors := ParseInvoice(invoiceValues("c1", "15.50", "pending"))

	require.Nil(t, fieldErrors)
	assert.Equal(t, "c1", fields.CustomerID)
	assert.Equal(t, int64(1550), fields.AmountCents)
	assert.Equal(t, models.StatusPending, fields.Status)
}

func TestParseInvoiceWholeAmount(t *testing.T) {
	fields, fieldErrors := ParseInvoice(invoiceValues("c1", "20", "paid"))

	require.Nil(t, fieldErrors)
	assert.Equal(t, int64(2000), fields.AmountCents)
	assert.Equal(t, models.StatusPaid, fields.Status)
}

func TestParseInvoiceAmountErrors(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{name: "zero", amount: "0"},
		{name: "negative", amount: "-3"},
		{name: "non numeric", amount: "abc"},
		{name: "empty", amount: ""},
		{name: "nan", amount: "NaN"},
		{name: "inf", amount: "Inf"},
		{name: "plus inf", amount: "+Inf"},
		{name: "negative inf", amount: "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, fieldErrors := ParseInvoice(invoiceValues("c1", tt.amount, "pending"))

			require.NotNil(t, fieldErrors)
			assert.Equal(t, []string{MsgInvalidAmount}, fieldErrors["amount"])
			assert.Zero(t, fields)
		})
	}
}

func TestParseInvoiceStatusErrors(t *testing.T) {
	for _, status := range []string{"", "draft", "PAID", "cancelled"} {
		_, fieldErrors := ParseInvoice(invoiceValues("c1", "10", status))

		require.NotNil(t, fieldErrors)
		assert.Equal(t, []string{MsgSelectStatus}, fieldErrors["status"])
	}
}

func TestParseInvoiceMissingCustomer(t *testing.T) {
	_, fieldErrors := ParseInvoice(invoiceValues("", "10", "paid"))

	require.NotNil(t, fieldErrors)
	assert.Equal(t, []string{MsgSelectCustomer}, fieldErrors["customerId"])
}

func TestParseInvoiceCollectsAllErrors(t *testing.T) {
	_, fieldErrors := ParseInvoice(invoiceValues("", "nope", "draft"))

	require.NotNil(t, fieldErrors)
	assert.Len(t, fieldErrors, 3)
	assert.Contains(t, fieldErrors, "customerId")
	assert.Contains(t, fieldErrors, "amount")
	assert.Contains(t, fieldErrors, "status")
}

func TestValuesKeepInsertionOrder(t *testing.T) {
	values := NewValues()
	values.Set("customerId", "c1")
	values.Set("amount", "10")
	values.Set("status", "paid")
	values.Set("amount", "12")

	assert.Equal(t, []string{"customerId", "amount", "status"}, values.Keys())
	assert.Equal(t, "12", values.Get("amount"))
	assert.True(t, values.Has("status"))
	assert.False(t, values.Has("date"))
}
