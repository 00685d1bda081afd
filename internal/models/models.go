package models

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

func (s InvoiceStatus) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

type User struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
}

type Customer struct {
	ID    uuid.UUID `db:"id"`
	Name  string    `db:"name"`
	Email string    `db:"email"`
}

// Invoice amounts are stored in minor currency units (cents).
type Invoice struct {
	ID          uuid.UUID     `db:"id"`
	CustomerID  uuid.UUID     `db:"customer_id"`
	AmountCents int64         `db:"amount"`
	Status      InvoiceStatus `db:"status"`
	Date        time.Time     `db:"date"`
}

// InvoiceRow is an invoice joined with its customer, as listed in the table view.
type InvoiceRow struct {
	ID            uuid.UUID     `db:"id"`
	CustomerID    uuid.UUID     `db:"customer_id"`
	CustomerName  string        `db:"name"`
	CustomerEmail string        `db:"email"`
	AmountCents   int64         `db:"amount"`
	Status        InvoiceStatus `db:"status"`
	Date          time.Time     `db:"date"`
}

// CardData backs the dashboard summary cards.
type CardData struct {
	InvoiceCount      int64
	CustomerCount     int64
	TotalPaidCents    int64
	TotalPendingCents int64
}
