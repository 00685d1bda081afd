package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v4/stdlib"
	"go.uber.org/zap"

	"github.com/sol1corejz/invoicedash/cmd/config"
	"github.com/sol1corejz/invoicedash/internal/logger"
	"github.com/sol1corejz/invoicedash/internal/models"
)

const InvoicesPerPage = 6

var (
	ErrConnectionFailed    = errors.New("db connection failed")
	ErrCreatingTableFailed = errors.New("creating table failed")
	ErrNotFound            = errors.New("not found")
)

type Store struct {
	db *sql.DB
}

// New wraps an existing connection, used by tests to inject a mock.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func Open() (*Store, error) {
	if config.DatabaseURI == "" {
		return nil, ErrConnectionFailed
	}

	db, err := sql.Open("pgx", config.DatabaseURI)
	if err != nil {
		logger.Log.Error("Error opening database connection", zap.Error(err))
		return nil, ErrConnectionFailed
	}

	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY NOT NULL,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS customers (
			id UUID PRIMARY KEY NOT NULL,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS invoices (
			id UUID PRIMARY KEY NOT NULL,
			customer_id UUID NOT NULL REFERENCES customers(id),
			amount BIGINT NOT NULL,
			status VARCHAR(20) NOT NULL,
			date DATE NOT NULL
		);`,
	}

	for _, table := range tables {
		if _, err := db.Exec(table); err != nil {
			logger.Log.Error("Error creating table", zap.Error(err))
			return nil, ErrCreatingTableFailed
		}
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// GetUserByEmail returns the zero-value user when no row matches; only
// infrastructure faults come back as errors.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {

	var user models.User

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password FROM users WHERE email = $1;
	`, email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash)

	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return models.User{}, err
		}
	}

	return user, nil
}

func (s *Store) CreateInvoice(ctx context.Context, customerID string, amountCents int64, status models.InvoiceStatus, date string) error {

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO invoices (id, customer_id, amount, status, date) VALUES ($1, $2, $3, $4, $5);
	`, uuid.New(), customerID, amountCents, status, date)

	if err != nil {
		logger.Log.Error("Error creating invoice", zap.Error(err))
		return err
	}

	return nil
}

func (s *Store) UpdateInvoice(ctx context.Context, id string, customerID string, amountCents int64, status models.InvoiceStatus) error {

	res, err := s.db.ExecContext(ctx, `
		UPDATE invoices SET customer_id = $1, amount = $2, status = $3 WHERE id = $4;
	`, customerID, amountCents, status, id)

	if err != nil {
		logger.Log.Error("Error updating invoice", zap.Error(err))
		return err
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id string) error {

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM invoices WHERE id = $1;
	`, id)

	if err != nil {
		logger.Log.Error("Error deleting invoice", zap.Error(err))
		return err
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Store) GetInvoiceByID(ctx context.Context, id string) (models.Invoice, error) {

	var invoice models.Invoice

	err := s.db.QueryRowContext(ctx, `
		SELECT id, customer_id, amount, status, date FROM invoices WHERE id = $1;
	`, id).Scan(&invoice.ID, &invoice.CustomerID, &invoice.AmountCents, &invoice.Status, &invoice.Date)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Invoice{}, ErrNotFound
		}
		return models.Invoice{}, err
	}

	return invoice, nil
}

// GetFilteredInvoices lists one page of the invoice table view. The search term
// matches the joined customer name and email as well as the invoice amount,
// date and status rendered as text.
func (s *Store) GetFilteredInvoices(ctx context.Context, query string, page int) ([]models.InvoiceRow, error) {

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * InvoicesPerPage

	rows, err := s.db.QueryContext(ctx, `
		SELECT
			invoices.id,
			invoices.customer_id,
			customers.name,
			customers.email,
			invoices.amount,
			invoices.status,
			invoices.date
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE
			customers.name ILIKE $1 OR
			customers.email ILIKE $1 OR
			invoices.amount::text ILIKE $1 OR
			invoices.date::text ILIKE $1 OR
			invoices.status ILIKE $1
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3;
	`, "%"+query+"%", InvoicesPerPage, offset)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var invoices []models.InvoiceRow
	for rows.Next() {
		var row models.InvoiceRow
		err = rows.Scan(&row.ID, &row.CustomerID, &row.CustomerName, &row.CustomerEmail, &row.AmountCents, &row.Status, &row.Date)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}

// CountInvoicePages returns the number of list pages for a search term.
func (s *Store) CountInvoicePages(ctx context.Context, query string) (int, error) {

	var count int

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE
			customers.name ILIKE $1 OR
			customers.email ILIKE $1 OR
			invoices.amount::text ILIKE $1 OR
			invoices.date::text ILIKE $1 OR
			invoices.status ILIKE $1;
	`, "%"+query+"%").Scan(&count)

	if err != nil {
		return 0, err
	}

	pages := (count + InvoicesPerPage - 1) / InvoicesPerPage
	return pages, nil
}

func (s *Store) GetCustomers(ctx context.Context) ([]models.Customer, error) {

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email FROM customers ORDER BY name;
	`)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var customer models.Customer
		err = rows.Scan(&customer.ID, &customer.Name, &customer.Email)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func (s *Store) GetCardData(ctx context.Context) (models.CardData, error) {

	var data models.CardData

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM invoices;
	`).Scan(&data.InvoiceCount)
	if err != nil {
		return models.CardData{}, err
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM customers;
	`).Scan(&data.CustomerCount)
	if err != nil {
		return models.CardData{}, err
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)
		FROM invoices;
	`).Scan(&data.TotalPaidCents, &data.TotalPendingCents)
	if err != nil {
		return models.CardData{}, err
	}

	return data, nil
}

// CurrentDate is the system-assigned issue date for new invoices, the UTC
// calendar date in ISO form.
func CurrentDate() string {
	return time.Now().UTC().Format("2006-01-02")
}
