package repository

import (
	"context"
	"time"

	"studio-booking/internal/domain/customer"

	"github.com/google/uuid"
)

type CustomerRepository struct {
	db DBTX
}

func NewCustomerRepository(db DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, display_name, credit_balance, created_at
		FROM customers
		WHERE id = $1`,
		id,
	)
	var (
		cid           uuid.UUID
		email, name   string
		creditBalance int
		createdAt     time.Time
	)
	if err := row.Scan(&cid, &email, &name, &creditBalance, &createdAt); err != nil {
		return nil, wrapPgErr("failed to find customer", err)
	}
	return customer.Reconstruct(cid, email, name, creditBalance, createdAt), nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, string, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, display_name, credit_balance, created_at, password_hash
		FROM customers
		WHERE email = $1`,
		email,
	)
	var (
		cid           uuid.UUID
		storedEmail   string
		name          string
		creditBalance int
		createdAt     time.Time
		passwordHash  string
	)
	if err := row.Scan(&cid, &storedEmail, &name, &creditBalance, &createdAt, &passwordHash); err != nil {
		return nil, "", wrapPgErr("failed to find customer by email", err)
	}
	return customer.Reconstruct(cid, storedEmail, name, creditBalance, createdAt), passwordHash, nil
}

// ConsumeCredit decrements atomically; the balance check rides in the WHERE
// clause so concurrent confirmations cannot drive it negative.
func (r *CustomerRepository) ConsumeCredit(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE customers
		SET credit_balance = credit_balance - 1
		WHERE id = $1 AND credit_balance > 0`,
		id,
	)
	if err != nil {
		return false, wrapPgErr("failed to consume credit", err)
	}
	return tag.RowsAffected() > 0, nil
}
