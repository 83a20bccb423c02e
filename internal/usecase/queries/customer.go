package queries

import (
	"context"

	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCustomerNotFound = errs.New("customer not found")

type CustomerView struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"display_name"`
	CreditBalance int       `json:"credit_balance"`
}

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type customerQueriesImpl struct {
	customers shared.CustomerReads
}

func NewCustomerQueries(customers shared.CustomerReads) CustomerQueries {
	return &customerQueriesImpl{customers: customers}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	cust, err := q.customers.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return &CustomerView{
		ID:            cust.ID(),
		Email:         cust.Email(),
		DisplayName:   cust.DisplayName(),
		CreditBalance: cust.CreditBalance(),
	}, nil
}
