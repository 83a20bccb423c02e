package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email")
	ErrEmptyName    = errors.New("display name cannot be empty")
)

type Customer struct {
	id            uuid.UUID
	email         string
	displayName   string
	creditBalance int
	createdAt     time.Time
}

func New(email, displayName string, now time.Time) (*Customer, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrEmptyName
	}
	return &Customer{
		id:          uuid.New(),
		email:       email,
		displayName: displayName,
		createdAt:   now,
	}, nil
}

func Reconstruct(id uuid.UUID, email, displayName string, creditBalance int, createdAt time.Time) *Customer {
	return &Customer{
		id:            id,
		email:         email,
		displayName:   displayName,
		creditBalance: creditBalance,
		createdAt:     createdAt,
	}
}

func (c *Customer) HasCredit() bool { return c.creditBalance > 0 }

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) DisplayName() string  { return c.displayName }
func (c *Customer) CreditBalance() int   { return c.creditBalance }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
