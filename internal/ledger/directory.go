package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/openpos/posledger/internal/domain"
)

// Directory owns customer records. Deleting a customer never touches the
// sale ledger; historical sales keep the id and readers substitute a
// placeholder name.
type Directory struct {
	customers CustomerRepository
	ids       *snowflake.Node
	bus       Bus
}

func NewDirectory(customers CustomerRepository, ids *snowflake.Node, bus Bus) *Directory {
	return &Directory{customers: customers, ids: ids, bus: bus}
}

// CustomerInput carries the fields of a directory insert.
type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// CustomerUpdate carries a partial edit; nil fields are left unchanged.
type CustomerUpdate struct {
	Name  *string
	Email *string
	Phone *string
}

func (s *Directory) Create(ctx context.Context, in CustomerInput) (*domain.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &InvalidInputError{Field: "name", Reason: "must not be empty"}
	}

	now := time.Now()
	c := &domain.Customer{
		ID:        s.ids.Generate().Int64(),
		Name:      name,
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}

	publishAudit(s.bus, "customer.create", fmt.Sprintf("customer:%d", c.ID),
		fmt.Sprintf("created %q", c.Name))
	return c, nil
}

func (s *Directory) Update(ctx context.Context, id int64, up CustomerUpdate) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if up.Name != nil {
		name := strings.TrimSpace(*up.Name)
		if name == "" {
			return nil, &InvalidInputError{Field: "name", Reason: "must not be empty"}
		}
		c.Name = name
	}
	if up.Email != nil {
		c.Email = strings.TrimSpace(*up.Email)
	}
	if up.Phone != nil {
		c.Phone = strings.TrimSpace(*up.Phone)
	}
	c.UpdatedAt = time.Now()

	if err := s.customers.Save(ctx, c); err != nil {
		return nil, err
	}

	publishAudit(s.bus, "customer.update", fmt.Sprintf("customer:%d", c.ID),
		fmt.Sprintf("updated %q", c.Name))
	return c, nil
}

func (s *Directory) Delete(ctx context.Context, id int64) error {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}

	publishAudit(s.bus, "customer.delete", fmt.Sprintf("customer:%d", id),
		fmt.Sprintf("deleted %q", c.Name))
	return nil
}

func (s *Directory) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

func (s *Directory) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}
