package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/Killercavin/HealthInfoSystem/internal/his/domain"
	"github.com/Killercavin/HealthInfoSystem/internal/his/store"
	"github.com/Killercavin/HealthInfoSystem/pkg/slogx"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// IsValidEmail reports whether email has the basic local@domain shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

type ClientService struct {
	Store store.Store
}

// ListClients returns the clients matching f ordered by id. An empty filter
// returns every client.
func (s *ClientService) ListClients(ctx context.Context, f domain.ClientFilter) ([]domain.Client, error) {
	var clients []domain.Client
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		clients, err = tx.Clients().ListClients(ctx, f)
		return err
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list clients", "error", err)
		return nil, err
	}
	return clients, nil
}

// GetClientProfile returns the client with the programs they are enrolled in.
// Returns ErrClientNotFound if no client has the given id.
func (s *ClientService) GetClientProfile(ctx context.Context, id int64) (domain.ClientProfile, error) {
	var profile domain.ClientProfile
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := tx.Clients().GetClientByID(ctx, id)
		if err != nil {
			return err
		}

		programs, err := tx.Enrollments().ListProgramsForClient(ctx, id)
		if err != nil {
			return err
		}

		profile = domain.ClientProfile{Client: c, Programs: programs}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.ClientProfile{}, ErrClientNotFound
	case err != nil:
		slogx.FromContext(ctx).Error("failed to load client profile", "client_id", id, "error", err)
		return domain.ClientProfile{}, err
	}
	return profile, nil
}

// CreateClient validates and stores a new client. Returns ErrInvalidClient
// when a field is blank or the email is malformed, and ErrDuplicateEmail when
// the email is already registered.
func (s *ClientService) CreateClient(ctx context.Context, firstName, lastName, email string) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	c := domain.Client{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.TrimSpace(email),
	}
	if c.FirstName == "" || c.LastName == "" || c.Email == "" || !IsValidEmail(c.Email) {
		return domain.Client{}, ErrInvalidClient
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		id, err := tx.Clients().CreateClient(ctx, c)
		if err != nil {
			return err
		}

		c, err = tx.Clients().GetClientByID(ctx, id)
		return err
	})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		l.Warn("duplicate client email", "email", c.Email)
		return domain.Client{}, ErrDuplicateEmail
	case err != nil:
		l.Error("failed to create client", "error", err)
		return domain.Client{}, err
	}

	l.Info("client created", "client_id", c.ID)
	return c, nil
}
