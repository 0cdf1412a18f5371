package service

import (
	"context"
	"strings"

	"github.com/Killercavin/HealthInfoSystem/internal/his/domain"
	"github.com/Killercavin/HealthInfoSystem/internal/his/store"
	"github.com/Killercavin/HealthInfoSystem/pkg/slogx"
)

type ProgramService struct {
	Store store.Store
}

// ListPrograms returns every program ordered by id.
func (s *ProgramService) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	var programs []domain.Program
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		programs, err = tx.Programs().ListPrograms(ctx)
		return err
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list programs", "error", err)
		return nil, err
	}
	return programs, nil
}

// CreateProgram stores a new program and returns its id. Name and description
// are trimmed; a blank description is stored as NULL.
func (s *ProgramService) CreateProgram(ctx context.Context, name string, description *string) (int64, error) {
	l := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrInvalidProgram
	}

	p := domain.Program{Name: name}
	if description != nil {
		if d := strings.TrimSpace(*description); d != "" {
			p.Description = &d
		}
	}

	var id int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		id, err = tx.Programs().CreateProgram(ctx, p)
		return err
	})
	if err != nil {
		l.Error("failed to create program", "error", err)
		return 0, err
	}

	l.Info("program created", "program_id", id, "name", name)
	return id, nil
}
