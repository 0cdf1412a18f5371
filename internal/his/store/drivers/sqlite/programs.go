package sqlite

import (
	"context"
	"database/sql"

	"github.com/Killercavin/HealthInfoSystem/internal/his/domain"
)

const (
	sqlListPrograms = `
		SELECT id, name, description, created_at
		FROM   programs
		ORDER  BY id`

	sqlGetProgramByID = `
		SELECT id, name, description, created_at
		FROM   programs
		WHERE  id = ?`

	sqlCreateProgram = `
		INSERT INTO programs (name, description)
		VALUES (?, ?)`

	sqlDeleteProgram = `
		DELETE FROM programs WHERE id = ?`
)

type programsRepo struct {
	q dbtx
}

func (r *programsRepo) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	rows, err := r.q.QueryContext(ctx, sqlListPrograms)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := []domain.Program{}
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

func (r *programsRepo) GetProgramByID(ctx context.Context, id int64) (domain.Program, error) {
	p, err := scanProgram(r.q.QueryRowContext(ctx, sqlGetProgramByID, id))
	if err != nil {
		return domain.Program{}, mapNotFound(err)
	}
	return p, nil
}

func (r *programsRepo) CreateProgram(ctx context.Context, p domain.Program) (int64, error) {
	res, err := r.q.ExecContext(ctx, sqlCreateProgram, p.Name, mapOptionalString(p.Description))
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *programsRepo) DeleteProgram(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, sqlDeleteProgram, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProgram(s scanner) (domain.Program, error) {
	var (
		p    domain.Program
		desc sql.NullString
	)
	if err := s.Scan(&p.ID, &p.Name, &desc, &p.CreatedAt); err != nil {
		return domain.Program{}, err
	}
	p.Description = mapNullStringPtr(desc)
	return p, nil
}
