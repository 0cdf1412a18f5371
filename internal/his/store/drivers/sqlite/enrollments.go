package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Killercavin/HealthInfoSystem/internal/his/domain"
)

const (
	sqlCreateEnrollment = `
		INSERT INTO enrollments (client_id, program_id, enrolled_at)
		VALUES (?, ?, ?)`

	sqlListProgramsForClient = `
		SELECT p.id, p.name, p.description, p.created_at, e.enrolled_at
		FROM   enrollments e
		JOIN   programs p ON p.id = e.program_id
		WHERE  e.client_id = ?
		ORDER  BY e.enrolled_at, e.id`

	sqlCountEnrollments = `
		SELECT COUNT(*) FROM enrollments WHERE client_id = ?`
)

type enrollmentsRepo struct {
	q dbtx
}

func (r *enrollmentsRepo) CreateEnrollment(ctx context.Context, e domain.Enrollment) (int64, error) {
	enrolledAt := e.EnrolledAt
	if enrolledAt.IsZero() {
		enrolledAt = time.Now().UTC()
	}

	res, err := r.q.ExecContext(ctx, sqlCreateEnrollment, e.ClientID, e.ProgramID, enrolledAt)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *enrollmentsRepo) ListProgramsForClient(
	ctx context.Context,
	clientID int64,
) ([]domain.EnrolledProgram, error) {
	rows, err := r.q.QueryContext(ctx, sqlListProgramsForClient, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := []domain.EnrolledProgram{}
	for rows.Next() {
		var (
			ep   domain.EnrolledProgram
			desc sql.NullString
		)
		if err := rows.Scan(&ep.ID, &ep.Name, &desc, &ep.CreatedAt, &ep.EnrolledAt); err != nil {
			return nil, err
		}
		ep.Description = mapNullStringPtr(desc)
		programs = append(programs, ep)
	}
	return programs, rows.Err()
}

func (r *enrollmentsRepo) CountEnrollments(ctx context.Context, clientID int64) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, sqlCountEnrollments, clientID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
