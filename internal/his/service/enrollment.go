package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Killercavin/HealthInfoSystem/internal/his/domain"
	"github.com/Killercavin/HealthInfoSystem/internal/his/store"
	"github.com/Killercavin/HealthInfoSystem/pkg/slogx"
)

type EnrollmentService struct {
	Store store.Store
}

// EnrollClient records that a client joined a program. The client and program
// are not looked up first; a missing parent surfaces as store.ErrConstraint.
func (s *EnrollmentService) EnrollClient(ctx context.Context, clientID, programID int64) (int64, error) {
	l := slogx.FromContext(ctx)

	if clientID <= 0 || programID <= 0 {
		return 0, ErrInvalidEnrollment
	}

	var id int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		id, err = tx.Enrollments().CreateEnrollment(ctx, domain.Enrollment{
			ClientID:   clientID,
			ProgramID:  programID,
			EnrolledAt: time.Now().UTC(),
		})
		return err
	})
	if err != nil {
		l.Error("failed to enroll client", "client_id", clientID, "program_id", programID, "error", err)
		return 0, fmt.Errorf("enroll client %d in program %d: %w", clientID, programID, err)
	}

	l.Info("client enrolled", "client_id", clientID, "program_id", programID, "enrollment_id", id)
	return id, nil
}
