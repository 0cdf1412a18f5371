package store

import (
	"context"
	"errors"

	"github.com/Killercavin/HealthInfoSystem/internal/his/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	// ErrConstraint reports a foreign key or check constraint violation.
	ErrConstraint = errors.New("store: constraint violation")
)

// Store is the root data access interface. Concrete drivers implement this
// and expose one sub-repository per table. Sub-repositories obtained from a
// Tx run inside that transaction.
type Store interface {
	Programs() Programs
	Clients() Clients
	Enrollments() Enrollments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Programs interface {
	// ListPrograms returns every program ordered by id.
	ListPrograms(ctx context.Context) ([]domain.Program, error)

	// GetProgramByID returns ErrNotFound when no row matches.
	GetProgramByID(ctx context.Context, id int64) (domain.Program, error)

	// CreateProgram inserts a program and returns its generated id.
	CreateProgram(ctx context.Context, p domain.Program) (int64, error)

	// DeleteProgram cascades to enrollments (per schema).
	DeleteProgram(ctx context.Context, id int64) error
}

type Clients interface {
	// ListClients returns the clients matching f ordered by id.
	ListClients(ctx context.Context, f domain.ClientFilter) ([]domain.Client, error)

	// GetClientByID returns ErrNotFound when no row matches.
	GetClientByID(ctx context.Context, id int64) (domain.Client, error)

	// CreateClient inserts a client and returns its generated id.
	// Returns ErrAlreadyExists if the email is taken.
	CreateClient(ctx context.Context, c domain.Client) (int64, error)

	// DeleteClient cascades to enrollments (per schema).
	DeleteClient(ctx context.Context, id int64) error
}

type Enrollments interface {
	// CreateEnrollment inserts an enrollment and returns its generated id.
	// Returns ErrConstraint when the client or program does not exist.
	CreateEnrollment(ctx context.Context, e domain.Enrollment) (int64, error)

	// ListProgramsForClient joins enrollments to programs for one client,
	// ordered by enrollment time.
	ListProgramsForClient(ctx context.Context, clientID int64) ([]domain.EnrolledProgram, error)

	// CountEnrollments returns the number of enrollment rows for a client.
	CountEnrollments(ctx context.Context, clientID int64) (int, error)
}
