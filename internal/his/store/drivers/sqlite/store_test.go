package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Killercavin/HealthInfoSystem/internal/his/domain"
	"github.com/Killercavin/HealthInfoSystem/internal/his/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(DSN(filepath.Join(t.TempDir(), "his.db")), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func strPtr(s string) *string { return &s }

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.ApplyMigrations())

	version, dirty, err := s.SchemaVersion()
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(1), version)
}

func TestPrograms(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("empty list", func(t *testing.T) {
		programs, err := s.Programs().ListPrograms(ctx)
		require.NoError(t, err)
		require.NotNil(t, programs)
		require.Empty(t, programs)
	})

	t.Run("create and list in id order", func(t *testing.T) {
		id1, err := s.Programs().CreateProgram(ctx, domain.Program{Name: "TB", Description: strPtr("Tuberculosis")})
		require.NoError(t, err)
		id2, err := s.Programs().CreateProgram(ctx, domain.Program{Name: "Malaria"})
		require.NoError(t, err)
		require.Greater(t, id2, id1)

		programs, err := s.Programs().ListPrograms(ctx)
		require.NoError(t, err)
		require.Len(t, programs, 2)
		require.Equal(t, "TB", programs[0].Name)
		require.Equal(t, "Tuberculosis", *programs[0].Description)
		require.Nil(t, programs[1].Description)
		require.False(t, programs[0].CreatedAt.IsZero())
	})

	t.Run("get unknown program", func(t *testing.T) {
		_, err := s.Programs().GetProgramByID(ctx, 9999)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete unknown program", func(t *testing.T) {
		require.ErrorIs(t, s.Programs().DeleteProgram(ctx, 9999), store.ErrNotFound)
	})
}

func TestClients(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	seed := []domain.Client{
		{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com"},
		{FirstName: "John", LastName: "Smith", Email: "JSMITH@clinic.org"},
		{FirstName: "Amina", LastName: "Janeway", Email: "amina_50%@example.com"},
	}
	for _, c := range seed {
		_, err := s.Clients().CreateClient(ctx, c)
		require.NoError(t, err)
	}

	names := func(clients []domain.Client) []string {
		out := make([]string, 0, len(clients))
		for _, c := range clients {
			out = append(out, c.FirstName)
		}
		return out
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := s.Clients().CreateClient(ctx, domain.Client{FirstName: "X", LastName: "Y", Email: "jane.doe@example.com"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("no filter returns all", func(t *testing.T) {
		clients, err := s.Clients().ListClients(ctx, domain.ClientFilter{})
		require.NoError(t, err)
		require.Equal(t, []string{"Jane", "John", "Amina"}, names(clients))
	})

	t.Run("query matches any field case-insensitively", func(t *testing.T) {
		clients, err := s.Clients().ListClients(ctx, domain.ClientFilter{Query: "jane"})
		require.NoError(t, err)
		require.Equal(t, []string{"Jane", "Amina"}, names(clients))

		clients, err = s.Clients().ListClients(ctx, domain.ClientFilter{Query: "clinic"})
		require.NoError(t, err)
		require.Equal(t, []string{"John"}, names(clients))
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		clients, err := s.Clients().ListClients(ctx, domain.ClientFilter{Query: "%"})
		require.NoError(t, err)
		require.Equal(t, []string{"Amina"}, names(clients))

		clients, err = s.Clients().ListClients(ctx, domain.ClientFilter{Query: "_"})
		require.NoError(t, err)
		require.Equal(t, []string{"Amina"}, names(clients))
	})

	t.Run("field filters are ANDed", func(t *testing.T) {
		clients, err := s.Clients().ListClients(ctx, domain.ClientFilter{FirstName: "j", Email: "example"})
		require.NoError(t, err)
		require.Equal(t, []string{"Jane"}, names(clients))

		clients, err = s.Clients().ListClients(ctx, domain.ClientFilter{FirstName: "jane", LastName: "smith"})
		require.NoError(t, err)
		require.Empty(t, clients)
	})

	t.Run("get by id", func(t *testing.T) {
		c, err := s.Clients().GetClientByID(ctx, 2)
		require.NoError(t, err)
		require.Equal(t, "JSMITH@clinic.org", c.Email)

		_, err = s.Clients().GetClientByID(ctx, 42)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestEnrollments(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	clientID, err := s.Clients().CreateClient(ctx, domain.Client{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"})
	require.NoError(t, err)
	tb, err := s.Programs().CreateProgram(ctx, domain.Program{Name: "TB"})
	require.NoError(t, err)
	hiv, err := s.Programs().CreateProgram(ctx, domain.Program{Name: "HIV", Description: strPtr("Care")})
	require.NoError(t, err)

	t.Run("foreign keys are enforced", func(t *testing.T) {
		_, err := s.Enrollments().CreateEnrollment(ctx, domain.Enrollment{ClientID: clientID, ProgramID: 999})
		require.ErrorIs(t, err, store.ErrConstraint)

		_, err = s.Enrollments().CreateEnrollment(ctx, domain.Enrollment{ClientID: 999, ProgramID: tb})
		require.ErrorIs(t, err, store.ErrConstraint)
	})

	t.Run("list programs in enrollment order", func(t *testing.T) {
		base := time.Now().UTC().Truncate(time.Second)
		_, err := s.Enrollments().CreateEnrollment(ctx, domain.Enrollment{ClientID: clientID, ProgramID: hiv, EnrolledAt: base})
		require.NoError(t, err)
		_, err = s.Enrollments().CreateEnrollment(ctx, domain.Enrollment{ClientID: clientID, ProgramID: tb, EnrolledAt: base.Add(time.Minute)})
		require.NoError(t, err)

		programs, err := s.Enrollments().ListProgramsForClient(ctx, clientID)
		require.NoError(t, err)
		require.Len(t, programs, 2)
		require.Equal(t, "HIV", programs[0].Name)
		require.Equal(t, "Care", *programs[0].Description)
		require.True(t, programs[0].EnrolledAt.Equal(base))
		require.Equal(t, "TB", programs[1].Name)

		n, err := s.Enrollments().CountEnrollments(ctx, clientID)
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})

	t.Run("deleting a program cascades", func(t *testing.T) {
		require.NoError(t, s.Programs().DeleteProgram(ctx, tb))

		n, err := s.Enrollments().CountEnrollments(ctx, clientID)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})

	t.Run("deleting a client cascades", func(t *testing.T) {
		require.NoError(t, s.Clients().DeleteClient(ctx, clientID))

		n, err := s.Enrollments().CountEnrollments(ctx, clientID)
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("rolls back on error", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if _, err := tx.Programs().CreateProgram(ctx, domain.Program{Name: "Rolled back"}); err != nil {
				return err
			}
			return store.ErrConstraint
		})
		require.ErrorIs(t, err, store.ErrConstraint)

		programs, err := s.Programs().ListPrograms(ctx)
		require.NoError(t, err)
		require.Empty(t, programs)
	})

	t.Run("commits on success", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Programs().CreateProgram(ctx, domain.Program{Name: "Kept"})
			return err
		})
		require.NoError(t, err)

		programs, err := s.Programs().ListPrograms(ctx)
		require.NoError(t, err)
		require.Len(t, programs, 1)
	})

	t.Run("nested transactions are rejected", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.WithTx(ctx, func(store.Tx) error { return nil })
		})
		require.Error(t, err)
	})
}

func TestLikePattern(t *testing.T) {
	t.Parallel()

	require.Equal(t, "%abc%", likePattern("ABC"))
	require.Equal(t, `%50\%\_off\\%`, likePattern(`50%_off\`))
}
