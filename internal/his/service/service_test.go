package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Killercavin/HealthInfoSystem/internal/his/domain"
	"github.com/Killercavin/HealthInfoSystem/internal/his/store"
	"github.com/Killercavin/HealthInfoSystem/internal/his/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "his.db")), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"jane@example.com", "a.b+c_d-e@x", "USER@HOST.ORG"}
	for _, e := range valid {
		require.True(t, IsValidEmail(e), e)
	}

	invalid := []string{"", "janeexample.com", "@example.com", "jane@", "ja ne@example.com"}
	for _, e := range invalid {
		require.False(t, IsValidEmail(e), e)
	}
}

func TestProgramService(t *testing.T) {
	ctx := context.Background()
	svc := &ProgramService{Store: newStore(t)}

	t.Run("blank name is rejected and nothing is stored", func(t *testing.T) {
		_, err := svc.CreateProgram(ctx, "   ", nil)
		require.ErrorIs(t, err, ErrInvalidProgram)

		programs, err := svc.ListPrograms(ctx)
		require.NoError(t, err)
		require.Empty(t, programs)
	})

	t.Run("created program appears in list", func(t *testing.T) {
		desc := "  Tuberculosis control  "
		id, err := svc.CreateProgram(ctx, "  TB ", &desc)
		require.NoError(t, err)
		require.Positive(t, id)

		programs, err := svc.ListPrograms(ctx)
		require.NoError(t, err)
		require.Len(t, programs, 1)
		require.Equal(t, id, programs[0].ID)
		require.Equal(t, "TB", programs[0].Name)
		require.Equal(t, "Tuberculosis control", *programs[0].Description)
	})

	t.Run("blank description is stored as null", func(t *testing.T) {
		blank := "  "
		_, err := svc.CreateProgram(ctx, "Malaria", &blank)
		require.NoError(t, err)

		programs, err := svc.ListPrograms(ctx)
		require.NoError(t, err)
		require.Len(t, programs, 2)
		require.Nil(t, programs[1].Description)
	})
}

func TestClientService(t *testing.T) {
	ctx := context.Background()
	svc := &ClientService{Store: newStore(t)}

	t.Run("invalid clients are rejected", func(t *testing.T) {
		cases := []struct{ first, last, email string }{
			{"", "Doe", "jane@example.com"},
			{"Jane", " ", "jane@example.com"},
			{"Jane", "Doe", ""},
			{"Jane", "Doe", "jane.example.com"},
		}
		for _, tc := range cases {
			_, err := svc.CreateClient(ctx, tc.first, tc.last, tc.email)
			require.ErrorIs(t, err, ErrInvalidClient)
		}
	})

	var jane domain.Client

	t.Run("create returns the stored client", func(t *testing.T) {
		var err error
		jane, err = svc.CreateClient(ctx, " Jane ", "Doe", "Jane.Doe@Example.com")
		require.NoError(t, err)
		require.Positive(t, jane.ID)
		require.Equal(t, "Jane", jane.FirstName)
		require.Equal(t, "Jane.Doe@Example.com", jane.Email)
		require.False(t, jane.CreatedAt.IsZero())
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.CreateClient(ctx, "Other", "Person", "Jane.Doe@Example.com")
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("search by email substring is case-insensitive", func(t *testing.T) {
		_, err := svc.CreateClient(ctx, "John", "Smith", "john@clinic.org")
		require.NoError(t, err)

		clients, err := svc.ListClients(ctx, domain.ClientFilter{Email: "example"})
		require.NoError(t, err)
		require.Len(t, clients, 1)
		require.Equal(t, jane.ID, clients[0].ID)
	})

	t.Run("profile of unknown client", func(t *testing.T) {
		_, err := svc.GetClientProfile(ctx, 9999)
		require.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("profile without enrollments", func(t *testing.T) {
		profile, err := svc.GetClientProfile(ctx, jane.ID)
		require.NoError(t, err)
		require.Equal(t, jane.Email, profile.Email)
		require.NotNil(t, profile.Programs)
		require.Empty(t, profile.Programs)
	})
}

func TestEnrollmentService(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	programs := &ProgramService{Store: st}
	clients := &ClientService{Store: st}
	enrollments := &EnrollmentService{Store: st}

	programID, err := programs.CreateProgram(ctx, "HIV", nil)
	require.NoError(t, err)
	client, err := clients.CreateClient(ctx, "Jane", "Doe", "jane@example.com")
	require.NoError(t, err)

	t.Run("non-positive ids are rejected", func(t *testing.T) {
		_, err := enrollments.EnrollClient(ctx, 0, programID)
		require.ErrorIs(t, err, ErrInvalidEnrollment)

		_, err = enrollments.EnrollClient(ctx, client.ID, -1)
		require.ErrorIs(t, err, ErrInvalidEnrollment)
	})

	t.Run("missing program fails at the constraint", func(t *testing.T) {
		_, err := enrollments.EnrollClient(ctx, client.ID, programID+100)
		require.ErrorIs(t, err, store.ErrConstraint)
	})

	t.Run("enrollment creates one row and shows in profile", func(t *testing.T) {
		id, err := enrollments.EnrollClient(ctx, client.ID, programID)
		require.NoError(t, err)
		require.Positive(t, id)

		n, err := st.Enrollments().CountEnrollments(ctx, client.ID)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		profile, err := clients.GetClientProfile(ctx, client.ID)
		require.NoError(t, err)
		require.Len(t, profile.Programs, 1)
		require.Equal(t, programID, profile.Programs[0].ID)
		require.Equal(t, "HIV", profile.Programs[0].Name)
		require.False(t, profile.Programs[0].EnrolledAt.IsZero())
	})
}
