package his_test

import (
	"net/http"
	"testing"

	"github.com/Killercavin/HealthInfoSystem/pkg/hissdk"
	"github.com/stretchr/testify/require"
)

// TestProgramLifecycle creates programs and reads them back.
func TestProgramLifecycle(t *testing.T) {
	client := setupContainer(t)
	ctx := t.Context()

	programs, err := client.ListPrograms(ctx)
	require.NoError(t, err)
	require.Empty(t, programs)

	_, err = client.CreateProgram(ctx, hissdk.CreateProgramRequest{Name: "  "})
	assertAPIError(t, err, http.StatusBadRequest, "Program name cannot be empty")

	desc := "Tuberculosis control"
	tbID, err := client.CreateProgram(ctx, hissdk.CreateProgramRequest{Name: "TB", Description: &desc})
	require.NoError(t, err)
	malariaID, err := client.CreateProgram(ctx, hissdk.CreateProgramRequest{Name: "Malaria"})
	require.NoError(t, err)

	programs, err = client.ListPrograms(ctx)
	require.NoError(t, err)
	require.Len(t, programs, 2)
	require.Equal(t, tbID, programs[0].ID)
	require.Equal(t, desc, *programs[0].Description)
	require.Equal(t, malariaID, programs[1].ID)
	require.Nil(t, programs[1].Description)
}
