package http

import (
	"errors"
	"net/http"

	"github.com/Killercavin/HealthInfoSystem/internal/his/domain"
	"github.com/Killercavin/HealthInfoSystem/internal/his/service"
	"github.com/Killercavin/HealthInfoSystem/pkg/hissdk"
	"github.com/Killercavin/HealthInfoSystem/pkg/httpx"
	"github.com/Killercavin/HealthInfoSystem/pkg/slogx"
)

// ProgramsHandler handles all program endpoints.
type ProgramsHandler struct {
	ProgramService *service.ProgramService
}

// HandleList handles GET /api/programs
//
//	@Summary		List Programs
//	@Description	Returns every health program ordered by id
//	@Tags			Programs
//	@Produce		json
//	@Success		200	{array}		hissdk.Program
//	@Failure		500	{object}	hissdk.ErrorResponse
//	@Router			/api/programs [get].
func (h *ProgramsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	programs, err := h.ProgramService.ListPrograms(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list programs")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProgramResponses(programs))
}

// HandleCreate handles POST /api/programs
//
//	@Summary		Create Program
//	@Description	Creates a health program. Name and description are trimmed; the name must not be blank.
//	@Tags			Programs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hissdk.CreateProgramRequest		true	"Program to create"
//	@Success		201		{object}	hissdk.CreateProgramResponse	"id of the new program"
//	@Failure		400		{object}	hissdk.ErrorResponse
//	@Failure		500		{object}	hissdk.ErrorResponse
//	@Router			/api/programs [post].
func (h *ProgramsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req hissdk.CreateProgramRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		slogx.FromContext(r.Context()).Debug("invalid program body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request format. Required field: name")
		return
	}

	id, err := h.ProgramService.CreateProgram(r.Context(), req.Name, req.Description)
	switch {
	case errors.Is(err, service.ErrInvalidProgram):
		writeError(w, http.StatusBadRequest, "Program name cannot be empty")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to create program")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, hissdk.CreateProgramResponse{ID: id})
}

// HandleNotImplemented answers the program update and delete routes, which
// are registered but have no behavior yet.
//
//	@Summary		Update or Delete Program
//	@Description	Reserved; always answers 501 Not Implemented
//	@Tags			Programs
//	@Produce		json
//	@Param			id	path		int	true	"Program ID"
//	@Failure		501	{object}	hissdk.ErrorResponse
//	@Router			/api/programs/{id} [put]
//	@Router			/api/programs/{id} [delete].
func (h *ProgramsHandler) HandleNotImplemented(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotImplemented, "Updating or deleting programs is not supported")
}

func toProgramResponses(programs []domain.Program) []hissdk.Program {
	out := make([]hissdk.Program, 0, len(programs))
	for _, p := range programs {
		out = append(out, hissdk.Program{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
		})
	}
	return out
}

func writeError(w http.ResponseWriter, status int, msg string) {
	httpx.WriteJSON(w, status, hissdk.ErrorResponse{Error: msg})
}
