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

// ClientsHandler handles all client and enrollment endpoints.
type ClientsHandler struct {
	ClientService     *service.ClientService
	EnrollmentService *service.EnrollmentService
}

// HandleList handles GET /api/clients
//
//	@Summary		List Clients
//	@Description	Returns all clients, or those whose first name, last name or email contains q (case-insensitive)
//	@Tags			Clients
//	@Produce		json
//	@Param			q	query		string	false	"Free-text filter"
//	@Success		200	{array}		hissdk.ClientRecord
//	@Failure		500	{object}	hissdk.ErrorResponse
//	@Router			/api/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.ClientFilter{Query: httpx.QueryParam(r, "q")})
}

// HandleSearch handles GET /api/clients/search
//
//	@Summary		Search Clients
//	@Description	Returns the clients matching every supplied filter (case-insensitive substring match)
//	@Tags			Clients
//	@Produce		json
//	@Param			firstName	query		string	false	"First name contains"
//	@Param			lastName	query		string	false	"Last name contains"
//	@Param			email		query		string	false	"Email contains"
//	@Success		200			{array}		hissdk.ClientRecord
//	@Failure		500			{object}	hissdk.ErrorResponse
//	@Router			/api/clients/search [get].
func (h *ClientsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.ClientFilter{
		FirstName: httpx.QueryParam(r, "firstName"),
		LastName:  httpx.QueryParam(r, "lastName"),
		Email:     httpx.QueryParam(r, "email"),
	})
}

func (h *ClientsHandler) list(w http.ResponseWriter, r *http.Request, f domain.ClientFilter) {
	clients, err := h.ClientService.ListClients(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list clients")
		return
	}

	out := make([]hissdk.ClientRecord, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientRecord(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /api/clients/{id}
//
//	@Summary		Get Client Profile
//	@Description	Returns a client together with the programs they are enrolled in
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path		int	true	"Client ID"
//	@Success		200	{object}	hissdk.ClientProfile
//	@Failure		400	{object}	hissdk.ErrorResponse
//	@Failure		404	{object}	hissdk.ErrorResponse
//	@Failure		500	{object}	hissdk.ErrorResponse
//	@Router			/api/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathInt(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid client ID")
		return
	}

	profile, err := h.ClientService.GetClientProfile(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrClientNotFound):
		writeError(w, http.StatusNotFound, "Client not found")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to load client")
		return
	}

	programs := make([]hissdk.EnrolledProgram, 0, len(profile.Programs))
	for _, p := range profile.Programs {
		programs = append(programs, hissdk.EnrolledProgram{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			EnrolledAt:  p.EnrolledAt,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, hissdk.ClientProfile{
		ID:        profile.ID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		Programs:  programs,
	})
}

// HandleCreate handles POST /api/clients
//
//	@Summary		Register Client
//	@Description	Registers a client. All fields are required and the email must be unique.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hissdk.CreateClientRequest	true	"Client to register"
//	@Success		201		{object}	hissdk.ClientRecord
//	@Failure		400		{object}	hissdk.ErrorResponse
//	@Failure		409		{object}	hissdk.ErrorResponse	"email already registered"
//	@Failure		500		{object}	hissdk.ErrorResponse
//	@Router			/api/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req hissdk.CreateClientRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		slogx.FromContext(r.Context()).Debug("invalid client body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request format. Required fields: firstName, lastName, email")
		return
	}

	c, err := h.ClientService.CreateClient(r.Context(), req.FirstName, req.LastName, req.Email)
	switch {
	case errors.Is(err, service.ErrInvalidClient):
		writeError(w, http.StatusBadRequest, "Invalid client data")
		return
	case errors.Is(err, service.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "A client with this email already exists")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to create client")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toClientRecord(c))
}

// HandleEnroll handles POST /api/clients/{id}/enroll
//
//	@Summary		Enroll Client
//	@Description	Enrolls a client in a program. A missing client or program is reported as a server error.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Client ID"
//	@Param			request	body		hissdk.EnrollRequest	true	"Program to enroll in"
//	@Success		201		{object}	hissdk.MessageResponse
//	@Failure		400		{object}	hissdk.ErrorResponse
//	@Failure		500		{object}	hissdk.ErrorResponse
//	@Router			/api/clients/{id}/enroll [post].
func (h *ClientsHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	clientID, ok := httpx.PathInt(r, "id")
	if !ok || clientID <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid client ID")
		return
	}

	var req hissdk.EnrollRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.ProgramID <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.EnrollmentService.EnrollClient(r.Context(), clientID, req.ProgramID); err != nil {
		writeError(w, http.StatusInternalServerError, "Could not enroll client")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, hissdk.MessageResponse{Message: "Client enrolled successfully"})
}

func toClientRecord(c domain.Client) hissdk.ClientRecord {
	return hissdk.ClientRecord{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
	}
}
