package hissdk

import (
	"context"
	"net/http"
)

// ListPrograms returns every program ordered by id.
func (c *Client) ListPrograms(ctx context.Context) ([]Program, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/programs", nil, nil)
	if err != nil {
		return nil, err
	}

	var programs []Program
	if err := decodeJSON(resp, &programs, http.StatusOK); err != nil {
		return nil, err
	}

	return programs, nil
}

// CreateProgram creates a program and returns its id.
func (c *Client) CreateProgram(ctx context.Context, req CreateProgramRequest) (int64, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/programs", req)
	if err != nil {
		return 0, err
	}

	var created CreateProgramResponse
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return 0, err
	}

	return created.ID, nil
}
