package hissdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListClients returns the clients whose first name, last name or email
// contains q, ignoring case. An empty q returns every client.
func (c *Client) ListClients(ctx context.Context, q string) ([]ClientRecord, error) {
	path := "/api/clients"
	if q != "" {
		path += "?" + url.Values{"q": {q}}.Encode()
	}
	return c.listClients(ctx, path)
}

// SearchClients returns the clients matching every non-empty field of s.
func (c *Client) SearchClients(ctx context.Context, s ClientSearch) ([]ClientRecord, error) {
	params := url.Values{}
	if s.FirstName != "" {
		params.Set("firstName", s.FirstName)
	}
	if s.LastName != "" {
		params.Set("lastName", s.LastName)
	}
	if s.Email != "" {
		params.Set("email", s.Email)
	}

	path := "/api/clients/search"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return c.listClients(ctx, path)
}

func (c *Client) listClients(ctx context.Context, path string) ([]ClientRecord, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var clients []ClientRecord
	if err := decodeJSON(resp, &clients, http.StatusOK); err != nil {
		return nil, err
	}

	return clients, nil
}

// GetClientProfile returns a client and the programs they are enrolled in.
func (c *Client) GetClientProfile(ctx context.Context, id int64) (*ClientProfile, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/clients/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var profile ClientProfile
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}

	return &profile, nil
}

// CreateClient registers a client and returns the stored record.
func (c *Client) CreateClient(ctx context.Context, req CreateClientRequest) (*ClientRecord, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/clients", req)
	if err != nil {
		return nil, err
	}

	var created ClientRecord
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return nil, err
	}

	return &created, nil
}

// EnrollClient enrolls the client in the program.
func (c *Client) EnrollClient(ctx context.Context, clientID, programID int64) error {
	resp, err := c.doJSON(ctx, http.MethodPost,
		fmt.Sprintf("/api/clients/%d/enroll", clientID),
		EnrollRequest{ProgramID: programID},
	)
	if err != nil {
		return err
	}

	var msg MessageResponse
	return decodeJSON(resp, &msg, http.StatusCreated)
}
