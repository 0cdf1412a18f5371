/*
Package hissdk provides a client SDK for the Health Information System REST API.

# Overview

The SDK wraps the JSON endpoints under /api/programs and /api/clients together with
the health probes. Request and response types in this package are also the wire types
used by the server, so the two sides cannot drift apart.

	client := hissdk.NewClient("http://localhost:8080")

	// Check service health
	health, err := client.GetReadiness(ctx)

	// Register a program and a client, then enroll the client
	programID, err := client.CreateProgram(ctx, hissdk.CreateProgramRequest{Name: "TB"})
	c, err := client.CreateClient(ctx, hissdk.CreateClientRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	})
	err = client.EnrollClient(ctx, c.ID, programID)

	// Read the client's profile
	profile, err := client.GetClientProfile(ctx, c.ID)

# Searching

ListClients performs a free-text match across first name, last name and email.
SearchClients ANDs the individual field filters:

	clients, err := client.SearchClients(ctx, hissdk.ClientSearch{LastName: "doe"})

# Error Handling

Any non-2xx response is returned as an *APIError carrying the status code and the
server's error message:

	_, err := client.GetClientProfile(ctx, 42)
	var apiErr *hissdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		// client does not exist
	}

# Thread Safety

A Client holds no mutable state and is safe for concurrent use.
*/
package hissdk
