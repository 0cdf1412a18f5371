package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Killercavin/HealthInfoSystem/internal/his/domain"
	"github.com/Killercavin/HealthInfoSystem/internal/his/store"
)

const (
	sqlSelectClients = `
		SELECT id, first_name, last_name, email, created_at
		FROM   clients`

	sqlGetClientByID = sqlSelectClients + `
		WHERE  id = ?`

	sqlCreateClient = `
		INSERT INTO clients (first_name, last_name, email)
		VALUES (?, ?, ?)`

	sqlDeleteClient = `
		DELETE FROM clients WHERE id = ?`

	likeFirstName = `LOWER(first_name) LIKE ? ESCAPE '\'`
	likeLastName  = `LOWER(last_name) LIKE ? ESCAPE '\'`
	likeEmail     = `LOWER(email) LIKE ? ESCAPE '\'`
)

type clientsRepo struct {
	q dbtx
}

func (r *clientsRepo) ListClients(ctx context.Context, f domain.ClientFilter) ([]domain.Client, error) {
	query, args := buildClientQuery(f)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// buildClientQuery ORs the free-text query across all name and email columns
// and ANDs every field filter that is set.
func buildClientQuery(f domain.ClientFilter) (string, []any) {
	var (
		where []string
		args  []any
	)

	if f.Query != "" {
		pattern := likePattern(f.Query)
		where = append(where, "("+likeFirstName+" OR "+likeLastName+" OR "+likeEmail+")")
		args = append(args, pattern, pattern, pattern)
	}
	if f.FirstName != "" {
		where = append(where, likeFirstName)
		args = append(args, likePattern(f.FirstName))
	}
	if f.LastName != "" {
		where = append(where, likeLastName)
		args = append(args, likePattern(f.LastName))
	}
	if f.Email != "" {
		where = append(where, likeEmail)
		args = append(args, likePattern(f.Email))
	}

	var b strings.Builder
	b.WriteString(sqlSelectClients)
	if len(where) > 0 {
		b.WriteString("\n\t\tWHERE  ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString("\n\t\tORDER  BY id")

	return b.String(), args
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id int64) (domain.Client, error) {
	c, err := scanClient(r.q.QueryRowContext(ctx, sqlGetClientByID, id))
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) (int64, error) {
	res, err := r.q.ExecContext(ctx, sqlCreateClient, c.FirstName, c.LastName, c.Email)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *clientsRepo) DeleteClient(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, sqlDeleteClient, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanClient(s scanner) (domain.Client, error) {
	var c domain.Client
	if err := s.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.CreatedAt); err != nil {
		return domain.Client{}, err
	}
	return c, nil
}

// requireAffected returns store.ErrNotFound when a write touched no rows.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
