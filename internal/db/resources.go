package db

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"campusshare/internal/models"
)

// resourceColumns is the standard column list for resource queries, joined
// against users for the owner's email.
const resourceColumns = `r.id, r.title, r.description, r.category, r.owner_id, u.email,
	r.file_id, r.file_name, r.status, r.created_at, r.updated_at`

// scanResource scans a row into a Resource struct.
func scanResource(row pgx.Row) (*models.Resource, error) {
	var res models.Resource
	err := row.Scan(
		&res.ID,
		&res.Title,
		&res.Description,
		&res.Category,
		&res.OwnerID,
		&res.OwnerEmail,
		&res.FileID,
		&res.FileName,
		&res.Status,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// scanResources scans multiple rows into a slice of Resources.
func scanResources(rows pgx.Rows) ([]models.Resource, error) {
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var res models.Resource
		if err := rows.Scan(
			&res.ID,
			&res.Title,
			&res.Description,
			&res.Category,
			&res.OwnerID,
			&res.OwnerEmail,
			&res.FileID,
			&res.FileName,
			&res.Status,
			&res.CreatedAt,
			&res.UpdatedAt,
		); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}

	return resources, rows.Err()
}

// CreateResource inserts a new resource with status available. The server
// assigns id and timestamps.
func (d *DB) CreateResource(ctx context.Context, res *models.Resource) error {
	query := `
		INSERT INTO resources (title, description, category, owner_id, file_id, file_name, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	status := res.Status
	if status == "" {
		status = models.StatusAvailable
	}

	err := d.Pool.QueryRow(ctx, query,
		res.Title,
		res.Description,
		res.Category,
		res.OwnerID,
		res.FileID,
		res.FileName,
		status,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return err
	}

	res.Status = status
	return nil
}

// GetResourceByID retrieves a resource by its ID.
func (d *DB) GetResourceByID(ctx context.Context, id uuid.UUID) (*models.Resource, error) {
	query := `
		SELECT ` + resourceColumns + `
		FROM resources r JOIN users u ON u.id = r.owner_id
		WHERE r.id = $1
	`
	return scanResource(d.Pool.QueryRow(ctx, query, id))
}

// ListAvailableResources retrieves all available resources, newest first.
func (d *DB) ListAvailableResources(ctx context.Context, limit int) ([]models.Resource, error) {
	query := `
		SELECT ` + resourceColumns + `
		FROM resources r JOIN users u ON u.id = r.owner_id
		WHERE r.status = $1
		ORDER BY r.created_at DESC
		LIMIT $2
	`
	rows, err := d.Pool.Query(ctx, query, models.StatusAvailable, limit)
	if err != nil {
		return nil, err
	}
	return scanResources(rows)
}

// SearchAvailableResources searches available resources by title, description,
// or category. An empty query returns the newest available resources.
func (d *DB) SearchAvailableResources(ctx context.Context, queryStr string, limit int) ([]models.Resource, error) {
	if strings.TrimSpace(queryStr) == "" {
		return d.ListAvailableResources(ctx, limit)
	}

	pattern := "%" + queryStr + "%"
	query := `
		SELECT ` + resourceColumns + `
		FROM resources r JOIN users u ON u.id = r.owner_id
		WHERE r.status = $1
			AND (r.title ILIKE $2 OR r.description ILIKE $2 OR r.category ILIKE $2)
		ORDER BY r.created_at DESC
		LIMIT $3
	`
	rows, err := d.Pool.Query(ctx, query, models.StatusAvailable, pattern, limit)
	if err != nil {
		return nil, err
	}
	return scanResources(rows)
}

// ListResourcesByOwner retrieves all resources posted by a specific user.
func (d *DB) ListResourcesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Resource, error) {
	query := `
		SELECT ` + resourceColumns + `
		FROM resources r JOIN users u ON u.id = r.owner_id
		WHERE r.owner_id = $1
		ORDER BY r.created_at DESC
	`
	rows, err := d.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	return scanResources(rows)
}

// RequestResource flips a resource from available to requested. The update is
// guarded on the current status so the first requester wins; a second
// concurrent request sees ErrResourceUnavailable.
func (d *DB) RequestResource(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE resources
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`
	result, err := d.Pool.Exec(ctx, query, models.StatusRequested, id, models.StatusAvailable)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		// Distinguish a missing resource from one already requested.
		if _, err := d.GetResourceByID(ctx, id); err != nil {
			return err
		}
		return ErrResourceUnavailable
	}
	return nil
}
