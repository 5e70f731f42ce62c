package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kenji-One/tikd-api/internal/domain"
)

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

const eventColumns = `id, org_id, title, date, end_date, location, location_spec,
	       minimum_age, categories, artists, status, created_at, updated_at`

// Create creates a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	spec, err := json.Marshal(event.LocSpec)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO events (id, org_id, title, date, end_date, location, location_spec,
		                    minimum_age, categories, artists, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = r.pool.Exec(ctx, query,
		event.ID,
		event.OrgID,
		event.Title,
		event.Date,
		event.EndDate,
		event.Location,
		spec,
		event.MinimumAge,
		event.Categories,
		event.Artists,
		event.Status,
		event.CreatedAt,
		event.UpdatedAt,
	)
	return err
}

// GetByID retrieves an event by ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1 AND deleted_at IS NULL
	`, eventColumns)
	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

// List retrieves events for an organization with optional status filter
func (r *PostgresEventRepository) List(ctx context.Context, orgID string, status string, sortBy string) ([]*domain.Event, error) {
	whereClause := "WHERE org_id = $1 AND deleted_at IS NULL"
	args := []interface{}{orgID}

	if status != "" {
		whereClause += " AND status = $2"
		args = append(args, status)
	}

	orderBy := "date ASC"
	switch sortBy {
	case "created":
		orderBy = "created_at DESC"
	case "title":
		orderBy = "title ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		%s
		ORDER BY %s
	`, eventColumns, whereClause, orderBy)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// Update updates an event
func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.Event) error {
	spec, err := json.Marshal(event.LocSpec)
	if err != nil {
		return err
	}
	query := `
		UPDATE events
		SET title = $2, date = $3, end_date = $4, location = $5, location_spec = $6,
		    minimum_age = $7, categories = $8, artists = $9, updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL
	`
	event.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Date,
		event.EndDate,
		event.Location,
		spec,
		event.MinimumAge,
		event.Categories,
		event.Artists,
		event.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event not found or already deleted")
	}

	return nil
}

// UpdateStatus transitions an event's visibility state
func (r *PostgresEventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error {
	query := `
		UPDATE events
		SET status = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event not found or already deleted")
	}

	return nil
}

// SoftDelete soft deletes an event
func (r *PostgresEventRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE events
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event not found or already deleted")
	}

	return nil
}

// scanEvent scans one event row, decoding the location_spec jsonb column
func scanEvent(row pgx.Row) (*domain.Event, error) {
	event := &domain.Event{}
	var spec []byte
	err := row.Scan(
		&event.ID,
		&event.OrgID,
		&event.Title,
		&event.Date,
		&event.EndDate,
		&event.Location,
		&spec,
		&event.MinimumAge,
		&event.Categories,
		&event.Artists,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(spec) > 0 {
		if err := json.Unmarshal(spec, &event.LocSpec); err != nil {
			return nil, err
		}
	}
	return event, nil
}
