package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kenji-One/tikd-api/internal/domain"
)

// PostgresOrganizationRepository implements OrganizationRepository using PostgreSQL
type PostgresOrganizationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrganizationRepository creates a new PostgresOrganizationRepository
func NewPostgresOrganizationRepository(pool *pgxpool.Pool) *PostgresOrganizationRepository {
	return &PostgresOrganizationRepository{pool: pool}
}

// Create creates a new organization
func (r *PostgresOrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	query := `
		INSERT INTO organizations (id, name, slug, logo_url, website, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		org.ID,
		org.Name,
		org.Slug,
		nullStringOrValue(org.LogoURL),
		nullStringOrValue(org.Website),
		nullStringOrValue(org.Bio),
		org.CreatedAt,
		org.UpdatedAt,
	)
	return err
}

// GetByID retrieves an organization by ID
func (r *PostgresOrganizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	query := `
		SELECT id, name, slug, COALESCE(logo_url, '') as logo_url, COALESCE(website, '') as website,
		       COALESCE(bio, '') as bio, created_at, updated_at
		FROM organizations
		WHERE id = $1 AND deleted_at IS NULL
	`
	org := &domain.Organization{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&org.ID,
		&org.Name,
		&org.Slug,
		&org.LogoURL,
		&org.Website,
		&org.Bio,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return org, nil
}

// GetBySlug retrieves an organization by slug
func (r *PostgresOrganizationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	query := `
		SELECT id, name, slug, COALESCE(logo_url, '') as logo_url, COALESCE(website, '') as website,
		       COALESCE(bio, '') as bio, created_at, updated_at
		FROM organizations
		WHERE slug = $1 AND deleted_at IS NULL
	`
	org := &domain.Organization{}
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&org.ID,
		&org.Name,
		&org.Slug,
		&org.LogoURL,
		&org.Website,
		&org.Bio,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return org, nil
}

// Update updates an organization profile
func (r *PostgresOrganizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	query := `
		UPDATE organizations
		SET name = $2, logo_url = $3, website = $4, bio = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`
	org.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		org.ID,
		org.Name,
		nullStringOrValue(org.LogoURL),
		nullStringOrValue(org.Website),
		nullStringOrValue(org.Bio),
		org.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("organization not found or already deleted")
	}

	return nil
}

// ListMembers retrieves the organization's team members
func (r *PostgresOrganizationRepository) ListMembers(ctx context.Context, orgID string) ([]*domain.Member, error) {
	query := `
		SELECT id, org_id, name, email, COALESCE(role, '') as role
		FROM org_members
		WHERE org_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC
	`
	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.Member, 0)
	for rows.Next() {
		member := &domain.Member{}
		err := rows.Scan(
			&member.ID,
			&member.OrgID,
			&member.Name,
			&member.Email,
			&member.Role,
		)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, nil
}

// ExistsBySlug checks if an organization exists with the given slug
func (r *PostgresOrganizationRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM organizations WHERE slug = $1 AND deleted_at IS NULL)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, slug).Scan(&exists)
	return exists, err
}

// nullStringOrValue returns nil for empty strings, otherwise returns the value
func nullStringOrValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
