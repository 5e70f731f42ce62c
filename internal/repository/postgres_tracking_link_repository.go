package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kenji-One/tikd-api/internal/domain"
	"github.com/Kenji-One/tikd-api/internal/dto"
)

// PostgresTrackingLinkRepository implements TrackingLinkRepository using PostgreSQL
type PostgresTrackingLinkRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTrackingLinkRepository creates a new PostgresTrackingLinkRepository
func NewPostgresTrackingLinkRepository(pool *pgxpool.Pool) *PostgresTrackingLinkRepository {
	return &PostgresTrackingLinkRepository{pool: pool}
}

const linkColumns = `id, code, org_id, COALESCE(member_id, '') as member_id, COALESCE(label, '') as label,
	       dest_kind, dest_target_id, status, views, conversions, created_at, updated_at`

// Create creates a new tracking link
func (r *PostgresTrackingLinkRepository) Create(ctx context.Context, link *domain.TrackingLink) error {
	query := `
		INSERT INTO tracking_links (id, code, org_id, member_id, label, dest_kind, dest_target_id,
		                            status, views, conversions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.pool.Exec(ctx, query,
		link.ID,
		link.Code,
		link.OrgID,
		nullStringOrValue(link.MemberID),
		nullStringOrValue(link.Label),
		link.Destination.Kind,
		link.Destination.TargetID,
		link.Status,
		link.Views,
		link.Conversions,
		link.CreatedAt,
		link.UpdatedAt,
	)
	return err
}

// GetByCode retrieves a tracking link by its short code
func (r *PostgresTrackingLinkRepository) GetByCode(ctx context.Context, code string) (*domain.TrackingLink, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tracking_links
		WHERE code = $1 AND deleted_at IS NULL
	`, linkColumns)
	link, err := scanTrackingLink(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return link, nil
}

// List retrieves an organization's tracking links
func (r *PostgresTrackingLinkRepository) List(ctx context.Context, orgID string, status string, sortBy string) ([]*domain.TrackingLink, error) {
	whereClause := "WHERE org_id = $1 AND deleted_at IS NULL"
	args := []interface{}{orgID}

	if status != "" {
		whereClause += " AND status = $2"
		args = append(args, status)
	}

	orderBy := "created_at DESC"
	switch sortBy {
	case "views":
		orderBy = "views DESC"
	case "conversions":
		orderBy = "conversions DESC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM tracking_links
		%s
		ORDER BY %s
	`, linkColumns, whereClause, orderBy)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]*domain.TrackingLink, 0)
	for rows.Next() {
		link, err := scanTrackingLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, nil
}

// MemberStats aggregates link performance per team member
func (r *PostgresTrackingLinkRepository) MemberStats(ctx context.Context, orgID string) ([]*dto.MemberLinkStats, error) {
	query := `
		SELECT l.member_id, COALESCE(m.name, '') as name,
		       COUNT(*) as links, SUM(l.views) as views, SUM(l.conversions) as conversions
		FROM tracking_links l
		LEFT JOIN org_members m ON m.id = l.member_id
		WHERE l.org_id = $1 AND l.member_id IS NOT NULL AND l.deleted_at IS NULL
		GROUP BY l.member_id, m.name
		ORDER BY views DESC
	`
	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*dto.MemberLinkStats, 0)
	for rows.Next() {
		st := &dto.MemberLinkStats{}
		err := rows.Scan(&st.MemberID, &st.Name, &st.Links, &st.Views, &st.Conversions)
		if err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}

	return stats, nil
}

// IncrementViews bumps the persisted view counter for a link
func (r *PostgresTrackingLinkRepository) IncrementViews(ctx context.Context, id string, delta int64) error {
	query := `
		UPDATE tracking_links
		SET views = views + $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, delta)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tracking link not found or already deleted")
	}

	return nil
}

// ExistsByCode checks if a link exists with the given code
func (r *PostgresTrackingLinkRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM tracking_links WHERE code = $1 AND deleted_at IS NULL)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, code).Scan(&exists)
	return exists, err
}

// scanTrackingLink scans one tracking link row
func scanTrackingLink(row pgx.Row) (*domain.TrackingLink, error) {
	link := &domain.TrackingLink{}
	err := row.Scan(
		&link.ID,
		&link.Code,
		&link.OrgID,
		&link.MemberID,
		&link.Label,
		&link.Destination.Kind,
		&link.Destination.TargetID,
		&link.Status,
		&link.Views,
		&link.Conversions,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return link, nil
}
