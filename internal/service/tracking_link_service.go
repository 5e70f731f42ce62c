package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kenji-One/tikd-api/internal/domain"
	"github.com/Kenji-One/tikd-api/internal/dto"
	"github.com/Kenji-One/tikd-api/internal/repository"
	"github.com/Kenji-One/tikd-api/internal/stream"
	"github.com/Kenji-One/tikd-api/pkg/logger"
)

var ErrTrackingLinkNotFound = errors.New("tracking link not found")

const codeLength = 8

// TrackingLinkService defines the interface for tracking-link operations
type TrackingLinkService interface {
	// Create creates a new tracking link with a generated short code
	Create(ctx context.Context, req *dto.CreateTrackingLinkRequest) (*dto.TrackingLinkResponse, error)
	// List retrieves an organization's tracking links
	List(ctx context.Context, query *dto.ListTrackingLinksQuery) ([]*dto.TrackingLinkResponse, error)
	// MemberStats aggregates link performance per team member
	MemberStats(ctx context.Context, orgID string) ([]*dto.MemberLinkStats, error)
	// Resolve looks up a short code and returns its redirect path, counting
	// the view as a side effect. Non-active links refuse without counting.
	Resolve(ctx context.Context, code string) (string, error)
}

// trackingLinkService implements TrackingLinkService
type trackingLinkService struct {
	linkRepo  repository.TrackingLinkRepository
	views     repository.ViewCounter
	publisher stream.ViewPublisher
}

// NewTrackingLinkService creates a new TrackingLinkService
func NewTrackingLinkService(linkRepo repository.TrackingLinkRepository, views repository.ViewCounter, publisher stream.ViewPublisher) TrackingLinkService {
	return &trackingLinkService{
		linkRepo:  linkRepo,
		views:     views,
		publisher: publisher,
	}
}

// Create creates a new tracking link with a generated short code
func (s *trackingLinkService) Create(ctx context.Context, req *dto.CreateTrackingLinkRequest) (*dto.TrackingLinkResponse, error) {
	if _, err := req.Destination.Path(); err != nil {
		return nil, err
	}

	code, err := s.generateCode(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	link := &domain.TrackingLink{
		ID:          uuid.New().String(),
		Code:        code,
		OrgID:       req.OrgID,
		MemberID:    req.MemberID,
		Label:       req.Label,
		Destination: req.Destination,
		Status:      domain.LinkStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.linkRepo.Create(ctx, link); err != nil {
		return nil, err
	}

	return dto.FromTrackingLink(link), nil
}

// generateCode derives a short code from a fresh UUID, retrying on the rare
// collision.
func (s *trackingLinkService) generateCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code := strings.ReplaceAll(uuid.New().String(), "-", "")[:codeLength]
		exists, err := s.linkRepo.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique link code")
}

// List retrieves an organization's tracking links
func (s *trackingLinkService) List(ctx context.Context, query *dto.ListTrackingLinksQuery) ([]*dto.TrackingLinkResponse, error) {
	links, err := s.linkRepo.List(ctx, query.OrgID, query.Status, query.SortBy)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TrackingLinkResponse, 0, len(links))
	for _, l := range links {
		responses = append(responses, dto.FromTrackingLink(l))
	}
	return responses, nil
}

// MemberStats aggregates link performance per team member
func (s *trackingLinkService) MemberStats(ctx context.Context, orgID string) ([]*dto.MemberLinkStats, error) {
	return s.linkRepo.MemberStats(ctx, orgID)
}

// Resolve looks up a short code and returns its redirect path. The view is
// counted best-effort after the link is known to be redirectable: a paused or
// archived link never bumps its counter, and a counting failure is logged but
// never blocks the redirect.
func (s *trackingLinkService) Resolve(ctx context.Context, code string) (string, error) {
	link, err := s.linkRepo.GetByCode(ctx, code)
	if err != nil {
		return "", err
	}
	if link == nil {
		return "", ErrTrackingLinkNotFound
	}

	path, err := link.RedirectPath()
	if err != nil {
		return "", err
	}

	if err := s.views.Increment(ctx, link.ID); err != nil {
		logger.WarnCtx(ctx, "view counter increment failed",
			zap.String("link_id", link.ID), zap.Error(err))
	}
	s.publisher.PublishView(ctx, &stream.ViewEvent{
		LinkID:     link.ID,
		Code:       link.Code,
		OrgID:      link.OrgID,
		MemberID:   link.MemberID,
		OccurredAt: time.Now(),
	})

	return path, nil
}
