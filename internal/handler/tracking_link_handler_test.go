package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Kenji-One/tikd-api/internal/domain"
	"github.com/Kenji-One/tikd-api/internal/dto"
	"github.com/Kenji-One/tikd-api/internal/service"
)

// fakeLinkService resolves from a fixed table and records resolve calls
type fakeLinkService struct {
	paths    map[string]string
	statuses map[string]error
	resolved []string
}

func (s *fakeLinkService) Create(_ context.Context, _ *dto.CreateTrackingLinkRequest) (*dto.TrackingLinkResponse, error) {
	return nil, nil
}

func (s *fakeLinkService) List(_ context.Context, _ *dto.ListTrackingLinksQuery) ([]*dto.TrackingLinkResponse, error) {
	return nil, nil
}

func (s *fakeLinkService) MemberStats(_ context.Context, _ string) ([]*dto.MemberLinkStats, error) {
	return nil, nil
}

func (s *fakeLinkService) Resolve(_ context.Context, code string) (string, error) {
	s.resolved = append(s.resolved, code)
	if err, ok := s.statuses[code]; ok {
		return "", err
	}
	if path, ok := s.paths[code]; ok {
		return path, nil
	}
	return "", service.ErrTrackingLinkNotFound
}

func newRedirectRouter(svc *fakeLinkService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/t/:code", NewTrackingLinkHandler(svc).Redirect)
	return r
}

func TestRedirectActiveLink(t *testing.T) {
	svc := &fakeLinkService{paths: map[string]string{"abc123": "/events/ev-9/"}}
	router := newRedirectRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/t/abc123", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/events/ev-9/" {
		t.Errorf("Location = %q, want /events/ev-9/", loc)
	}
}

func TestRedirectRefusals(t *testing.T) {
	tests := []struct {
		name string
		code string
		err  error
	}{
		{"unknown code", "nope", service.ErrTrackingLinkNotFound},
		{"paused link", "paused", domain.ErrLinkNotRedirectable},
		{"malformed destination", "broken", domain.ErrMalformedDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeLinkService{statuses: map[string]error{tt.code: tt.err}}
			router := newRedirectRouter(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/t/"+tt.code, nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
			}
			if w.Header().Get("Location") != "" {
				t.Error("refused lookup must not set a redirect Location")
			}
		})
	}
}
