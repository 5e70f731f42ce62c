package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Kenji-One/tikd-api/internal/domain"
	"github.com/Kenji-One/tikd-api/internal/dto"
)

func TestOrganizationUpdateAppliesPartialFields(t *testing.T) {
	repo := &fakeOrgRepo{org: &domain.Organization{ID: "org-1", Name: "Old Name", Bio: "old bio"}}
	svc := NewOrganizationService(repo)

	name := "New Name"
	result, err := svc.Update(context.Background(), "org-1", &dto.UpdateOrganizationRequest{Name: &name})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if result.Name != "New Name" {
		t.Errorf("Name = %q, want New Name", result.Name)
	}
	if result.Bio != "old bio" {
		t.Errorf("Bio = %q, untouched field must survive", result.Bio)
	}
}

func TestOrganizationUpdateRequiresAField(t *testing.T) {
	repo := &fakeOrgRepo{org: &domain.Organization{ID: "org-1", Name: "Org"}}
	svc := NewOrganizationService(repo)

	_, err := svc.Update(context.Background(), "org-1", &dto.UpdateOrganizationRequest{})
	if err == nil {
		t.Fatal("Update() with no fields should fail")
	}
}

func TestOrganizationGetUnknown(t *testing.T) {
	svc := NewOrganizationService(&fakeOrgRepo{})

	_, err := svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrOrganizationNotFound) {
		t.Errorf("GetByID() error = %v, want ErrOrganizationNotFound", err)
	}
}
