package response

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestSuccess(t *testing.T) {
	data := map[string]string{"name": "test"}
	resp := Success(data)

	if !resp.Success {
		t.Error("Expected success to be true")
	}
	if resp.Data == nil {
		t.Error("Expected data to be set")
	}
	if resp.Error != nil {
		t.Error("Expected error to be nil")
	}
}

func TestSuccess_JSONFormat(t *testing.T) {
	resp := Success(map[string]string{"id": "123"})

	jsonBytes, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if parsed["success"] != true {
		t.Errorf("Expected success=true, got %v", parsed["success"])
	}
	if _, ok := parsed["error"]; ok {
		t.Error("Expected error field to be omitted")
	}
	if _, ok := parsed["meta"]; ok {
		t.Error("Expected meta field to be omitted")
	}
}

func TestError(t *testing.T) {
	resp := Error(ErrCodeNotFound, "Event not found")

	if resp.Success {
		t.Error("Expected success to be false")
	}
	if resp.Error == nil {
		t.Fatal("Expected error to be set")
	}
	if resp.Error.Code != ErrCodeNotFound {
		t.Errorf("Expected code %s, got %s", ErrCodeNotFound, resp.Error.Code)
	}
	if resp.Error.Message != "Event not found" {
		t.Errorf("Expected message 'Event not found', got '%s'", resp.Error.Message)
	}
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeLinkInactive, http.StatusNotFound},
		{ErrCodeInvalidCoupon, http.StatusUnprocessableEntity},
		{ErrCodePaymentFailed, http.StatusPaymentRequired},
		{"SOMETHING_UNKNOWN", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := GetHTTPStatus(tt.code); got != tt.want {
			t.Errorf("GetHTTPStatus(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestPaginated(t *testing.T) {
	resp := Paginated([]string{"a", "b"}, 2, 10, 25)

	if resp.Meta == nil {
		t.Fatal("Expected meta to be set")
	}
	if resp.Meta.TotalPages != 3 {
		t.Errorf("Expected 3 total pages, got %d", resp.Meta.TotalPages)
	}
	if resp.Meta.Page != 2 {
		t.Errorf("Expected page 2, got %d", resp.Meta.Page)
	}
}

func TestValidationFailed(t *testing.T) {
	resp := ValidationFailed(map[string]string{"title": "too short"})

	if resp.Error == nil {
		t.Fatal("Expected error to be set")
	}
	if resp.Error.Code != ErrCodeValidationFailed {
		t.Errorf("Expected code %s, got %s", ErrCodeValidationFailed, resp.Error.Code)
	}
	if resp.Error.Details["title"] != "too short" {
		t.Errorf("Expected details preserved, got %v", resp.Error.Details)
	}
}
