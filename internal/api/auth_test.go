package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTokenAuthRoundTrip(t *testing.T) {
	auth := NewTokenAuth("test-secret")

	token, err := auth.IssueToken(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var gotUserID int64
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/api/drivers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	auth.Middleware(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if gotUserID != 42 {
		t.Errorf("user id = %d, want 42", gotUserID)
	}
}

func TestTokenAuthMissingToken(t *testing.T) {
	auth := NewTokenAuth("test-secret")

	rejected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a token")
	})

	req := httptest.NewRequest("GET", "/api/drivers", nil)
	rec := httptest.NewRecorder()
	auth.Middleware(rejected).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestTokenAuthRejectsForgedToken(t *testing.T) {
	auth := NewTokenAuth("test-secret")
	other := NewTokenAuth("other-secret")

	forged, err := other.IssueToken(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/drivers", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with a forged token")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
