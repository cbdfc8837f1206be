package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewForbidden("plan upgrade required")
	mapped := ToDomainError(original)
	if mapped.Code != "FORBIDDEN" || mapped.HTTPStatus != http.StatusForbidden {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
	if mapped.Message != "plan upgrade required" {
		t.Fatalf("message = %q", mapped.Message)
	}
}

func TestToDomainErrorUnwrapsWrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading invoice: %w", NewNotFound("invoice", nil))
	mapped := ToDomainError(wrapped)
	if mapped.HTTPStatus != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", mapped.HTTPStatus)
	}
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(fmt.Errorf("query: %w", pgx.ErrNoRows))
	if mapped.HTTPStatus != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", mapped.HTTPStatus)
	}
	if mapped.Code != "NOT_FOUND" {
		t.Fatalf("code = %q", mapped.Code)
	}
}

func TestToDomainErrorGenericIsInternal(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	if mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", mapped.HTTPStatus)
	}
	if mapped.Message != "internal server error" {
		t.Fatalf("generic error must not leak its text, got %q", mapped.Message)
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Fatal("nil error must map to nil")
	}
}
