package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewValidationError("description required", nil)
	mapped := ToDomainError(original)
	if mapped.Code != "VALIDATION_FAILED" || mapped.HTTPStatus != http.StatusBadRequest {
		t.Errorf("mapped = %s/%d", mapped.Code, mapped.HTTPStatus)
	}

	wrapped := fmt.Errorf("service failed: %w", NewNotFound("ticket", nil))
	mapped = ToDomainError(wrapped)
	if mapped.Code != "NOT_FOUND" {
		t.Errorf("wrapped code = %s, want NOT_FOUND", mapped.Code)
	}
}

func TestToDomainErrorMapsMissingRows(t *testing.T) {
	mapped := ToDomainError(fmt.Errorf("query: %w", pgx.ErrNoRows))
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Errorf("mapped = %s/%d, want NOT_FOUND/404", mapped.Code, mapped.HTTPStatus)
	}
}

func TestToDomainErrorMapsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "customers_username_key"}
	mapped := ToDomainError(pgErr)
	if mapped.Code != "CONFLICT" || mapped.HTTPStatus != http.StatusConflict {
		t.Errorf("mapped = %s/%d, want CONFLICT/409", mapped.Code, mapped.HTTPStatus)
	}
}

func TestToDomainErrorDefaultsToInternal(t *testing.T) {
	mapped := ToDomainError(errors.New("connection reset"))
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("mapped = %s/%d", mapped.Code, mapped.HTTPStatus)
	}
}

func TestPredicates(t *testing.T) {
	if !IsNotFound(NewNotFound("ticket", nil)) {
		t.Error("IsNotFound(not found) = false")
	}
	if IsNotFound(NewConflict("dup", nil)) {
		t.Error("IsNotFound(conflict) = true")
	}
	if !IsConflict(NewConflict("dup", nil)) {
		t.Error("IsConflict(conflict) = false")
	}
}
