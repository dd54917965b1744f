package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	if !IsUniqueViolation(err, "") {
		t.Fatal("expected unique violation")
	}
	if !IsUniqueViolation(err, "users_email_key") {
		t.Fatal("expected match by constraint")
	}
	if IsUniqueViolation(err, "posts_slug_key") {
		t.Fatal("constraint name must match")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}, "") {
		t.Fatal("foreign key violation is not unique violation")
	}
	if IsUniqueViolation(errors.New("boom"), "") {
		t.Fatal("plain error is not unique violation")
	}
}
