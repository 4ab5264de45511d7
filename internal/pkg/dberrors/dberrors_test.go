package dberrors

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	if !IsUniqueViolation(uniqueErr) {
		t.Error("expected unique violation to be detected")
	}
	if !IsUniqueViolation(fmt.Errorf("error creating user: %w", uniqueErr)) {
		t.Error("expected wrapped unique violation to be detected")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation should not count as unique violation")
	}
	if IsUniqueViolation(fmt.Errorf("plain error")) {
		t.Error("non-pg error should not count as unique violation")
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	if !IsDuplicateConstraintError(uniqueErr, "users_email_key") {
		t.Error("expected match on the named constraint")
	}
	if !IsDuplicateConstraintError(fmt.Errorf("wrapped: %w", uniqueErr), "users_email_key") {
		t.Error("expected match on the named constraint through wrapping")
	}
	if IsDuplicateConstraintError(uniqueErr, "enrollments_student_id_course_id_key") {
		t.Error("different constraint name should not match")
	}
	if IsDuplicateConstraintError(&pgconn.PgError{Code: "23503", ConstraintName: "users_email_key"}, "users_email_key") {
		t.Error("non-unique violation should not match regardless of constraint name")
	}
}
