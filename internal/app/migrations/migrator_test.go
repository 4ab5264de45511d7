package migrations

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readInitMigration(t *testing.T) string {
	t.Helper()
	path := filepath.Join("..", "..", "..", "migrations", "001_init.sql")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read initial migration: %v", err)
	}
	return string(content)
}

// tableBody returns the column definitions of one CREATE TABLE statement.
func tableBody(t *testing.T, sql, table string) string {
	t.Helper()
	marker := "CREATE TABLE IF NOT EXISTS " + table + " ("
	start := strings.Index(sql, marker)
	if start < 0 {
		t.Fatalf("migration does not create table %q", table)
	}
	rest := sql[start+len(marker):]
	end := strings.Index(rest, ");")
	if end < 0 {
		t.Fatalf("unterminated CREATE TABLE for %q", table)
	}
	return rest[:end]
}

// The repositories address columns by name; the initial migration must
// create every one of them or the queries fail with an undefined column.
func TestInitMigrationCoversRepositoryColumns(t *testing.T) {
	sql := readInitMigration(t)

	tables := map[string][]string{
		"users": {
			"first_name", "last_name", "email", "password",
			"is_active", "is_superuser", "created_at", "updated_at",
		},
		"student_profiles": {
			"user_id", "father_name", "mother_name", "contact", "dob",
			"branch", "year_of_study", "semester", "address",
		},
		"courses": {
			"name", "department", "head_of_department", "year",
			"semester", "enrolled_students",
		},
		"enrollments": {
			"student_id", "course_id", "enrollment_date", "status",
		},
		"password_reset_tokens": {
			"user_id", "token", "expiry_date", "used",
		},
		"refresh_tokens": {
			"user_id", "token", "expiry_date", "revoked",
		},
	}

	for table, columns := range tables {
		body := tableBody(t, sql, table)
		for _, column := range columns {
			if !strings.Contains(body, column) {
				t.Errorf("table %s is missing column %s", table, column)
			}
		}
	}
}
