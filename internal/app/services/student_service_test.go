package services

import (
	"context"
	"errors"
	"testing"

	"github.com/oguzk/studenthub/internal/app/models/dto"
	"github.com/oguzk/studenthub/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// The repositories are nil on purpose: a batch containing an invalid status
// must be rejected before any repository is touched, so a repository call
// would panic and fail the test.
func TestUpdateEnrollmentStatusesRejectsBatchBeforeRepositoryAccess(t *testing.T) {
	svc := NewStudentService(nil, nil, nil, zerolog.Nop())

	req := &dto.UpdateEnrollmentStatusRequest{
		Changes: []dto.StatusChange{
			{CourseID: 1, Status: "pass"},
			{CourseID: 2, Status: "withdrawn"},
			{CourseID: 3, Status: "ongoing"},
		},
	}

	err := svc.UpdateEnrollmentStatuses(context.Background(), 7, req)
	if err == nil {
		t.Fatal("expected error for batch containing an invalid status, got nil")
	}
	if !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Fatalf("error = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateEnrollmentStatusesInvalidStatusCarriesDetails(t *testing.T) {
	svc := NewStudentService(nil, nil, nil, zerolog.Nop())

	req := &dto.UpdateEnrollmentStatusRequest{
		Changes: []dto.StatusChange{
			{CourseID: 42, Status: "failed"},
		},
	}

	err := svc.UpdateEnrollmentStatuses(context.Background(), 7, req)

	var custom *apperrors.CustomError
	if !errors.As(err, &custom) {
		t.Fatalf("error = %v, want *apperrors.CustomError", err)
	}
	if custom.Details["courseId"] != int64(42) {
		t.Errorf("details courseId = %v, want 42", custom.Details["courseId"])
	}
	if custom.Details["status"] != "failed" {
		t.Errorf("details status = %v, want %q", custom.Details["status"], "failed")
	}
}
