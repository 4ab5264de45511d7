package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oguzk/studenthub/internal/app/models"
	"github.com/oguzk/studenthub/internal/db"
	"github.com/oguzk/studenthub/internal/pkg/apperrors"
)

// StatusChange is one validated (course, new status) pair of a batch update
type StatusChange struct {
	CourseID int64
	Status   models.EnrollmentStatus
}

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// GetByStudentID retrieves a student's enrollments joined with their courses,
// optionally filtered by status.
func (r *EnrollmentRepository) GetByStudentID(ctx context.Context, studentID int64, status models.EnrollmentStatus) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.course_id, e.enrollment_date, e.status,
		       c.id, c.name, c.department, c.head_of_department, c.year, c.semester, c.enrolled_students
		FROM enrollments e
		JOIN courses c ON e.course_id = c.id
		WHERE e.student_id = $1
	`
	args := []interface{}{studentID}

	if status != "" {
		query += ` AND e.status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY e.id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var course models.Course
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.CourseID,
			&enrollment.EnrollmentDate,
			&enrollment.Status,
			&course.ID,
			&course.Name,
			&course.Department,
			&course.HeadOfDepartment,
			&course.Year,
			&course.Semester,
			&course.EnrolledStudents,
		); err != nil {
			return nil, err
		}
		enrollment.Course = &course
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// ApplyStatusChanges applies a batch of status changes for one student inside
// a single transaction. Each change locks the enrollment row and its course
// row, updates the status in place (the enrollment date is never touched) and
// adjusts the course's enrolled-students counter by the transition delta.
// A missing enrollment aborts the transaction; nothing is applied.
func (r *EnrollmentRepository) ApplyStatusChanges(ctx context.Context, studentID int64, changes []StatusChange) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, change := range changes {
			var enrollmentID int64
			var current models.EnrollmentStatus

			err := tx.QueryRow(ctx, `
				SELECT id, status FROM enrollments
				WHERE student_id = $1 AND course_id = $2
				FOR UPDATE`,
				studentID, change.CourseID).Scan(&enrollmentID, &current)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return apperrors.ErrEnrollmentNotFound
				}
				return fmt.Errorf("error locking enrollment: %w", err)
			}

			delta := models.CounterDelta(current, change.Status)
			if current == change.Status {
				// Same value submitted: no-op, no counter change.
				continue
			}

			_, err = tx.Exec(ctx, `
				UPDATE enrollments SET status = $1 WHERE id = $2`,
				change.Status, enrollmentID)
			if err != nil {
				return fmt.Errorf("error updating enrollment status: %w", err)
			}

			if delta != 0 {
				cmdTag, err := tx.Exec(ctx, `
					UPDATE courses SET enrolled_students = enrolled_students + $1 WHERE id = $2`,
					delta, change.CourseID)
				if err != nil {
					return fmt.Errorf("error adjusting enrolled count: %w", err)
				}
				if cmdTag.RowsAffected() == 0 {
					return apperrors.ErrCourseNotFound
				}
			}
		}

		return nil
	})
}

// CountByStatus returns the number of a student's enrollments with the given status
func (r *EnrollmentRepository) CountByStatus(ctx context.Context, studentID int64, status models.EnrollmentStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM enrollments WHERE student_id = $1 AND status = $2`,
		studentID, status).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}

	return count, nil
}
