package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oguzk/studenthub/internal/app/models"
	"github.com/oguzk/studenthub/internal/pkg/apperrors"
	"github.com/oguzk/studenthub/internal/pkg/helpers"
)

// CourseRepository handles database operations for catalog courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new course with an empty enrollment counter
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, department, head_of_department, year, semester, enrolled_students)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Name, course.Department, course.HeadOfDepartment,
		course.Year, course.Semester, course.EnrolledStudents,
	).Scan(&course.ID)

	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, name, department, head_of_department, year, semester, enrolled_students
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Department,
		&course.HeadOfDepartment,
		&course.Year,
		&course.Semester,
		&course.EnrolledStudents,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// Search retrieves courses with pagination and an optional case-insensitive
// substring match against name, head of department or department.
func (r *CourseRepository) Search(ctx context.Context, search string, page, pageSize int) ([]models.Course, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	baseSelect := r.sb.Select(
		"id", "name", "department", "head_of_department", "year", "semester", "enrolled_students",
	).From("courses")

	countSelect := r.sb.Select("COUNT(*)").From("courses")

	if term := strings.TrimSpace(search); term != "" {
		pattern := "%" + term + "%"
		condition := squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"head_of_department": pattern},
			squirrel.ILike{"department": pattern},
		}
		baseSelect = baseSelect.Where(condition)
		countSelect = countSelect.Where(condition)
	}

	countQuery, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	listQuery, listArgs, err := baseSelect.
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building list query: %w", err)
	}

	rows, err := r.db.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Department,
			&course.HeadOfDepartment,
			&course.Year,
			&course.Semester,
			&course.EnrolledStudents,
		); err != nil {
			return nil, 0, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// Update overwrites every course field, including the enrolled-students
// counter (admin edits the counter directly).
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE courses
		SET name = $1, department = $2, head_of_department = $3,
		    year = $4, semester = $5, enrolled_students = $6
		WHERE id = $7`,
		course.Name, course.Department, course.HeadOfDepartment,
		course.Year, course.Semester, course.EnrolledStudents,
		course.ID)

	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course; its enrollments go via ON DELETE CASCADE
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// CountAll returns the number of courses
func (r *CourseRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// CountDistinctHODs returns the number of distinct heads of department
func (r *CourseRepository) CountDistinctHODs(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(DISTINCT head_of_department) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting heads of department: %w", err)
	}
	return count, nil
}

// CountDistinctDepartments returns the number of distinct departments
func (r *CourseRepository) CountDistinctDepartments(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(DISTINCT department) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting departments: %w", err)
	}
	return count, nil
}
