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
	"github.com/oguzk/studenthub/internal/pkg/dberrors"
)

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentProfileColumns = `
	id, user_id, father_name, mother_name, contact, dob, branch, year_of_study, semester, address
`

func scanStudentProfile(row pgx.Row, profile *models.StudentProfile) error {
	return row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FatherName,
		&profile.MotherName,
		&profile.Contact,
		&profile.DateOfBirth,
		&profile.Branch,
		&profile.YearOfStudy,
		&profile.Semester,
		&profile.Address,
	)
}

// CreateWithAutoEnrollment creates the student profile and, in the same
// transaction, enrolls it with status 'ongoing' into every course whose
// (department, year, semester) matches the profile's (branch, year of study,
// semester), incrementing each matched course's enrolled-students counter.
// Returns the number of enrollments created. Zero matches is not an error.
func (r *StudentRepository) CreateWithAutoEnrollment(ctx context.Context, profile *models.StudentProfile) (int, error) {
	enrolled := 0

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insertProfile := `
			INSERT INTO student_profiles (user_id, father_name, mother_name, contact, dob, branch, year_of_study, semester, address)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`

		err := tx.QueryRow(ctx, insertProfile,
			profile.UserID, profile.FatherName, profile.MotherName, profile.Contact,
			profile.DateOfBirth, profile.Branch, profile.YearOfStudy, profile.Semester,
			profile.Address,
		).Scan(&profile.ID)

		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrProfileAlreadyExists
			}
			return fmt.Errorf("error creating student profile: %w", err)
		}

		// Lock matching courses so the counter increments cannot race
		// concurrent status updates.
		rows, err := tx.Query(ctx, `
			SELECT id FROM courses
			WHERE department = $1 AND year = $2 AND semester = $3
			FOR UPDATE`,
			profile.Branch, profile.YearOfStudy, profile.Semester)
		if err != nil {
			return fmt.Errorf("error finding matching courses: %w", err)
		}

		var courseIDs []int64
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			courseIDs = append(courseIDs, id)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for _, courseID := range courseIDs {
			_, err := tx.Exec(ctx, `
				INSERT INTO enrollments (student_id, course_id, enrollment_date, status)
				VALUES ($1, $2, CURRENT_DATE, $3)`,
				profile.ID, courseID, models.StatusOngoing)
			if err != nil {
				return fmt.Errorf("error creating enrollment: %w", err)
			}

			_, err = tx.Exec(ctx, `
				UPDATE courses SET enrolled_students = enrolled_students + 1 WHERE id = $1`,
				courseID)
			if err != nil {
				return fmt.Errorf("error incrementing enrolled count: %w", err)
			}

			enrolled++
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	return enrolled, nil
}

// GetByID retrieves a student profile by its ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.StudentProfile, error) {
	query := `SELECT ` + studentProfileColumns + ` FROM student_profiles WHERE id = $1`

	var profile models.StudentProfile
	if err := scanStudentProfile(r.db.QueryRow(ctx, query, id), &profile); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}

	return &profile, nil
}

// GetByUserID retrieves the student profile belonging to an account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	query := `SELECT ` + studentProfileColumns + ` FROM student_profiles WHERE user_id = $1`

	var profile models.StudentProfile
	if err := scanStudentProfile(r.db.QueryRow(ctx, query, userID), &profile); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}

	return &profile, nil
}

// ExistsByUserID checks whether an account already has a student profile
func (r *StudentRepository) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM student_profiles WHERE user_id = $1)`,
		userID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking profile existence: %w", err)
	}

	return exists, nil
}

// GetAllWithUsers retrieves every student profile joined with its account
func (r *StudentRepository) GetAllWithUsers(ctx context.Context) ([]*models.StudentProfile, error) {
	query := `
		SELECT sp.id, sp.user_id, sp.father_name, sp.mother_name, sp.contact, sp.dob,
		       sp.branch, sp.year_of_study, sp.semester, sp.address,
		       u.id, u.first_name, u.last_name, u.email, u.is_active, u.is_superuser, u.created_at, u.updated_at
		FROM student_profiles sp
		JOIN users u ON sp.user_id = u.id
		ORDER BY sp.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var profiles []*models.StudentProfile
	for rows.Next() {
		var profile models.StudentProfile
		var user models.User
		if err := rows.Scan(
			&profile.ID,
			&profile.UserID,
			&profile.FatherName,
			&profile.MotherName,
			&profile.Contact,
			&profile.DateOfBirth,
			&profile.Branch,
			&profile.YearOfStudy,
			&profile.Semester,
			&profile.Address,
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.Email,
			&user.IsActive,
			&user.IsSuperuser,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profile.User = &user
		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// UpdateContactFields updates the fields a student may edit themselves
func (r *StudentRepository) UpdateContactFields(ctx context.Context, id int64, fatherName, motherName, contact, address string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE student_profiles
		SET father_name = $1, mother_name = $2, contact = $3, address = $4
		WHERE id = $5`,
		fatherName, motherName, contact, address, id)

	if err != nil {
		return fmt.Errorf("error updating student profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}

// UpdateAllFields overwrites every admin-editable profile field
func (r *StudentRepository) UpdateAllFields(ctx context.Context, profile *models.StudentProfile) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE student_profiles
		SET father_name = $1, mother_name = $2, contact = $3, dob = $4,
		    branch = $5, year_of_study = $6, semester = $7, address = $8
		WHERE id = $9`,
		profile.FatherName, profile.MotherName, profile.Contact, profile.DateOfBirth,
		profile.Branch, profile.YearOfStudy, profile.Semester, profile.Address,
		profile.ID)

	if err != nil {
		return fmt.Errorf("error updating student profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}

// DeleteWithAccount removes the student's account; the profile and its
// enrollments follow via ON DELETE CASCADE. Courses the student was still
// 'ongoing' in get their counter decremented in the same transaction so the
// counter keeps matching the remaining ongoing enrollments.
func (r *StudentRepository) DeleteWithAccount(ctx context.Context, profileID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var userID int64
		err := tx.QueryRow(ctx, `
			SELECT user_id FROM student_profiles WHERE id = $1`,
			profileID).Scan(&userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrProfileNotFound
			}
			return fmt.Errorf("error looking up student profile: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE courses
			SET enrolled_students = enrolled_students - 1
			WHERE id IN (
				SELECT course_id FROM enrollments
				WHERE student_id = $1 AND status = $2
			)`,
			profileID, models.StatusOngoing)
		if err != nil {
			return fmt.Errorf("error decrementing enrolled counts: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
		if err != nil {
			return fmt.Errorf("error deleting account: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}

		return nil
	})
}

// CountAll returns the number of student profiles
func (r *StudentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM student_profiles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
