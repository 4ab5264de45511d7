package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository               *UserRepository
	StudentRepository            *StudentRepository
	CourseRepository             *CourseRepository
	EnrollmentRepository         *EnrollmentRepository
	PasswordResetTokenRepository *PasswordResetTokenRepository
	RefreshTokenRepository       *RefreshTokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:               NewUserRepository(db),
		StudentRepository:            NewStudentRepository(db),
		CourseRepository:             NewCourseRepository(db),
		EnrollmentRepository:         NewEnrollmentRepository(db),
		PasswordResetTokenRepository: NewPasswordResetTokenRepository(db),
		RefreshTokenRepository:       NewRefreshTokenRepository(db),
	}
}
