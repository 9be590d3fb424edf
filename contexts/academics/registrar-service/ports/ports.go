package ports

import (
	"context"

	"campus/contexts/academics/registrar-service/domain/entities"
)

type CreateUserInput struct {
	Name  string
	Email string
	Role  entities.Role
}

type CourseInput struct {
	Title string
	Code  string
}

// IdentityRepository owns the user collection.
type IdentityRepository interface {
	CreateUser(ctx context.Context, input CreateUserInput) (entities.User, error)
	GetUser(ctx context.Context, userID int) (entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// CatalogRepository owns the course collection. DeleteCourse removes the
// course and every enrollment referencing it in one atomic step and reports
// how many enrollments were cascaded.
type CatalogRepository interface {
	CreateCourse(ctx context.Context, input CourseInput) (entities.Course, error)
	GetCourse(ctx context.Context, courseID int) (entities.Course, error)
	ListCourses(ctx context.Context) ([]entities.Course, error)
	UpdateCourse(ctx context.Context, courseID int, input CourseInput) (entities.Course, error)
	DeleteCourse(ctx context.Context, courseID int) (int, error)
}

// LedgerRepository owns the enrollment collection. CreateEnrollment checks
// course existence before the duplicate-pair rule, both inside the same
// critical section.
type LedgerRepository interface {
	CreateEnrollment(ctx context.Context, userID int, courseID int) (entities.Enrollment, error)
	GetEnrollment(ctx context.Context, enrollmentID int) (entities.Enrollment, error)
	DeleteEnrollment(ctx context.Context, enrollmentID int) error
	ListEnrollments(ctx context.Context) ([]entities.Enrollment, error)
	ListEnrollmentsByStudent(ctx context.Context, userID int) ([]entities.Enrollment, error)
	ListEnrollmentsByCourse(ctx context.Context, courseID int) ([]entities.Enrollment, error)
	EnrollmentExists(ctx context.Context, userID int, courseID int) (bool, error)
}

// Store is the full relational surface one backend must provide. Reset
// clears every collection and restarts id counters at 1; it exists for test
// harnesses and local tooling.
type Store interface {
	IdentityRepository
	CatalogRepository
	LedgerRepository
	Reset(ctx context.Context) error
}
