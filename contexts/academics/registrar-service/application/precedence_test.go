package application

import (
	"context"
	"errors"
	"testing"

	"campus/contexts/academics/registrar-service/adapters/memory"
	"campus/contexts/academics/registrar-service/domain/entities"
	domainerrors "campus/contexts/academics/registrar-service/domain/errors"
	"campus/contexts/academics/registrar-service/ports"
)

type fixture struct {
	store    *memory.Store
	identity IdentityService
	catalog  CatalogService
	ledger   LedgerService
	admin    entities.User
	student  entities.User
	student2 entities.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := memory.NewStore()
	f := fixture{
		store:    store,
		identity: IdentityService{Repo: store},
		catalog:  CatalogService{Repo: store},
		ledger:   LedgerService{Repo: store},
	}
	ctx := context.Background()

	var err error
	f.admin, err = f.identity.CreateUser(ctx, ports.CreateUserInput{
		Name: "Admin", Email: "admin@example.com", Role: entities.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("seed admin failed: %v", err)
	}
	f.student, err = f.identity.CreateUser(ctx, ports.CreateUserInput{
		Name: "Student", Email: "student@example.com", Role: entities.RoleStudent,
	})
	if err != nil {
		t.Fatalf("seed student failed: %v", err)
	}
	f.student2, err = f.identity.CreateUser(ctx, ports.CreateUserInput{
		Name: "Student 2", Email: "student2@example.com", Role: entities.RoleStudent,
	})
	if err != nil {
		t.Fatalf("seed second student failed: %v", err)
	}
	return f
}

func TestCourseMutationsCheckAuthorizationBeforeExistence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Deleting a course that does not exist with a non-admin actor reports
	// the authorization failure, not the missing course.
	err := f.catalog.DeleteCourse(ctx, 999, f.student.ID)
	if !errors.Is(err, domainerrors.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired before existence check, got %v", err)
	}

	_, err = f.catalog.UpdateCourse(ctx, 999, ports.CourseInput{Title: "X", Code: "CS999"}, f.student.ID)
	if !errors.Is(err, domainerrors.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired on update, got %v", err)
	}

	// An unknown actor id fails as a missing admin, still before existence.
	err = f.catalog.DeleteCourse(ctx, 999, 12345)
	if !errors.Is(err, domainerrors.ErrAdminNotFound) {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}
}

func TestCreateCourseChecksAdminBeforeCodeConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.catalog.CreateCourse(ctx, ports.CourseInput{Title: "Intro", Code: "CS101"}, f.admin.ID); err != nil {
		t.Fatalf("create course failed: %v", err)
	}

	// Duplicate code submitted by a student: the role gate wins.
	_, err := f.catalog.CreateCourse(ctx, ports.CourseInput{Title: "Clone", Code: "CS101"}, f.student.ID)
	if !errors.Is(err, domainerrors.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired before conflict check, got %v", err)
	}

	courses, err := f.catalog.ListCourses(ctx)
	if err != nil {
		t.Fatalf("list courses failed: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("forbidden attempt must not mutate: got %d courses", len(courses))
	}
}

func TestEnrollChecksRoleBeforeCourseExistence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Admin actor enrolling into a nonexistent course: role failure first.
	_, err := f.ledger.Enroll(ctx, f.admin.ID, 999)
	if !errors.Is(err, domainerrors.ErrStudentRequired) {
		t.Fatalf("expected ErrStudentRequired before course lookup, got %v", err)
	}

	// Student actor, nonexistent course: course lookup fires next.
	_, err = f.ledger.Enroll(ctx, f.student.ID, 999)
	if !errors.Is(err, domainerrors.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}

	// Unknown actor resolves as a missing user.
	_, err = f.ledger.Enroll(ctx, 12345, 999)
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeregisterSelfChecksExistenceBeforeRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Opposite ordering to course operations: a missing enrollment is
	// reported even when the actor would also fail the role gate.
	err := f.ledger.DeregisterSelf(ctx, 999, f.admin.ID)
	if !errors.Is(err, domainerrors.ErrEnrollmentNotFound) {
		t.Fatalf("expected ErrEnrollmentNotFound before role check, got %v", err)
	}

	course, err := f.catalog.CreateCourse(ctx, ports.CourseInput{Title: "Intro", Code: "CS101"}, f.admin.ID)
	if err != nil {
		t.Fatalf("create course failed: %v", err)
	}
	enrollment, err := f.ledger.Enroll(ctx, f.student.ID, course.ID)
	if err != nil {
		t.Fatalf("enroll failed: %v", err)
	}

	// Live enrollment, admin actor: now the role gate fires.
	err = f.ledger.DeregisterSelf(ctx, enrollment.ID, f.admin.ID)
	if !errors.Is(err, domainerrors.ErrStudentRequired) {
		t.Fatalf("expected ErrStudentRequired, got %v", err)
	}

	// Another student: ownership gate fires last.
	err = f.ledger.DeregisterSelf(ctx, enrollment.ID, f.student2.ID)
	if !errors.Is(err, domainerrors.ErrNotOwnEnrollment) {
		t.Fatalf("expected ErrNotOwnEnrollment, got %v", err)
	}

	remaining, err := f.ledger.ListByStudent(ctx, f.student.ID)
	if err != nil {
		t.Fatalf("list by student failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("failed attempts must leave the ledger unchanged, got %d", len(remaining))
	}

	// The owner succeeds.
	if err := f.ledger.DeregisterSelf(ctx, enrollment.ID, f.student.ID); err != nil {
		t.Fatalf("owner deregistration failed: %v", err)
	}
}

func TestForceDeregisterChecksAdminBeforeExistence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.ledger.ForceDeregister(ctx, 999, f.student.ID)
	if !errors.Is(err, domainerrors.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired, got %v", err)
	}

	err = f.ledger.ForceDeregister(ctx, 999, f.admin.ID)
	if !errors.Is(err, domainerrors.ErrEnrollmentNotFound) {
		t.Fatalf("expected ErrEnrollmentNotFound for admin actor, got %v", err)
	}
}

func TestAdminListingsAreGated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.ledger.ListAll(ctx, f.student.ID); !errors.Is(err, domainerrors.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired on ListAll, got %v", err)
	}

	course, err := f.catalog.CreateCourse(ctx, ports.CourseInput{Title: "Intro", Code: "CS101"}, f.admin.ID)
	if err != nil {
		t.Fatalf("create course failed: %v", err)
	}
	if _, err := f.ledger.ListByCourse(ctx, course.ID, f.student.ID); !errors.Is(err, domainerrors.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired on ListByCourse, got %v", err)
	}
	if _, err := f.ledger.ListByCourse(ctx, 999, f.admin.ID); !errors.Is(err, domainerrors.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound after the admin gate, got %v", err)
	}

	// ListByStudent has no role gate but requires the student to exist.
	if _, err := f.ledger.ListByStudent(ctx, 12345); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := f.ledger.ListByStudent(ctx, f.student.ID); err != nil {
		t.Fatalf("any caller may list a student's enrollments: %v", err)
	}
}
