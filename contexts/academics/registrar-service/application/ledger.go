package application

import (
	"context"
	"log/slog"

	"campus/contexts/academics/registrar-service/domain/entities"
	domainerrors "campus/contexts/academics/registrar-service/domain/errors"
	"campus/contexts/academics/registrar-service/ports"
)

// LedgerService owns enrollment lifecycle. Check ordering differs between
// operations on purpose: Enroll gates on the actor role first, while
// DeregisterSelf resolves the enrollment before looking at the actor at
// all. Both orderings are contractual.
type LedgerService struct {
	Repo   ports.Store
	Logger *slog.Logger
}

func (s LedgerService) Enroll(ctx context.Context, userID int, courseID int) (entities.Enrollment, error) {
	if _, err := requireRole(ctx, s.Repo, userID, entities.RoleStudent); err != nil {
		return entities.Enrollment{}, err
	}
	enrollment, err := s.Repo.CreateEnrollment(ctx, userID, courseID)
	if err != nil {
		return entities.Enrollment{}, err
	}
	ResolveLogger(s.Logger).Info("student enrolled",
		"event", "registrar_enrollment_created",
		"module", "academics/registrar-service",
		"layer", "application",
		"enrollment_id", enrollment.ID,
		"user_id", userID,
		"course_id", courseID,
	)
	return enrollment, nil
}

func (s LedgerService) DeregisterSelf(ctx context.Context, enrollmentID int, actingUserID int) error {
	enrollment, err := s.Repo.GetEnrollment(ctx, enrollmentID)
	if err != nil {
		return err
	}
	if _, err := requireRole(ctx, s.Repo, actingUserID, entities.RoleStudent); err != nil {
		return err
	}
	if enrollment.UserID != actingUserID {
		return domainerrors.ErrNotOwnEnrollment
	}
	if err := s.Repo.DeleteEnrollment(ctx, enrollmentID); err != nil {
		return err
	}
	ResolveLogger(s.Logger).Info("student deregistered",
		"event", "registrar_enrollment_deleted",
		"module", "academics/registrar-service",
		"layer", "application",
		"enrollment_id", enrollmentID,
		"user_id", actingUserID,
	)
	return nil
}

func (s LedgerService) ForceDeregister(ctx context.Context, enrollmentID int, actingAdminID int) error {
	if _, err := requireRole(ctx, s.Repo, actingAdminID, entities.RoleAdmin); err != nil {
		return err
	}
	if _, err := s.Repo.GetEnrollment(ctx, enrollmentID); err != nil {
		return err
	}
	if err := s.Repo.DeleteEnrollment(ctx, enrollmentID); err != nil {
		return err
	}
	ResolveLogger(s.Logger).Info("enrollment removed by admin",
		"event", "registrar_enrollment_force_deleted",
		"module", "academics/registrar-service",
		"layer", "application",
		"enrollment_id", enrollmentID,
		"admin_id", actingAdminID,
	)
	return nil
}

// ListByStudent requires the student to exist but carries no role gate;
// anyone may inspect a student's enrollments.
func (s LedgerService) ListByStudent(ctx context.Context, userID int) ([]entities.Enrollment, error) {
	if _, err := s.Repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.Repo.ListEnrollmentsByStudent(ctx, userID)
}

func (s LedgerService) ListByCourse(ctx context.Context, courseID int, actingAdminID int) ([]entities.Enrollment, error) {
	if _, err := requireRole(ctx, s.Repo, actingAdminID, entities.RoleAdmin); err != nil {
		return nil, err
	}
	return s.Repo.ListEnrollmentsByCourse(ctx, courseID)
}

func (s LedgerService) ListAll(ctx context.Context, actingAdminID int) ([]entities.Enrollment, error) {
	if _, err := requireRole(ctx, s.Repo, actingAdminID, entities.RoleAdmin); err != nil {
		return nil, err
	}
	return s.Repo.ListEnrollments(ctx)
}

func (s LedgerService) EnrollmentExists(ctx context.Context, userID int, courseID int) (bool, error) {
	return s.Repo.EnrollmentExists(ctx, userID, courseID)
}
