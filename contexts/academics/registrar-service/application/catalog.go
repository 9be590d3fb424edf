package application

import (
	"context"
	"log/slog"

	"campus/contexts/academics/registrar-service/domain/entities"
	"campus/contexts/academics/registrar-service/ports"
)

// CatalogService owns course CRUD. Every mutation resolves the acting admin
// through the role guard before any existence or uniqueness check runs;
// tests depend on that precedence.
type CatalogService struct {
	Repo   ports.Store
	Logger *slog.Logger
}

func (s CatalogService) CreateCourse(
	ctx context.Context,
	input ports.CourseInput,
	actingAdminID int,
) (entities.Course, error) {
	if _, err := requireRole(ctx, s.Repo, actingAdminID, entities.RoleAdmin); err != nil {
		return entities.Course{}, err
	}
	course, err := s.Repo.CreateCourse(ctx, input)
	if err != nil {
		return entities.Course{}, err
	}
	ResolveLogger(s.Logger).Info("course created",
		"event", "registrar_course_created",
		"module", "academics/registrar-service",
		"layer", "application",
		"course_id", course.ID,
		"code", course.Code,
		"admin_id", actingAdminID,
	)
	return course, nil
}

func (s CatalogService) GetCourse(ctx context.Context, courseID int) (entities.Course, error) {
	return s.Repo.GetCourse(ctx, courseID)
}

func (s CatalogService) ListCourses(ctx context.Context) ([]entities.Course, error) {
	return s.Repo.ListCourses(ctx)
}

func (s CatalogService) UpdateCourse(
	ctx context.Context,
	courseID int,
	input ports.CourseInput,
	actingAdminID int,
) (entities.Course, error) {
	if _, err := requireRole(ctx, s.Repo, actingAdminID, entities.RoleAdmin); err != nil {
		return entities.Course{}, err
	}
	course, err := s.Repo.UpdateCourse(ctx, courseID, input)
	if err != nil {
		return entities.Course{}, err
	}
	ResolveLogger(s.Logger).Info("course updated",
		"event", "registrar_course_updated",
		"module", "academics/registrar-service",
		"layer", "application",
		"course_id", course.ID,
		"code", course.Code,
		"admin_id", actingAdminID,
	)
	return course, nil
}

// DeleteCourse removes the course and cascades to its enrollments in one
// store-level critical section.
func (s CatalogService) DeleteCourse(ctx context.Context, courseID int, actingAdminID int) error {
	if _, err := requireRole(ctx, s.Repo, actingAdminID, entities.RoleAdmin); err != nil {
		return err
	}
	cascaded, err := s.Repo.DeleteCourse(ctx, courseID)
	if err != nil {
		return err
	}
	ResolveLogger(s.Logger).Info("course deleted",
		"event", "registrar_course_deleted",
		"module", "academics/registrar-service",
		"layer", "application",
		"course_id", courseID,
		"admin_id", actingAdminID,
		"cascaded_enrollments", cascaded,
	)
	return nil
}
