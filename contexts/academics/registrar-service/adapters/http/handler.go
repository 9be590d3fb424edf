package httpadapter

import (
	"context"
	"log/slog"

	"campus/contexts/academics/registrar-service/application"
	"campus/contexts/academics/registrar-service/domain/entities"
	"campus/contexts/academics/registrar-service/ports"
	httptransport "campus/contexts/academics/registrar-service/transport/http"
)

// Handler maps HTTP DTOs to application operations.
type Handler struct {
	Identity application.IdentityService
	Catalog  application.CatalogService
	Ledger   application.LedgerService
	Logger   *slog.Logger
}

func (h Handler) CreateUserHandler(
	ctx context.Context,
	request httptransport.CreateUserRequest,
	role entities.Role,
) (httptransport.UserResponse, error) {
	user, err := h.Identity.CreateUser(ctx, ports.CreateUserInput{
		Name:  request.Name,
		Email: request.Email,
		Role:  role,
	})
	if err != nil {
		application.ResolveLogger(h.Logger).Error("http create user failed",
			"event", "registrar_http_create_user_failed",
			"module", "academics/registrar-service",
			"layer", "transport",
			"email", request.Email,
			"error", err.Error(),
		)
		return httptransport.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (h Handler) GetUserHandler(ctx context.Context, userID int) (httptransport.UserResponse, error) {
	user, err := h.Identity.GetUser(ctx, userID)
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (h Handler) ListUsersHandler(ctx context.Context) ([]httptransport.UserResponse, error) {
	users, err := h.Identity.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, toUserResponse(user))
	}
	return items, nil
}

func (h Handler) CreateCourseHandler(
	ctx context.Context,
	request httptransport.CreateCourseRequest,
) (httptransport.CourseResponse, error) {
	course, err := h.Catalog.CreateCourse(ctx, ports.CourseInput{
		Title: request.Title,
		Code:  request.Code,
	}, request.AdminID)
	if err != nil {
		application.ResolveLogger(h.Logger).Error("http create course failed",
			"event", "registrar_http_create_course_failed",
			"module", "academics/registrar-service",
			"layer", "transport",
			"code", request.Code,
			"admin_id", request.AdminID,
			"error", err.Error(),
		)
		return httptransport.CourseResponse{}, err
	}
	return toCourseResponse(course), nil
}

func (h Handler) GetCourseHandler(ctx context.Context, courseID int) (httptransport.CourseResponse, error) {
	course, err := h.Catalog.GetCourse(ctx, courseID)
	if err != nil {
		return httptransport.CourseResponse{}, err
	}
	return toCourseResponse(course), nil
}

func (h Handler) ListCoursesHandler(ctx context.Context) ([]httptransport.CourseResponse, error) {
	courses, err := h.Catalog.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.CourseResponse, 0, len(courses))
	for _, course := range courses {
		items = append(items, toCourseResponse(course))
	}
	return items, nil
}

func (h Handler) UpdateCourseHandler(
	ctx context.Context,
	courseID int,
	request httptransport.UpdateCourseRequest,
) (httptransport.CourseResponse, error) {
	course, err := h.Catalog.UpdateCourse(ctx, courseID, ports.CourseInput{
		Title: request.Title,
		Code:  request.Code,
	}, request.AdminID)
	if err != nil {
		return httptransport.CourseResponse{}, err
	}
	return toCourseResponse(course), nil
}

func (h Handler) DeleteCourseHandler(ctx context.Context, courseID int, adminID int) error {
	return h.Catalog.DeleteCourse(ctx, courseID, adminID)
}

func (h Handler) EnrollHandler(
	ctx context.Context,
	request httptransport.EnrollRequest,
) (httptransport.EnrollmentResponse, error) {
	enrollment, err := h.Ledger.Enroll(ctx, request.UserID, request.CourseID)
	if err != nil {
		application.ResolveLogger(h.Logger).Error("http enroll failed",
			"event", "registrar_http_enroll_failed",
			"module", "academics/registrar-service",
			"layer", "transport",
			"user_id", request.UserID,
			"course_id", request.CourseID,
			"error", err.Error(),
		)
		return httptransport.EnrollmentResponse{}, err
	}
	return toEnrollmentResponse(enrollment), nil
}

func (h Handler) DeregisterSelfHandler(ctx context.Context, enrollmentID int, actingUserID int) error {
	return h.Ledger.DeregisterSelf(ctx, enrollmentID, actingUserID)
}

func (h Handler) ForceDeregisterHandler(ctx context.Context, enrollmentID int, actingAdminID int) error {
	return h.Ledger.ForceDeregister(ctx, enrollmentID, actingAdminID)
}

func (h Handler) ListEnrollmentsByStudentHandler(ctx context.Context, userID int) ([]httptransport.EnrollmentResponse, error) {
	enrollments, err := h.Ledger.ListByStudent(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toEnrollmentResponses(enrollments), nil
}

func (h Handler) ListEnrollmentsByCourseHandler(
	ctx context.Context,
	courseID int,
	actingAdminID int,
) ([]httptransport.EnrollmentResponse, error) {
	enrollments, err := h.Ledger.ListByCourse(ctx, courseID, actingAdminID)
	if err != nil {
		return nil, err
	}
	return toEnrollmentResponses(enrollments), nil
}

func (h Handler) ListAllEnrollmentsHandler(ctx context.Context, actingAdminID int) ([]httptransport.EnrollmentResponse, error) {
	enrollments, err := h.Ledger.ListAll(ctx, actingAdminID)
	if err != nil {
		return nil, err
	}
	return toEnrollmentResponses(enrollments), nil
}

func toUserResponse(user entities.User) httptransport.UserResponse {
	return httptransport.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

func toCourseResponse(course entities.Course) httptransport.CourseResponse {
	return httptransport.CourseResponse{
		ID:    course.ID,
		Title: course.Title,
		Code:  course.Code,
	}
}

func toEnrollmentResponse(enrollment entities.Enrollment) httptransport.EnrollmentResponse {
	return httptransport.EnrollmentResponse{
		ID:       enrollment.ID,
		UserID:   enrollment.UserID,
		CourseID: enrollment.CourseID,
	}
}

func toEnrollmentResponses(enrollments []entities.Enrollment) []httptransport.EnrollmentResponse {
	items := make([]httptransport.EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		items = append(items, toEnrollmentResponse(enrollment))
	}
	return items
}
