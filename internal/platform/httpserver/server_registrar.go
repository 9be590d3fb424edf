package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"campus/contexts/academics/registrar-service/domain/entities"
	httptransport "campus/contexts/academics/registrar-service/transport/http"
)

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Course Enrollment Management API",
		"version": "1.0.0",
		"status":  "active",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req httptransport.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistrarError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeRegistrarError(w, http.StatusUnprocessableEntity, "validation_error", "name must not be empty")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeRegistrarError(w, http.StatusUnprocessableEntity, "validation_error", "email must be a valid email address")
		return
	}
	role, err := entities.ParseRole(req.Role)
	if err != nil {
		writeRegistrarError(w, http.StatusUnprocessableEntity, "validation_error", "role must be 'student' or 'admin'")
		return
	}

	resp, err := s.registrar.Handler.CreateUserHandler(r.Context(), req, role)
	if err != nil {
		writeRegistrarDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.registrar.Handler.ListUsersHandler(r.Context())
	if err != nil {
		writeRegistrarDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "user_id")
	if !ok {
		writeRegistrarError(w, http.StatusBadRequest, "invalid_id", "user id must be a positive integer")
		return
	}
	resp, err := s.registrar.Handler.GetUserHandler(r.Context(), userID)
	if err != nil {
		writeRegistrarDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	resp, err := s.registrar.Handler.ListCoursesHandler(r.Context())
	if err != nil {
		writeRegistrarDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r, "course_id")
	if !ok {
		writeRegistrarError(w, http.StatusBadRequest, "invalid_id", "course id must be a positive integer")
		return
	}
	resp, err := s.registrar.Handler.GetCourseHandler(r.Context(), courseID)
	if err != nil {
		writeRegistrarDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var req httptransport.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistrarError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if message, ok := validateCourseFields(req.Title, req.Code); !ok {
		writeRegistrarError(w, http.StatusUnprocessableEntity, "validation_error", message)
		return
	}

	resp, err := s.registrar.Handler.CreateCourseHandler(r.Context(), req)
	if err != nil {
		writeRegistrarDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r, "course_id")
	if !ok {
		writeRegistrarError(w, http.StatusBadRequest, "invalid_id", "course id must be a positive integer")
		return
	}
	var req httptransport.UpdateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistrarError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if message, ok := validateCourseFields(req.Title, req.Code); !ok {
		writeRegistrarError(w, http.StatusUnprocessableEntity, "validation_error", message)
		return
	}

	resp, err := s.registrar.Handler.UpdateCourseHandler(r.Context(), courseID, req)
	if err != nil {
		writeRegistrarDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r, "course_id")
	if !ok {
		writeRegistrarError(w, http.StatusBadRequest, "invalid_id", "course id must be a positive integer")
		return
	}
	adminID, ok := resolveActorID(r, "admin_id")
	if !ok {
		writeRegistrarError(w, http.StatusBadRequest, "missing_actor", "admin_id is required")
		return
	}

	if err := s.registrar.Handler.DeleteCourseHandler(r.Context(), courseID, adminID); err != nil {
		writeRegistrarDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, httptransport.DetailResponse{Detail: "Course deleted successfully"})
}

func (s *Server) handleEnroll(w http.ResponseWriter, r *http.Request) {
	var req httptransport.EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistrarError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.registrar.Handler.EnrollHandler(r.Context(), req)
	if err != nil {
		writeRegistrarDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListAllEnrollments(w http.ResponseWriter, r *http.Request) {
	adminID, ok := resolveActorID(r, "admin_id")
	if !ok {
		writeRegistrarError(w, http.StatusBadRequest, "missing_actor", "admin_id is required")
		return
	}
	resp, err := s.registrar.Handler.ListAllEnrollmentsHandler(r.Context(), adminID)
	if err != nil {
		writeRegistrarDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeregisterSelf(w http.ResponseWriter, r *http.Request) {
	enrollmentID, ok := pathID(r, "enrollment_id")
	if !ok {
		writeRegistrarError(w, http.StatusBadRequest, "invalid_id", "enrollment id must be a positive integer")
		return
	}
	userID, ok := resolveActorID(r, "user_id")
	if !ok {
		writeRegistrarError(w, http.StatusBadRequest, "missing_actor", "user_id is required")
		return
	}

	if err := s.registrar.Handler.DeregisterSelfHandler(r.Context(), enrollmentID, userID); err != nil {
		writeRegistrarDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, httptransport.DetailResponse{Detail: "Successfully deregistered from course"})
}

func (s *Server) handleForceDeregister(w http.ResponseWriter, r *http.Request) {
	enrollmentID, ok := pathID(r, "enrollment_id")
	if !ok {
		writeRegistrarError(w, http.StatusBadRequest, "invalid_id", "enrollment id must be a positive integer")
		return
	}
	adminID, ok := resolveActorID(r, "admin_id")
	if !ok {
		writeRegistrarError(w, http.StatusBadRequest, "missing_actor", "admin_id is required")
		return
	}

	if err := s.registrar.Handler.ForceDeregisterHandler(r.Context(), enrollmentID, adminID); err != nil {
		writeRegistrarDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, httptransport.DetailResponse{Detail: "Student successfully deregistered by admin"})
}

func (s *Server) handleListEnrollmentsByStudent(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "user_id")
	if !ok {
		writeRegistrarError(w, http.StatusBadRequest, "invalid_id", "user id must be a positive integer")
		return
	}
	resp, err := s.registrar.Handler.ListEnrollmentsByStudentHandler(r.Context(), userID)
	if err != nil {
		writeRegistrarDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListEnrollmentsByCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r, "course_id")
	if !ok {
		writeRegistrarError(w, http.StatusBadRequest, "invalid_id", "course id must be a positive integer")
		return
	}
	adminID, ok := resolveActorID(r, "admin_id")
	if !ok {
		writeRegistrarError(w, http.StatusBadRequest, "missing_actor", "admin_id is required")
		return
	}
	resp, err := s.registrar.Handler.ListEnrollmentsByCourseHandler(r.Context(), courseID, adminID)
	if err != nil {
		writeRegistrarDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func validateCourseFields(title string, code string) (string, bool) {
	if strings.TrimSpace(title) == "" {
		return "title must not be empty", false
	}
	if strings.TrimSpace(code) == "" {
		return "code must not be empty", false
	}
	return "", true
}
