package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	registrarservice "campus/contexts/academics/registrar-service"
	domainerrors "campus/contexts/academics/registrar-service/domain/errors"
	httptransport "campus/contexts/academics/registrar-service/transport/http"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "campus/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	handler   http.Handler
	logger    *slog.Logger
	addr      string
	registrar registrarservice.Module
}

func New(registrar registrarservice.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		registrar: registrar,
	}
	s.registerRoutes()
	s.handler = s.withRequestLog(s.mux)
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.handler)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /{$}", s.handleRoot)
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("POST /users", s.handleCreateUser)
	s.mux.HandleFunc("GET /users", s.handleListUsers)
	s.mux.HandleFunc("GET /users/{user_id}", s.handleGetUser)

	s.mux.HandleFunc("GET /courses", s.handleListCourses)
	s.mux.HandleFunc("GET /courses/{course_id}", s.handleGetCourse)
	s.mux.HandleFunc("POST /courses", s.handleCreateCourse)
	s.mux.HandleFunc("PUT /courses/{course_id}", s.handleUpdateCourse)
	s.mux.HandleFunc("DELETE /courses/{course_id}", s.handleDeleteCourse)

	s.mux.HandleFunc("POST /enrollments", s.handleEnroll)
	s.mux.HandleFunc("GET /enrollments", s.handleListAllEnrollments)
	s.mux.HandleFunc("DELETE /enrollments/{enrollment_id}", s.handleDeregisterSelf)
	s.mux.HandleFunc("DELETE /enrollments/admin/{enrollment_id}", s.handleForceDeregister)
	s.mux.HandleFunc("GET /enrollments/student/{user_id}", s.handleListEnrollmentsByStudent)
	s.mux.HandleFunc("GET /enrollments/course/{course_id}", s.handleListEnrollmentsByCourse)
}

// withRequestLog tags every request with an id and logs method/path/duration.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get("X-Request-Id"))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		started := time.Now()
		next.ServeHTTP(w, r)

		s.logger.Debug("http request handled",
			"event", "http_request_handled",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	})
}

func writeRegistrarDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrUserNotFound):
		writeRegistrarError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, domainerrors.ErrAdminNotFound):
		writeRegistrarError(w, http.StatusNotFound, "admin_not_found", err.Error())
	case errors.Is(err, domainerrors.ErrCourseNotFound):
		writeRegistrarError(w, http.StatusNotFound, "course_not_found", err.Error())
	case errors.Is(err, domainerrors.ErrEnrollmentNotFound):
		writeRegistrarError(w, http.StatusNotFound, "enrollment_not_found", err.Error())
	case errors.Is(err, domainerrors.ErrAdminRequired),
		errors.Is(err, domainerrors.ErrStudentRequired),
		errors.Is(err, domainerrors.ErrNotOwnEnrollment):
		writeRegistrarError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, domainerrors.ErrEmailTaken),
		errors.Is(err, domainerrors.ErrCourseCodeTaken),
		errors.Is(err, domainerrors.ErrAlreadyEnrolled):
		writeRegistrarError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeRegistrarError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeRegistrarError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, httptransport.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// pathID parses a numeric path segment.
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// resolveActorID reads the caller-asserted actor id from the named query
// parameter, falling back to the X-User-Id header. There is no credential:
// the id itself is the claimed identity.
func resolveActorID(r *http.Request, param string) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(param))
	if raw == "" {
		raw = strings.TrimSpace(r.Header.Get("X-User-Id"))
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
