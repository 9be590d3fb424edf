package httpserver

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCourseMutationsRejectNonAdminActors(t *testing.T) {
	server := newTestServer()
	student := createTestUser(t, server, "Student", "student@example.com", "student")

	rr := doJSON(t, server, http.MethodPost, "/courses", map[string]any{
		"title": "Intro", "code": "CS101", "admin_id": student.ID,
	})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("create by student: expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPut, "/courses/1", map[string]any{
		"title": "Intro", "code": "CS101", "admin_id": student.ID,
	})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("update by student: expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	// Authorization precedes existence: the course does not exist, but the
	// actor failure is what gets reported.
	rr = doJSON(t, server, http.MethodDelete,
		fmt.Sprintf("/courses/999?admin_id=%d", student.ID), nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("delete by student: expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/courses", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list courses: expected 200, got %d", rr.Code)
	}
	courses := decodeBody[[]courseBody](t, rr)
	if len(courses) != 0 {
		t.Fatalf("forbidden attempts must not mutate, got %+v", courses)
	}
}

func TestUnknownAdminActorIsNotFound(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/courses", map[string]any{
		"title": "Intro", "code": "CS101", "admin_id": 777,
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown admin, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminsCannotEnrollThemselves(t *testing.T) {
	server := newTestServer()
	admin := createTestUser(t, server, "Admin", "admin@example.com", "admin")
	doJSON(t, server, http.MethodPost, "/courses", map[string]any{
		"title": "Intro", "code": "CS101", "admin_id": admin.ID,
	})

	rr := doJSON(t, server, http.MethodPost, "/enrollments", map[string]any{
		"user_id": admin.ID, "course_id": 1,
	})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for admin enrolling, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestStudentsCannotDeregisterOthersEnrollments(t *testing.T) {
	server := newTestServer()
	admin := createTestUser(t, server, "Admin", "admin@example.com", "admin")
	owner := createTestUser(t, server, "Owner", "owner@example.com", "student")
	intruder := createTestUser(t, server, "Intruder", "intruder@example.com", "student")

	doJSON(t, server, http.MethodPost, "/courses", map[string]any{
		"title": "Intro", "code": "CS101", "admin_id": admin.ID,
	})
	rr := doJSON(t, server, http.MethodPost, "/enrollments", map[string]any{
		"user_id": owner.ID, "course_id": 1,
	})
	enrollment := decodeBody[enrollmentBody](t, rr)

	rr = doJSON(t, server, http.MethodDelete,
		fmt.Sprintf("/enrollments/%d?user_id=%d", enrollment.ID, intruder.ID), nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign enrollment, got %d body=%s", rr.Code, rr.Body.String())
	}

	// Ledger unchanged; the owner can still deregister.
	rr = doJSON(t, server, http.MethodDelete,
		fmt.Sprintf("/enrollments/%d?user_id=%d", enrollment.ID, owner.ID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("owner deregistration: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminListingsRequireAdminActor(t *testing.T) {
	server := newTestServer()
	student := createTestUser(t, server, "Student", "student@example.com", "student")

	rr := doJSON(t, server, http.MethodGet, fmt.Sprintf("/enrollments?admin_id=%d", student.ID), nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("list all by student: expected 403, got %d", rr.Code)
	}

	rr = doJSON(t, server, http.MethodGet, "/enrollments", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("missing admin_id: expected 400, got %d", rr.Code)
	}

	rr = doJSON(t, server, http.MethodGet,
		fmt.Sprintf("/enrollments/course/1?admin_id=%d", student.ID), nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("list by course by student: expected 403, got %d", rr.Code)
	}
}

func TestForceDeregisterIsAdminOnly(t *testing.T) {
	server := newTestServer()
	admin := createTestUser(t, server, "Admin", "admin@example.com", "admin")
	student := createTestUser(t, server, "Student", "student@example.com", "student")

	doJSON(t, server, http.MethodPost, "/courses", map[string]any{
		"title": "Intro", "code": "CS101", "admin_id": admin.ID,
	})
	rr := doJSON(t, server, http.MethodPost, "/enrollments", map[string]any{
		"user_id": student.ID, "course_id": 1,
	})
	enrollment := decodeBody[enrollmentBody](t, rr)

	rr = doJSON(t, server, http.MethodDelete,
		fmt.Sprintf("/enrollments/admin/%d?admin_id=%d", enrollment.ID, student.ID), nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("force deregister by student: expected 403, got %d", rr.Code)
	}

	rr = doJSON(t, server, http.MethodDelete,
		fmt.Sprintf("/enrollments/admin/%d?admin_id=%d", enrollment.ID, admin.ID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("force deregister by admin: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestActorIDFallsBackToUserHeader(t *testing.T) {
	server := newTestServer()
	admin := createTestUser(t, server, "Admin", "admin@example.com", "admin")

	req := newRequestWithHeader(http.MethodGet, "/enrollments", "X-User-Id", fmt.Sprint(admin.ID))
	rr := serve(server, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected header fallback to authorize, got %d body=%s", rr.Code, rr.Body.String())
	}
}
