package entities

import "fmt"

// Role is the access level a user holds. Roles are assigned at creation and
// never change afterwards.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a wire value onto a known role.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// User is an identity known to the registrar. Immutable once created.
type User struct {
	ID    int
	Name  string
	Email string
	Role  Role
}

// Course is a catalog entry. Title and code are admin-mutable; the id is not.
type Course struct {
	ID    int
	Title string
	Code  string
}

// Enrollment links one student to one course by id. It holds no embedded
// copies, so registry and catalog stay the source of truth for their rows.
type Enrollment struct {
	ID       int
	UserID   int
	CourseID int
}
