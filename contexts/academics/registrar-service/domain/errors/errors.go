package errors

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAdminNotFound      = errors.New("admin user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	ErrAdminRequired    = errors.New("only admins can perform this action")
	ErrStudentRequired  = errors.New("only students can perform this action")
	ErrNotOwnEnrollment = errors.New("students can only deregister their own enrollments")

	ErrEmailTaken      = errors.New("email already registered")
	ErrCourseCodeTaken = errors.New("course code already exists")
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this course")
)
