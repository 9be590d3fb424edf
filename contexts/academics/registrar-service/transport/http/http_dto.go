package httptransport

// CreateUserRequest is the request body for user registration.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserResponse describes one user.
type UserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// CreateCourseRequest carries the course fields plus the acting admin id.
type CreateCourseRequest struct {
	Title   string `json:"title"`
	Code    string `json:"code"`
	AdminID int    `json:"admin_id"`
}

// UpdateCourseRequest mirrors CreateCourseRequest; the course id rides the
// URL path.
type UpdateCourseRequest struct {
	Title   string `json:"title"`
	Code    string `json:"code"`
	AdminID int    `json:"admin_id"`
}

type CourseResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Code  string `json:"code"`
}

// EnrollRequest carries the enrolling student and the target course.
type EnrollRequest struct {
	UserID   int `json:"user_id"`
	CourseID int `json:"course_id"`
}

type EnrollmentResponse struct {
	ID       int `json:"id"`
	UserID   int `json:"user_id"`
	CourseID int `json:"course_id"`
}

// DetailResponse is the body for delete confirmations.
type DetailResponse struct {
	Detail string `json:"detail"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
