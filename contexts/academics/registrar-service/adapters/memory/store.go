package memory

import (
	"context"
	"sync"

	"campus/contexts/academics/registrar-service/domain/entities"
	domainerrors "campus/contexts/academics/registrar-service/domain/errors"
	"campus/contexts/academics/registrar-service/ports"
)

type pairKey struct {
	UserID   int
	CourseID int
}

// Store is the in-memory backend implementing every registrar port. One
// mutex guards all three collections so that uniqueness checks and the
// course-deletion cascade run as single critical sections. Rows are kept in
// id-keyed maps with a separate insertion-order slice per collection;
// uniqueness indexes (email, code, user/course pair) track live rows only.
type Store struct {
	mu sync.RWMutex

	users     map[int]entities.User
	userOrder []int
	emails    map[string]int

	courses     map[int]entities.Course
	courseOrder []int
	codes       map[string]int

	enrollments     map[int]entities.Enrollment
	enrollmentOrder []int
	pairs           map[pairKey]int

	nextUserID       int
	nextCourseID     int
	nextEnrollmentID int
}

func NewStore() *Store {
	s := &Store{}
	s.clear()
	return s
}

func (s *Store) clear() {
	s.users = make(map[int]entities.User)
	s.userOrder = nil
	s.emails = make(map[string]int)
	s.courses = make(map[int]entities.Course)
	s.courseOrder = nil
	s.codes = make(map[string]int)
	s.enrollments = make(map[int]entities.Enrollment)
	s.enrollmentOrder = nil
	s.pairs = make(map[pairKey]int)
	s.nextUserID = 1
	s.nextCourseID = 1
	s.nextEnrollmentID = 1
}

// Reset drops every row and restarts all id counters at 1.
func (s *Store) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
	return nil
}

func (s *Store) CreateUser(_ context.Context, input ports.CreateUserInput) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emails[input.Email]; taken {
		return entities.User{}, domainerrors.ErrEmailTaken
	}
	user := entities.User{
		ID:    s.nextUserID,
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
	}
	s.nextUserID++
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	s.emails[user.Email] = user.ID
	return user, nil
}

func (s *Store) GetUser(_ context.Context, userID int) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) ListUsers(_ context.Context) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		items = append(items, s.users[id])
	}
	return items, nil
}

func (s *Store) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, taken := s.emails[email]
	return taken, nil
}

func (s *Store) CreateCourse(_ context.Context, input ports.CourseInput) (entities.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.codes[input.Code]; taken {
		return entities.Course{}, domainerrors.ErrCourseCodeTaken
	}
	course := entities.Course{
		ID:    s.nextCourseID,
		Title: input.Title,
		Code:  input.Code,
	}
	s.nextCourseID++
	s.courses[course.ID] = course
	s.courseOrder = append(s.courseOrder, course.ID)
	s.codes[course.Code] = course.ID
	return course, nil
}

func (s *Store) GetCourse(_ context.Context, courseID int) (entities.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[courseID]
	if !ok {
		return entities.Course{}, domainerrors.ErrCourseNotFound
	}
	return course, nil
}

func (s *Store) ListCourses(_ context.Context) ([]entities.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Course, 0, len(s.courseOrder))
	for _, id := range s.courseOrder {
		items = append(items, s.courses[id])
	}
	return items, nil
}

// UpdateCourse checks existence before the code-uniqueness rule; the course
// being updated is excluded from that rule so re-submitting its own code is
// not a conflict.
func (s *Store) UpdateCourse(_ context.Context, courseID int, input ports.CourseInput) (entities.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[courseID]
	if !ok {
		return entities.Course{}, domainerrors.ErrCourseNotFound
	}
	if holder, taken := s.codes[input.Code]; taken && holder != courseID {
		return entities.Course{}, domainerrors.ErrCourseCodeTaken
	}
	delete(s.codes, course.Code)
	course.Title = input.Title
	course.Code = input.Code
	s.courses[courseID] = course
	s.codes[course.Code] = courseID
	return course, nil
}

// DeleteCourse removes the course and cascades to every enrollment
// referencing it inside the same critical section, so no orphaned
// enrollment is ever observable. The freed code becomes reusable; ids are
// not.
func (s *Store) DeleteCourse(_ context.Context, courseID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[courseID]
	if !ok {
		return 0, domainerrors.ErrCourseNotFound
	}
	delete(s.courses, courseID)
	delete(s.codes, course.Code)
	s.courseOrder = removeID(s.courseOrder, courseID)

	cascaded := 0
	kept := s.enrollmentOrder[:0]
	for _, id := range s.enrollmentOrder {
		enrollment := s.enrollments[id]
		if enrollment.CourseID == courseID {
			delete(s.enrollments, id)
			delete(s.pairs, pairKey{UserID: enrollment.UserID, CourseID: courseID})
			cascaded++
			continue
		}
		kept = append(kept, id)
	}
	s.enrollmentOrder = kept
	return cascaded, nil
}

func (s *Store) CreateEnrollment(_ context.Context, userID int, courseID int) (entities.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[courseID]; !ok {
		return entities.Enrollment{}, domainerrors.ErrCourseNotFound
	}
	key := pairKey{UserID: userID, CourseID: courseID}
	if _, taken := s.pairs[key]; taken {
		return entities.Enrollment{}, domainerrors.ErrAlreadyEnrolled
	}
	enrollment := entities.Enrollment{
		ID:       s.nextEnrollmentID,
		UserID:   userID,
		CourseID: courseID,
	}
	s.nextEnrollmentID++
	s.enrollments[enrollment.ID] = enrollment
	s.enrollmentOrder = append(s.enrollmentOrder, enrollment.ID)
	s.pairs[key] = enrollment.ID
	return enrollment, nil
}

func (s *Store) GetEnrollment(_ context.Context, enrollmentID int) (entities.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enrollment, ok := s.enrollments[enrollmentID]
	if !ok {
		return entities.Enrollment{}, domainerrors.ErrEnrollmentNotFound
	}
	return enrollment, nil
}

func (s *Store) DeleteEnrollment(_ context.Context, enrollmentID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	enrollment, ok := s.enrollments[enrollmentID]
	if !ok {
		return domainerrors.ErrEnrollmentNotFound
	}
	delete(s.enrollments, enrollmentID)
	delete(s.pairs, pairKey{UserID: enrollment.UserID, CourseID: enrollment.CourseID})
	s.enrollmentOrder = removeID(s.enrollmentOrder, enrollmentID)
	return nil
}

func (s *Store) ListEnrollments(_ context.Context) ([]entities.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Enrollment, 0, len(s.enrollmentOrder))
	for _, id := range s.enrollmentOrder {
		items = append(items, s.enrollments[id])
	}
	return items, nil
}

func (s *Store) ListEnrollmentsByStudent(_ context.Context, userID int) ([]entities.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Enrollment, 0)
	for _, id := range s.enrollmentOrder {
		if enrollment := s.enrollments[id]; enrollment.UserID == userID {
			items = append(items, enrollment)
		}
	}
	return items, nil
}

func (s *Store) ListEnrollmentsByCourse(_ context.Context, courseID int) ([]entities.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.courses[courseID]; !ok {
		return nil, domainerrors.ErrCourseNotFound
	}
	items := make([]entities.Enrollment, 0)
	for _, id := range s.enrollmentOrder {
		if enrollment := s.enrollments[id]; enrollment.CourseID == courseID {
			items = append(items, enrollment)
		}
	}
	return items, nil
}

func (s *Store) EnrollmentExists(_ context.Context, userID int, courseID int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, taken := s.pairs[pairKey{UserID: userID, CourseID: courseID}]
	return taken, nil
}

func removeID(order []int, target int) []int {
	for i, id := range order {
		if id == target {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
