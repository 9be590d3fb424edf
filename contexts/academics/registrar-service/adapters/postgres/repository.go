package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"campus/contexts/academics/registrar-service/domain/entities"
	domainerrors "campus/contexts/academics/registrar-service/domain/errors"
	"campus/contexts/academics/registrar-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repository is the gorm-backed Store implementation. Uniqueness rules are
// enforced by database constraints and translated back into the same
// sentinel errors the memory backend returns; the course-deletion cascade
// runs inside one transaction.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the registrar tables and their unique indexes.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&userModel{}, &courseModel{}, &enrollmentModel{})
}

type userModel struct {
	ID    int    `gorm:"primaryKey"`
	Name  string `gorm:"not null"`
	Email string `gorm:"uniqueIndex;not null"`
	Role  string `gorm:"not null"`
}

func (userModel) TableName() string { return "registrar_users" }

func (m userModel) toEntity() entities.User {
	return entities.User{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
		Role:  entities.Role(m.Role),
	}
}

type courseModel struct {
	ID    int    `gorm:"primaryKey"`
	Title string `gorm:"not null"`
	Code  string `gorm:"uniqueIndex;not null"`
}

func (courseModel) TableName() string { return "registrar_courses" }

func (m courseModel) toEntity() entities.Course {
	return entities.Course{
		ID:    m.ID,
		Title: m.Title,
		Code:  m.Code,
	}
}

type enrollmentModel struct {
	ID       int `gorm:"primaryKey"`
	UserID   int `gorm:"uniqueIndex:idx_registrar_enrollment_pair;not null"`
	CourseID int `gorm:"uniqueIndex:idx_registrar_enrollment_pair;not null"`
}

func (enrollmentModel) TableName() string { return "registrar_enrollments" }

func (m enrollmentModel) toEntity() entities.Enrollment {
	return entities.Enrollment{
		ID:       m.ID,
		UserID:   m.UserID,
		CourseID: m.CourseID,
	}
}

func (r *Repository) CreateUser(ctx context.Context, input ports.CreateUserInput) (entities.User, error) {
	row := userModel{
		Name:  input.Name,
		Email: input.Email,
		Role:  string(input.Role),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.User{}, domainerrors.ErrEmailTaken
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetUser(ctx context.Context, userID int) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]entities.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("email = ?", email).
		Count(&count).
		Error
	return count > 0, err
}

func (r *Repository) CreateCourse(ctx context.Context, input ports.CourseInput) (entities.Course, error) {
	row := courseModel{
		Title: input.Title,
		Code:  input.Code,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Course{}, domainerrors.ErrCourseCodeTaken
		}
		return entities.Course{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetCourse(ctx context.Context, courseID int) (entities.Course, error) {
	var row courseModel
	err := r.db.WithContext(ctx).Where("id = ?", courseID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Course{}, domainerrors.ErrCourseNotFound
		}
		return entities.Course{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListCourses(ctx context.Context) ([]entities.Course, error) {
	var rows []courseModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Course, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateCourse(ctx context.Context, courseID int, input ports.CourseInput) (entities.Course, error) {
	var updated courseModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row courseModel
		if err := tx.Where("id = ?", courseID).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrCourseNotFound
			}
			return err
		}
		row.Title = input.Title
		row.Code = input.Code
		if err := tx.Save(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrCourseCodeTaken
			}
			return err
		}
		updated = row
		return nil
	})
	if err != nil {
		return entities.Course{}, err
	}
	return updated.toEntity(), nil
}

func (r *Repository) DeleteCourse(ctx context.Context, courseID int) (int, error) {
	cascaded := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", courseID).Delete(&courseModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrCourseNotFound
		}
		enrollments := tx.Where("course_id = ?", courseID).Delete(&enrollmentModel{})
		if enrollments.Error != nil {
			return enrollments.Error
		}
		cascaded = int(enrollments.RowsAffected)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return cascaded, nil
}

func (r *Repository) CreateEnrollment(ctx context.Context, userID int, courseID int) (entities.Enrollment, error) {
	var created enrollmentModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course courseModel
		if err := tx.Where("id = ?", courseID).First(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrCourseNotFound
			}
			return err
		}
		row := enrollmentModel{
			UserID:   userID,
			CourseID: courseID,
		}
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrAlreadyEnrolled
			}
			return err
		}
		created = row
		return nil
	})
	if err != nil {
		return entities.Enrollment{}, err
	}
	return created.toEntity(), nil
}

func (r *Repository) GetEnrollment(ctx context.Context, enrollmentID int) (entities.Enrollment, error) {
	var row enrollmentModel
	err := r.db.WithContext(ctx).Where("id = ?", enrollmentID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Enrollment{}, domainerrors.ErrEnrollmentNotFound
		}
		return entities.Enrollment{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteEnrollment(ctx context.Context, enrollmentID int) error {
	result := r.db.WithContext(ctx).Where("id = ?", enrollmentID).Delete(&enrollmentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEnrollmentNotFound
	}
	return nil
}

func (r *Repository) ListEnrollments(ctx context.Context) ([]entities.Enrollment, error) {
	var rows []enrollmentModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toEnrollmentEntities(rows), nil
}

func (r *Repository) ListEnrollmentsByStudent(ctx context.Context, userID int) ([]entities.Enrollment, error) {
	var rows []enrollmentModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return toEnrollmentEntities(rows), nil
}

func (r *Repository) ListEnrollmentsByCourse(ctx context.Context, courseID int) ([]entities.Enrollment, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&courseModel{}).Where("id = ?", courseID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domainerrors.ErrCourseNotFound
	}
	var rows []enrollmentModel
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("id").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return toEnrollmentEntities(rows), nil
}

func (r *Repository) EnrollmentExists(ctx context.Context, userID int, courseID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&enrollmentModel{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).
		Error
	return count > 0, err
}

// Reset truncates every registrar table and restarts the id sequences.
func (r *Repository) Reset(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec(
		"TRUNCATE registrar_enrollments, registrar_courses, registrar_users RESTART IDENTITY",
	).Error
}

func toEnrollmentEntities(rows []enrollmentModel) []entities.Enrollment {
	items := make([]entities.Enrollment, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
