// Package store persists courses and progress records.
package store

import (
	"context"
	"errors"

	"dapper/internal/models"
)

// ErrNotFound is returned when a course or progress record does not exist.
var ErrNotFound = errors.New("record not found")

// CourseStore is the persistence surface the handlers depend on.
type CourseStore interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	// ListCoursesByUser returns the user's courses newest first.
	ListCoursesByUser(ctx context.Context, userID string) ([]models.Course, error)
	SetCourseCompleted(ctx context.Context, id string, completed bool) error

	CreateProgress(ctx context.Context, progress *models.Progress) error
	GetProgressByCourse(ctx context.Context, courseID string) (*models.Progress, error)
	UpdateProgress(ctx context.Context, progress *models.Progress) error
}
