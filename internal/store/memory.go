package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"dapper/internal/models"
)

// Memory is an in-process CourseStore. It backs tests and lets the service
// run without a database when DATABASE_URL is unset.
type Memory struct {
	mu       sync.RWMutex
	courses  map[string]models.Course
	progress map[string]models.Progress // keyed by progress ID
}

func NewMemory() *Memory {
	return &Memory{
		courses:  make(map[string]models.Course),
		progress: make(map[string]models.Progress),
	}
}

func (s *Memory) CreateCourse(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	s.courses[course.ID] = *course
	return nil
}

func (s *Memory) GetCourse(_ context.Context, id string) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	course, ok := s.courses[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &course, nil
}

func (s *Memory) ListCoursesByUser(_ context.Context, userID string) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Course{}
	for _, course := range s.courses {
		if course.UserID == userID {
			out = append(out, course)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Memory) SetCourseCompleted(_ context.Context, id string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	course, ok := s.courses[id]
	if !ok {
		return ErrNotFound
	}
	course.Completed = completed
	s.courses[id] = course
	return nil
}

func (s *Memory) CreateProgress(_ context.Context, progress *models.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if progress.ID == "" {
		progress.ID = uuid.NewString()
	}
	if progress.LastUpdated.IsZero() {
		progress.LastUpdated = time.Now().UTC()
	}
	s.progress[progress.ID] = *progress
	return nil
}

func (s *Memory) GetProgressByCourse(_ context.Context, courseID string) (*models.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, progress := range s.progress {
		if progress.CourseID == courseID {
			p := progress
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) UpdateProgress(_ context.Context, progress *models.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.progress[progress.ID]; !ok {
		return ErrNotFound
	}
	progress.LastUpdated = time.Now().UTC()
	s.progress[progress.ID] = *progress
	return nil
}
