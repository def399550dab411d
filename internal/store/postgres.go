package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"dapper/internal/models"
)

// Postgres implements CourseStore over a Postgres connection.
type Postgres struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPostgres(db *sqlx.DB, logger *zap.Logger) *Postgres {
	return &Postgres{db: db, logger: logger}
}

func (s *Postgres) CreateCourse(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	var createdAt time.Time
	err := s.db.QueryRowxContext(ctx,
		`INSERT INTO courses (id, user_id, from_emotion, to_emotion, context, json_data)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		course.ID, course.UserID, course.FromEmotion, course.ToEmotion, course.Context, []byte(course.JSONData),
	).Scan(&createdAt)
	if err != nil {
		s.logger.Error("[Postgres] Could not create course",
			zap.Error(err), zap.String("user_id", course.UserID))
		return fmt.Errorf("create course: %w", err)
	}
	course.CreatedAt = createdAt
	return nil
}

func (s *Postgres) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	err := s.db.GetContext(ctx, &course,
		`SELECT id, user_id, from_emotion, to_emotion, context, created_at, completed, json_data
		 FROM courses WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error("[Postgres] Could not get course", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("get course: %w", err)
	}
	return &course, nil
}

func (s *Postgres) ListCoursesByUser(ctx context.Context, userID string) ([]models.Course, error) {
	courses := []models.Course{}
	err := s.db.SelectContext(ctx, &courses,
		`SELECT id, user_id, from_emotion, to_emotion, context, created_at, completed, json_data
		 FROM courses WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		s.logger.Error("[Postgres] Could not list courses", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (s *Postgres) SetCourseCompleted(ctx context.Context, id string, completed bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE courses SET completed=$1 WHERE id=$2`, completed, id)
	if err != nil {
		s.logger.Error("[Postgres] Could not update course completion", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("set course completed: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) CreateProgress(ctx context.Context, progress *models.Progress) error {
	if progress.ID == "" {
		progress.ID = uuid.NewString()
	}
	var lastUpdated time.Time
	err := s.db.QueryRowxContext(ctx,
		`INSERT INTO course_progress (id, course_id, current_step, initial_mood_rating, final_mood_rating, earned_medal)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING last_updated`,
		progress.ID, progress.CourseID, progress.CurrentStep,
		progress.InitialMoodRating, progress.FinalMoodRating, progress.EarnedMedal,
	).Scan(&lastUpdated)
	if err != nil {
		s.logger.Error("[Postgres] Could not create progress",
			zap.Error(err), zap.String("course_id", progress.CourseID))
		return fmt.Errorf("create progress: %w", err)
	}
	progress.LastUpdated = lastUpdated
	return nil
}

func (s *Postgres) GetProgressByCourse(ctx context.Context, courseID string) (*models.Progress, error) {
	var progress models.Progress
	err := s.db.GetContext(ctx, &progress,
		`SELECT id, course_id, current_step, initial_mood_rating, final_mood_rating, earned_medal, last_updated
		 FROM course_progress WHERE course_id=$1`, courseID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error("[Postgres] Could not get progress", zap.Error(err), zap.String("course_id", courseID))
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return &progress, nil
}

func (s *Postgres) UpdateProgress(ctx context.Context, progress *models.Progress) error {
	var lastUpdated time.Time
	err := s.db.QueryRowxContext(ctx,
		`UPDATE course_progress
		 SET current_step=$1, initial_mood_rating=$2, final_mood_rating=$3, earned_medal=$4, last_updated=NOW()
		 WHERE id=$5
		 RETURNING last_updated`,
		progress.CurrentStep, progress.InitialMoodRating, progress.FinalMoodRating, progress.EarnedMedal, progress.ID,
	).Scan(&lastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		s.logger.Error("[Postgres] Could not update progress", zap.Error(err), zap.String("id", progress.ID))
		return fmt.Errorf("update progress: %w", err)
	}
	progress.LastUpdated = lastUpdated
	return nil
}
