package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

func RunMigrations(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS courses (
    id UUID PRIMARY KEY,
    user_id TEXT NOT NULL,
    from_emotion TEXT NOT NULL,
    to_emotion TEXT NOT NULL,
    context TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    completed BOOLEAN NOT NULL DEFAULT false,
    json_data JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_courses_user_created ON courses (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS course_progress (
    id UUID PRIMARY KEY,
    course_id UUID NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
    current_step INTEGER NOT NULL DEFAULT 0,
    initial_mood_rating INTEGER CHECK (initial_mood_rating BETWEEN 1 AND 10),
    final_mood_rating INTEGER CHECK (final_mood_rating BETWEEN 1 AND 10),
    earned_medal BOOLEAN NOT NULL DEFAULT false,
    last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_course_progress_course ON course_progress (course_id);
`
	_, err := db.ExecContext(context.Background(), schema)
	return err
}
