package models

import (
	"encoding/json"
	"time"
)

// Course stores one generated emotional journey. The payload in JSONData is
// opaque to the rest of the service: it is persisted and returned verbatim.
type Course struct {
	ID          string          `db:"id" json:"id"`
	UserID      string          `db:"user_id" json:"user_id"` // External user ID, opaque string
	FromEmotion string          `db:"from_emotion" json:"from_emotion"`
	ToEmotion   string          `db:"to_emotion" json:"to_emotion"`
	Context     string          `db:"context" json:"context"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	Completed   bool            `db:"completed" json:"completed"`
	JSONData    json.RawMessage `db:"json_data" json:"json_data"`
}

// Progress tracks a user's position in a course. One row per course in
// practice, created alongside it.
type Progress struct {
	ID                string    `db:"id" json:"id"`
	CourseID          string    `db:"course_id" json:"course_id"`
	CurrentStep       int       `db:"current_step" json:"current_step"`
	InitialMoodRating *int      `db:"initial_mood_rating" json:"initial_mood_rating"`
	FinalMoodRating   *int      `db:"final_mood_rating" json:"final_mood_rating"`
	EarnedMedal       bool      `db:"earned_medal" json:"earned_medal"`
	LastUpdated       time.Time `db:"last_updated" json:"last_updated"`
}
