package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"dapper/internal/models"
)

// CourseDTO keeps created_at as an RFC3339 string and carries the stored
// journey document verbatim.
type CourseDTO struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	FromEmotion string          `json:"from_emotion"`
	ToEmotion   string          `json:"to_emotion"`
	Context     string          `json:"context"`
	CreatedAt   string          `json:"created_at"`
	Completed   bool            `json:"completed"`
	JSONData    json.RawMessage `json:"json_data"`
}

type ProgressDTO struct {
	ID                string `json:"id"`
	CourseID          string `json:"course_id"`
	CurrentStep       int    `json:"current_step"`
	InitialMoodRating *int   `json:"initial_mood_rating"`
	FinalMoodRating   *int   `json:"final_mood_rating"`
	EarnedMedal       bool   `json:"earned_medal"`
	LastUpdated       string `json:"last_updated"`
}

func ToCourseDTO(c models.Course) CourseDTO {
	return CourseDTO{
		ID:          c.ID,
		UserID:      c.UserID,
		FromEmotion: c.FromEmotion,
		ToEmotion:   c.ToEmotion,
		Context:     c.Context,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		Completed:   c.Completed,
		JSONData:    c.JSONData,
	}
}

func ToProgressDTO(p models.Progress) ProgressDTO {
	return ProgressDTO{
		ID:                p.ID,
		CourseID:          p.CourseID,
		CurrentStep:       p.CurrentStep,
		InitialMoodRating: p.InitialMoodRating,
		FinalMoodRating:   p.FinalMoodRating,
		EarnedMedal:       p.EarnedMedal,
		LastUpdated:       p.LastUpdated.Format(time.RFC3339),
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
