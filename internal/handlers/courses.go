package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"dapper/internal/journey"
	"dapper/internal/models"
	"dapper/internal/store"
)

const defaultTargetEmotion = "happy"

// medalThreshold is the final mood rating at which the medal is earned and
// the course marked complete.
const medalThreshold = 5

type CourseHandler struct {
	store     store.CourseStore
	generator *journey.Generator
	logger    *zap.Logger
}

func NewCourseHandler(s store.CourseStore, g *journey.Generator, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{store: s, generator: g, logger: logger}
}

type generateRequest struct {
	UserID        string `json:"user_id"`
	Mood          string `json:"mood"`
	Context       string `json:"context"`
	TargetEmotion string `json:"target_emotion"`
}

// Generate creates a new course for the caller's emotion pair and returns
// the journey document. Every call creates a new course.
func (h *CourseHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.Mood == "" || req.Context == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields. Please provide user_id, mood, and context.")
		return
	}
	if req.TargetEmotion == "" {
		req.TargetEmotion = defaultTargetEmotion
	}

	payload := h.generator.Generate(r.Context(), req.Mood, req.TargetEmotion, req.Context)

	course := models.Course{
		UserID:      req.UserID,
		FromEmotion: req.Mood,
		ToEmotion:   req.TargetEmotion,
		Context:     req.Context,
		JSONData:    payload,
	}
	if err := h.store.CreateCourse(r.Context(), &course); err != nil {
		respondError(w, http.StatusInternalServerError, "could not save course")
		return
	}

	progress := models.Progress{CourseID: course.ID}
	if err := h.store.CreateProgress(r.Context(), &progress); err != nil {
		// The course row already exists; the progress writer heals this on
		// the next update.
		h.logger.Error("[Courses] Could not create initial progress",
			zap.Error(err), zap.String("course_id", course.ID))
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}

type progressRequest struct {
	CurrentStep *int `json:"current_step"`
	MoodRating  *int `json:"mood_rating"`
}

// UpdateProgress advances a user through a course and records mood ratings.
// A rating is classified against the step as stored before this request's
// step change is applied.
func (h *CourseHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")
	if _, err := uuid.Parse(courseID); err != nil {
		// A malformed id cannot name a course, and would trip the UUID
		// column before the row lookup ever runs.
		respondError(w, http.StatusNotFound, "Course not found")
		return
	}

	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CurrentStep != nil && *req.CurrentStep < 0 {
		respondError(w, http.StatusBadRequest, "current_step must not be negative")
		return
	}
	if req.MoodRating != nil && (*req.MoodRating < 1 || *req.MoodRating > 10) {
		respondError(w, http.StatusBadRequest, "mood_rating must be between 1 and 10")
		return
	}

	course, err := h.store.GetCourse(r.Context(), courseID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Course not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not load course")
		return
	}

	progress, err := h.store.GetProgressByCourse(r.Context(), course.ID)
	if errors.Is(err, store.ErrNotFound) {
		// Course and progress are written non-atomically at creation; heal a
		// missing row instead of failing the update.
		progress = &models.Progress{CourseID: course.ID}
		if err := h.store.CreateProgress(r.Context(), progress); err != nil {
			respondError(w, http.StatusInternalServerError, "could not load progress")
			return
		}
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "could not load progress")
		return
	}

	stepBefore := progress.CurrentStep
	if req.CurrentStep != nil {
		progress.CurrentStep = *req.CurrentStep
	}
	if req.MoodRating != nil {
		rating := *req.MoodRating
		if stepBefore == 0 {
			progress.InitialMoodRating = &rating
		} else {
			progress.FinalMoodRating = &rating
			if rating >= medalThreshold {
				progress.EarnedMedal = true
				if err := h.store.SetCourseCompleted(r.Context(), course.ID, true); err != nil {
					respondError(w, http.StatusInternalServerError, "could not update course")
					return
				}
			}
		}
	}

	if err := h.store.UpdateProgress(r.Context(), progress); err != nil {
		respondError(w, http.StatusInternalServerError, "could not save progress")
		return
	}
	respondJSON(w, http.StatusOK, ToProgressDTO(*progress))
}

// List returns a user's courses newest first. Without a user_id filter the
// result is an empty list.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	out := []CourseDTO{}
	if userID != "" {
		courses, err := h.store.ListCoursesByUser(r.Context(), userID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "could not fetch courses")
			return
		}
		for _, c := range courses {
			out = append(out, ToCourseDTO(c))
		}
	}
	respondJSON(w, http.StatusOK, out)
}
