package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dapper/internal/handlers"
	"dapper/internal/journey"
	"dapper/internal/models"
	"dapper/internal/store"
)

// newTestServer wires the handler over the in-memory store with the
// template-only generator, mirroring how main assembles the real service.
func newTestServer(t *testing.T) (http.Handler, *store.Memory) {
	t.Helper()

	mem := store.NewMemory()
	gen := journey.NewGenerator(nil, zap.NewNop())
	h := handlers.NewCourseHandler(mem, gen, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/v1/courses/generate/", h.Generate)
	r.Post("/api/v1/courses/{courseID}/progress/", h.UpdateProgress)
	r.Get("/api/v1/courses/", h.List)
	return r, mem
}

func doJSON(t *testing.T, srv http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func generateCourse(t *testing.T, srv http.Handler, mem *store.Memory, userID string) models.Course {
	t.Helper()
	w := doJSON(t, srv, http.MethodPost, "/api/v1/courses/generate/",
		`{"user_id": "`+userID+`", "mood": "sad", "context": "rough week"}`)
	require.Equal(t, http.StatusOK, w.Code)

	courses, err := mem.ListCoursesByUser(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, courses)
	return courses[0]
}

func TestGenerateMissingFields(t *testing.T) {
	srv, mem := newTestServer(t)

	for _, body := range []string{
		`{"mood": "sad", "context": "c"}`,
		`{"user_id": "u1", "context": "c"}`,
		`{"user_id": "u1", "mood": "sad"}`,
		`{}`,
	} {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/courses/generate/", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp["error"], "user_id")
	}

	courses, err := mem.ListCoursesByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestGenerateCreatesCourseAndProgress(t *testing.T) {
	srv, mem := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/courses/generate/",
		`{"user_id": "u1", "mood": "sad", "context": "rough week"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Course struct {
			Title  string `json:"title"`
			Reward struct {
				MedalType string `json:"medal_type"`
			} `json:"reward"`
			Steps []json.RawMessage `json:"steps"`
		} `json:"course"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "From Sad To Happy Journey", payload.Course.Title)
	assert.Equal(t, "blue", payload.Course.Reward.MedalType)
	assert.Len(t, payload.Course.Steps, 5)

	courses, err := mem.ListCoursesByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	course := courses[0]
	assert.Equal(t, "sad", course.FromEmotion)
	assert.Equal(t, "happy", course.ToEmotion) // default target emotion
	assert.False(t, course.Completed)
	assert.JSONEq(t, w.Body.String(), string(course.JSONData))

	progress, err := mem.GetProgressByCourse(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.CurrentStep)
	assert.False(t, progress.EarnedMedal)
}

func TestUpdateProgressInitialRating(t *testing.T) {
	srv, mem := newTestServer(t)
	course := generateCourse(t, srv, mem, "u1")

	w := doJSON(t, srv, http.MethodPost, "/api/v1/courses/"+course.ID+"/progress/", `{"mood_rating": 3}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.ProgressDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.InitialMoodRating)
	assert.Equal(t, 3, *resp.InitialMoodRating)
	assert.Nil(t, resp.FinalMoodRating)
	assert.False(t, resp.EarnedMedal)
}

func TestUpdateProgressFinalRatingEarnsMedal(t *testing.T) {
	srv, mem := newTestServer(t)
	course := generateCourse(t, srv, mem, "u1")

	w := doJSON(t, srv, http.MethodPost, "/api/v1/courses/"+course.ID+"/progress/", `{"current_step": 3}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/api/v1/courses/"+course.ID+"/progress/", `{"mood_rating": 7}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.ProgressDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.CurrentStep)
	require.NotNil(t, resp.FinalMoodRating)
	assert.Equal(t, 7, *resp.FinalMoodRating)
	assert.True(t, resp.EarnedMedal)

	updated, err := mem.GetCourse(context.Background(), course.ID)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
}

func TestUpdateProgressLowFinalRating(t *testing.T) {
	srv, mem := newTestServer(t)
	course := generateCourse(t, srv, mem, "u1")

	doJSON(t, srv, http.MethodPost, "/api/v1/courses/"+course.ID+"/progress/", `{"current_step": 2}`)
	w := doJSON(t, srv, http.MethodPost, "/api/v1/courses/"+course.ID+"/progress/", `{"mood_rating": 4}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.ProgressDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.FinalMoodRating)
	assert.Equal(t, 4, *resp.FinalMoodRating)
	assert.False(t, resp.EarnedMedal)

	updated, err := mem.GetCourse(context.Background(), course.ID)
	require.NoError(t, err)
	assert.False(t, updated.Completed)
}

func TestUpdateProgressRatingBeforeStepChangeCountsAsInitial(t *testing.T) {
	srv, mem := newTestServer(t)
	course := generateCourse(t, srv, mem, "u1")

	// Step and rating in one request: the rating is classified against the
	// stored step (0), so it lands as the initial rating.
	w := doJSON(t, srv, http.MethodPost, "/api/v1/courses/"+course.ID+"/progress/", `{"current_step": 1, "mood_rating": 6}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.ProgressDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.CurrentStep)
	require.NotNil(t, resp.InitialMoodRating)
	assert.Equal(t, 6, *resp.InitialMoodRating)
	assert.Nil(t, resp.FinalMoodRating)
	assert.False(t, resp.EarnedMedal)
}

func TestUpdateProgressUnknownCourse(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/courses/"+uuid.NewString()+"/progress/", `{"mood_rating": 5}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Course not found", resp["error"])
}

func TestUpdateProgressMalformedCourseID(t *testing.T) {
	srv, _ := newTestServer(t)

	// A non-UUID path segment must 404 before any store lookup; against
	// Postgres such an id would otherwise error on the UUID column.
	for _, id := range []string{"abc", "12345", "not-a-uuid"} {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/courses/"+id+"/progress/", `{"mood_rating": 5}`)
		assert.Equal(t, http.StatusNotFound, w.Code, "id %q", id)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Course not found", resp["error"])
	}
}

func TestUpdateProgressInvalidRating(t *testing.T) {
	srv, mem := newTestServer(t)
	course := generateCourse(t, srv, mem, "u1")

	for _, body := range []string{`{"mood_rating": 0}`, `{"mood_rating": 11}`, `{"current_step": -1}`} {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/courses/"+course.ID+"/progress/", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestUpdateProgressHealsMissingRecord(t *testing.T) {
	srv, mem := newTestServer(t)

	// A course without its progress row, as a failed second write would
	// leave it.
	course := models.Course{
		UserID: "u1", FromEmotion: "sad", ToEmotion: "happy",
		Context: "c", JSONData: json.RawMessage(`{}`),
	}
	require.NoError(t, mem.CreateCourse(context.Background(), &course))

	w := doJSON(t, srv, http.MethodPost, "/api/v1/courses/"+course.ID+"/progress/", `{"mood_rating": 3}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.ProgressDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.CurrentStep)
	require.NotNil(t, resp.InitialMoodRating)
	assert.Equal(t, 3, *resp.InitialMoodRating)
}

func TestListCourses(t *testing.T) {
	srv, mem := newTestServer(t)

	now := time.Now().UTC()
	for i, c := range []models.Course{
		{UserID: "u1", FromEmotion: "sad", ToEmotion: "happy", Context: "a", JSONData: json.RawMessage(`{}`)},
		{UserID: "u1", FromEmotion: "angry", ToEmotion: "peaceful", Context: "b", JSONData: json.RawMessage(`{}`)},
		{UserID: "u2", FromEmotion: "anxious", ToEmotion: "calm", Context: "c", JSONData: json.RawMessage(`{}`)},
	} {
		c.CreatedAt = now.Add(time.Duration(i) * time.Minute)
		require.NoError(t, mem.CreateCourse(context.Background(), &c))
	}

	w := doJSON(t, srv, http.MethodGet, "/api/v1/courses/?user_id=u1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var courses []handlers.CourseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courses))
	require.Len(t, courses, 2)
	assert.Equal(t, "angry", courses[0].FromEmotion) // newest first
	assert.Equal(t, "sad", courses[1].FromEmotion)
	for _, c := range courses {
		assert.Equal(t, "u1", c.UserID)
	}
}

func TestListCoursesWithoutFilter(t *testing.T) {
	srv, mem := newTestServer(t)
	generateCourse(t, srv, mem, "u1")

	w := doJSON(t, srv, http.MethodGet, "/api/v1/courses/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
