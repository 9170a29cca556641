package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath/internal/assessment"
	"careerpath/internal/domain"
	"careerpath/internal/guidance"
	"careerpath/internal/service"
)

type fakeUsers struct {
	byID     map[int64]*domain.User
	byName   map[string]int64
	password map[int64]string
	nextID   int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		byID:     map[int64]*domain.User{},
		byName:   map[string]int64{},
		password: map[int64]string{},
	}
}

func (f *fakeUsers) Register(ctx context.Context, username, email, password, fullName string) (*domain.User, error) {
	if _, taken := f.byName[username]; taken {
		return nil, service.ErrDuplicateIdentity
	}
	f.nextID++
	user := &domain.User{ID: f.nextID, Username: username, Email: email, FullName: fullName, CreatedAt: time.Now()}
	f.byID[user.ID] = user
	f.byName[username] = user.ID
	f.password[user.ID] = password
	return user, nil
}

func (f *fakeUsers) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	id, ok := f.byName[username]
	if !ok || f.password[id] != password {
		return nil, service.ErrInvalidCredentials
	}
	return f.byID[id], nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

type fakePredictions struct {
	records []domain.PredictionRecord
}

func (f *fakePredictions) Predict(ctx context.Context, a assessment.Assessment, userID int64) (*service.PredictionResult, error) {
	if _, err := assessment.Encode(a); err != nil {
		return nil, err
	}
	if userID > 0 {
		f.records = append(f.records, domain.PredictionRecord{
			ID:        int64(len(f.records) + 1),
			UserID:    userID,
			Result:    "Web Developer",
			CreatedAt: time.Now(),
		})
	}
	return &service.PredictionResult{Role: "Web Developer", Related: domain.RelatedCareers["Web Developer"]}, nil
}

func (f *fakePredictions) History(ctx context.Context, userID int64, limit int) ([]domain.PredictionRecord, error) {
	var out []domain.PredictionRecord
	for i := len(f.records) - 1; i >= 0 && len(out) < limit; i-- {
		if f.records[i].UserID == userID {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *fakeUsers, *fakePredictions) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	users := newFakeUsers()
	predictions := &fakePredictions{}
	guide := guidance.NewService(nil, guidance.NewMemoryCache(time.Minute), logger)

	router := gin.New()
	NewHandler(users, predictions, guide, "test-secret", time.Hour).RegisterRoutes(router)
	return router, users, predictions
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func assessmentBody() map[string]any {
	return map[string]any{
		"logical_quotient_rating": 7,
		"coding_skills_rating":    8,
		"hackathons":              2,
		"public_speaking_points":  6,
		"self_learning_capability": true,
		"reading_writing_skills":  "medium",
		"memory_capability":       "excellent",
		"interested_subject":      "programming",
		"book_type":               "Series",
		"certification":           "python",
		"workshop":                "cloud computing",
		"company_type":            "product development",
		"career_area":             "developer",
	}
}

func loginToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := doJSON(router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "hunter22", "full_name": "Alice",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterDuplicateConflict(t *testing.T) {
	router, _, _ := newTestRouter(t)

	body := map[string]string{"username": "bob", "email": "bob@example.com", "password": "secret1"}
	rec := doJSON(router, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(router, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "x", "email": "not-an-email", "password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginFailure(t *testing.T) {
	router, _, _ := newTestRouter(t)
	loginToken(t, router)

	rec := doJSON(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "nobody", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeRequiresAuth(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := loginToken(t, router)
	rec = doJSON(router, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var user UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestPredictDemoMode(t *testing.T) {
	router, _, predictions := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/predictions", "", assessmentBody())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Role      string   `json:"role"`
		Related   []string `json:"related"`
		Persisted bool     `json:"persisted"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Web Developer", resp.Role)
	assert.Len(t, resp.Related, 3)
	assert.False(t, resp.Persisted)
	assert.Empty(t, predictions.records)
}

func TestPredictAuthenticatedPersists(t *testing.T) {
	router, _, predictions := newTestRouter(t)
	token := loginToken(t, router)

	rec := doJSON(router, http.MethodPost, "/api/predictions", token, assessmentBody())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, predictions.records, 1)

	rec = doJSON(router, http.MethodGet, "/api/predictions", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var history []PredictionRecordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "Web Developer", history[0].Result)
}

func TestPredictInvalidToken(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/predictions", "garbage", assessmentBody())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPredictUnknownOption(t *testing.T) {
	router, _, _ := newTestRouter(t)

	body := assessmentBody()
	body["workshop"] = "competitive napping"
	rec := doJSON(router, http.MethodPost, "/api/predictions", "", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredictRejectsOutOfRangeSlider(t *testing.T) {
	router, _, _ := newTestRouter(t)

	body := assessmentBody()
	body["coding_skills_rating"] = 11
	rec := doJSON(router, http.MethodPost, "/api/predictions", "", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRolesAndRelated(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/roles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var roles struct {
		Roles []string `json:"roles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roles))
	assert.Len(t, roles.Roles, 12)

	rec = doJSON(router, http.MethodGet, "/api/roles/Web%20Developer/related", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/roles/Astronaut/related", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGuidanceFallback(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/guidance/Data%20Engineer?kind=projects", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Role    string `json:"role"`
		Kind    string `json:"kind"`
		Content string `json:"content"`
		Source  string `json:"source"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "builtin", resp.Source)
	assert.Contains(t, resp.Content, "Data Engineer")

	rec = doJSON(router, http.MethodGet, "/api/guidance/Data%20Engineer?kind=horoscope", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout(t *testing.T) {
	router, _, _ := newTestRouter(t)
	token := loginToken(t, router)

	rec := doJSON(router, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(router, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
