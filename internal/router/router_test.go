package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"facultyhub/internal/db"
	"facultyhub/internal/handler"
	"facultyhub/internal/repository"
	"facultyhub/internal/service"
)

const testSecret = "test-secret"

func setupTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store, err := db.Open(filepath.Join(t.TempDir(), "facultyhub.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	userRepo := repository.NewUserRepo(store)
	sessionRepo := repository.NewSessionRepo(store)
	draftRepo := repository.NewDraftRepo(store)
	confRepo := repository.NewConferenceRepo(store)

	authSvc := service.NewAuthService(userRepo, sessionRepo, testSecret, service.Delays{})
	formSvc := service.NewFormService(draftRepo, time.Millisecond)
	catalogSvc := service.NewCatalogService(confRepo, draftRepo)

	if err := authSvc.SeedDefaults(); err != nil {
		t.Fatalf("seed users: %v", err)
	}
	if err := catalogSvc.SeedConferences(); err != nil {
		t.Fatalf("seed conferences: %v", err)
	}

	return New(testSecret,
		handler.NewAuthHandler(authSvc),
		handler.NewFormHandler(formSvc),
		handler.NewDashboardHandler(catalogSvc),
	)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "deepak",
		"password": "deepak123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status %d: %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return res.Token
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h := setupTestRouter(t)

	for _, path := range []string{"/api/v1/form", "/api/v1/dashboard", "/api/v1/conferences"} {
		rec := doJSON(t, h, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("GET %s without token: status %d", path, rec.Code)
		}
	}
}

func TestSubmissionFlowOverHTTP(t *testing.T) {
	h := setupTestRouter(t)
	token := login(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/form/category", token, map[string]string{"category": "conference"})
	if rec.Code != http.StatusOK {
		t.Fatalf("select category: %d %s", rec.Code, rec.Body.String())
	}

	// Whitespace-only title blocks the step.
	doJSON(t, h, http.MethodPut, "/api/v1/form/fields/publication.title", token, map[string]any{"value": "   "})
	rec = doJSON(t, h, http.MethodPost, "/api/v1/form/next", token, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("next with blank title: %d %s", rec.Code, rec.Body.String())
	}

	doJSON(t, h, http.MethodPut, "/api/v1/form/fields/publication.title", token, map[string]any{"value": "Edge AI for Maintenance"})
	doJSON(t, h, http.MethodPost, "/api/v1/form/authors", token, nil)
	doJSON(t, h, http.MethodPut, "/api/v1/form/authors/0", token, map[string]string{"field": "name", "value": "Dr. Deepak"})

	for i := 0; i < 2; i++ {
		rec = doJSON(t, h, http.MethodPost, "/api/v1/form/next", token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("next step %d: %d %s", i, rec.Code, rec.Body.String())
		}
	}

	// Early submit was impossible: we are on the final step now.
	rec = doJSON(t, h, http.MethodPost, "/api/v1/form/submit", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: %d %s", rec.Code, rec.Body.String())
	}
	var sub struct {
		ID     string `json:"id"`
		Cohort string `json:"cohort"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &sub); err != nil {
		t.Fatalf("decode submission: %v", err)
	}
	if sub.ID == "" || sub.Cohort != "conference" {
		t.Fatalf("submission = %+v", sub)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/form/last-submission", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("last submission: %d", rec.Code)
	}
}

func TestSubmitBeforeFinalStepRejected(t *testing.T) {
	h := setupTestRouter(t)
	token := login(t, h)

	doJSON(t, h, http.MethodPost, "/api/v1/form/category", token, map[string]string{"category": "journal"})
	rec := doJSON(t, h, http.MethodPost, "/api/v1/form/submit", token, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("early submit: %d %s", rec.Code, rec.Body.String())
	}
}

func TestRegistryEndpoint(t *testing.T) {
	h := setupTestRouter(t)
	token := login(t, h)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/form/registry/patent", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("registry: %d", rec.Code)
	}
	var res struct {
		TotalSteps int `json:"totalSteps"`
		Steps      []struct {
			Title string `json:"title"`
		} `json:"steps"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode registry: %v", err)
	}
	if res.TotalSteps != 1 || len(res.Steps) != 1 || res.Steps[0].Title != "Patent Details" {
		t.Fatalf("registry = %+v", res)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/form/registry/thesis", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown category: %d", rec.Code)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	h := setupTestRouter(t)
	token := login(t, h)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/dashboard", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard: %d", rec.Code)
	}
	var res map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if res["conferenceCount"] != float64(6) {
		t.Fatalf("conferenceCount = %v", res["conferenceCount"])
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/conferences?q=medical", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("conferences: %d", rec.Code)
	}
	var list struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode conferences: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("search total = %d", list.Total)
	}
}
