package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"labelscan/pkg/translate"

	"github.com/gin-gonic/gin"
)

// helper to perform requests with auth token
func performRequest(r http.Handler, method, path string, body io.Reader, token string, contentType string) *httptest.ResponseRecorder {
	// allow callers to pass nil for body safely
	req, _ := http.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func setupTestServer(t *testing.T) *gin.Engine {
	// integration tests are opt-in. Set DB_DSN_TEST=1 and DB_DSN to run them.
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	gin.SetMode(gin.TestMode)
	jwtSecret = []byte("test-secret")
	papagoClient = translate.NewFromEnv()
	initDB()
	tmp := t.TempDir()
	_ = os.Setenv("UPLOAD_BASE", tmp)
	seedDB()
	r := gin.Default()
	setupRoutes(r)
	return r
}

func TestFullFlow(t *testing.T) {
	r := setupTestServer(t)

	// 1. Register user
	regBody, _ := json.Marshal(map[string]string{"username": "user1", "password": "pass123"})
	resp := performRequest(r, http.MethodPost, "/register", bytes.NewBuffer(regBody), "", "application/json")
	if resp.Code != 200 && resp.Code != 409 {
		t.Fatalf("register failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 2. Login
	loginBody, _ := json.Marshal(map[string]string{"username": "user1", "password": "pass123"})
	resp = performRequest(r, http.MethodPost, "/login", bytes.NewBuffer(loginBody), "", "application/json")
	if resp.Code != 200 {
		t.Fatalf("login failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var loginResp map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &loginResp)
	token, _ := loginResp["token"].(string)
	if token == "" {
		t.Fatalf("empty token in login response: %+v", loginResp)
	}

	// 3. Create profile with allergen alerts
	profBody, _ := json.Marshal(map[string]any{
		"name":            "User One",
		"email":           "u1@example.com",
		"allergen_alerts": []string{"우유", "대두"},
	})
	resp = performRequest(r, http.MethodPost, "/profile", bytes.NewBuffer(profBody), token, "application/json")
	if resp.Code != 200 {
		t.Fatalf("create profile failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 4. Analyze raw label text
	anBody, _ := json.Marshal(map[string]string{
		"text": "열량192kcal 탄수화물28g9% 당류13g13% 나트륨160mg8% 우유 함유",
	})
	resp = performRequest(r, http.MethodPost, "/analyze", bytes.NewBuffer(anBody), token, "application/json")
	if resp.Code != 200 {
		t.Fatalf("analyze failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var anResp struct {
		Record struct {
			Sodium struct {
				Value *float64 `json:"value"`
			} `json:"sodium"`
			Allergens []string `json:"allergens"`
		} `json:"record"`
		AllergenWarnings []string `json:"allergen_warnings"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &anResp); err != nil {
		t.Fatalf("analyze response decode: %v", err)
	}
	if anResp.Record.Sodium.Value == nil || *anResp.Record.Sodium.Value != 160 {
		t.Errorf("sodium = %v, want 160", anResp.Record.Sodium.Value)
	}
	if len(anResp.AllergenWarnings) != 1 || anResp.AllergenWarnings[0] != "우유" {
		t.Errorf("allergen warnings = %v, want [우유]", anResp.AllergenWarnings)
	}

	// 5. List scans (empty but authorized)
	resp = performRequest(r, http.MethodGet, "/scans", nil, token, "")
	if resp.Code != 200 {
		t.Fatalf("list scans failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 6. List uploads
	resp = performRequest(r, http.MethodGet, "/uploads", nil, token, "")
	if resp.Code != 200 {
		t.Fatalf("list uploads failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 7. Unauthorized access to protected endpoint should be 401
	unauth := performRequest(r, http.MethodGet, "/scans", nil, "", "")
	if unauth.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthorized list scans got %d", unauth.Code)
	}
}

func TestMigrateCommand(t *testing.T) {
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	initDB()
}
