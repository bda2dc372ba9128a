package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/ikrashahmed/taazamart/internal/boot"
	"github.com/ikrashahmed/taazamart/internal/db"
	"gorm.io/gorm"
)

const (
	testSecretKey  = "test-secret-key"
	testAdminEmail = "admin@taazamart.pk"
)

func newStorefrontTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "taazamart-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, boot.Config{
		Env:         "dev",
		Port:        "8080",
		DBPath:      databasePath,
		SecretKey:   testSecretKey,
		AdminEmail:  testAdminEmail,
		DefaultCity: "Multan",
	})

	app := fiber.New()
	app.Use(SecurityHeaders)
	RegisterRoutes(app, handler)
	return app, database
}

func jsonRequest(t *testing.T, method string, target string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request payload: %v", err)
	}
	request := httptest.NewRequest(method, target, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	return request
}

func signupTestUser(t *testing.T, app *fiber.App, email string, name string, password string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/signup", fiber.Map{
		"email":    email,
		"name":     name,
		"password": password,
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("signup request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected signup status 201, got %d", response.StatusCode)
	}

	cookie := responseCookie(response.Cookies(), sessionCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("session cookie is missing in signup response")
	}
	return cookie.Name + "=" + cookie.Value
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()
	payload := map[string]string{}
	decodeJSONBody(t, response, &payload)
	return payload["error"]
}
