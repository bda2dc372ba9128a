package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func postLogin(t *testing.T, app *fiber.App, email string, password string) *http.Response {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    email,
		"password": password,
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	return response
}

func TestLoginReturnsUserAndCookie(t *testing.T) {
	app, _ := newStorefrontTestApp(t)
	signupTestUser(t, app, "buyer@example.com", "Jo", "secret1")

	response := postLogin(t, app, "Buyer@Example.com", "secret1")
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	cookie := responseCookie(response.Cookies(), sessionCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected session cookie in login response")
	}

	payload := struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}{}
	decodeJSONBody(t, response, &payload)
	if payload.User.Email != "buyer@example.com" {
		t.Fatalf("expected normalized email, got %q", payload.User.Email)
	}
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	app, _ := newStorefrontTestApp(t)
	signupTestUser(t, app, "buyer@example.com", "Jo", "secret1")

	response := postLogin(t, app, "buyer@example.com", "wrongpass")
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
	if responseCookie(response.Cookies(), sessionCookieName) != nil {
		t.Fatal("did not expect session cookie on failed login")
	}
}

func TestLoginUnknownEmailIsNotFound(t *testing.T) {
	app, _ := newStorefrontTestApp(t)

	response := postLogin(t, app, "nobody@example.com", "whatever")
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
}

func TestLoginLockedOutAfterFiveFailures(t *testing.T) {
	app, _ := newStorefrontTestApp(t)
	signupTestUser(t, app, "buyer@example.com", "Jo", "secret1")

	for attempt := 0; attempt < 5; attempt++ {
		response := postLogin(t, app, "buyer@example.com", "wrongpass")
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected status 401, got %d", attempt+1, response.StatusCode)
		}
		response.Body.Close()
	}

	lockedResponse := postLogin(t, app, "buyer@example.com", "wrongpass")
	defer lockedResponse.Body.Close()
	if lockedResponse.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 once locked, got %d", lockedResponse.StatusCode)
	}
	if message := readAPIError(t, lockedResponse); !strings.Contains(message, "minutes") {
		t.Fatalf("expected retry-after message, got %q", message)
	}

	// The right password does not bypass the lockout.
	correctResponse := postLogin(t, app, "buyer@example.com", "secret1")
	defer correctResponse.Body.Close()
	if correctResponse.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 for correct password while locked, got %d", correctResponse.StatusCode)
	}
}

func TestLoginSuccessResetsFailureCounter(t *testing.T) {
	app, _ := newStorefrontTestApp(t)
	signupTestUser(t, app, "buyer@example.com", "Jo", "secret1")

	for attempt := 0; attempt < 4; attempt++ {
		response := postLogin(t, app, "buyer@example.com", "wrongpass")
		response.Body.Close()
	}

	successResponse := postLogin(t, app, "buyer@example.com", "secret1")
	defer successResponse.Body.Close()
	if successResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected login under the limit to succeed, got %d", successResponse.StatusCode)
	}

	failureResponse := postLogin(t, app, "buyer@example.com", "wrongpass")
	defer failureResponse.Body.Close()
	if failureResponse.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after counter reset, got %d", failureResponse.StatusCode)
	}
}
