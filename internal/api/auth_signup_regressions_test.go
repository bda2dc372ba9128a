package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestSignupIssuesHardenedSessionCookie(t *testing.T) {
	app, _ := newStorefrontTestApp(t)

	request := jsonRequest(t, http.MethodPost, "/api/auth/signup", fiber.Map{
		"email":    "Buyer@Example.com",
		"name":     "Ikrash",
		"password": "secret1",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("signup request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	cookie := responseCookie(response.Cookies(), sessionCookieName)
	if cookie == nil {
		t.Fatal("expected session cookie in signup response")
	}
	if !cookie.HttpOnly {
		t.Fatal("expected HttpOnly session cookie")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("expected SameSite=Strict, got %v", cookie.SameSite)
	}
	if cookie.MaxAge != int(sessionTokenTTL.Seconds()) {
		t.Fatalf("expected Max-Age %d, got %d", int(sessionTokenTTL.Seconds()), cookie.MaxAge)
	}
	if cookie.Path != "/" {
		t.Fatalf("expected cookie path /, got %q", cookie.Path)
	}
	if cookie.Value == "buyer@example.com" {
		t.Fatal("expected signed token in cookie, not the bare email")
	}

	payload := struct {
		User struct {
			Email   string `json:"email"`
			Name    string `json:"name"`
			City    string `json:"city"`
			IsAdmin bool   `json:"is_admin"`
		} `json:"user"`
	}{}
	decodeJSONBody(t, response, &payload)
	if payload.User.Email != "buyer@example.com" {
		t.Fatalf("expected lowercased email in response, got %q", payload.User.Email)
	}
	if payload.User.City != "Multan" {
		t.Fatalf("expected default city Multan, got %q", payload.User.City)
	}
	if payload.User.IsAdmin {
		t.Fatal("did not expect regular signup to be admin")
	}
}

func TestSignupValidationFailures(t *testing.T) {
	app, _ := newStorefrontTestApp(t)

	cases := []struct {
		name    string
		payload fiber.Map
	}{
		{"email without dot", fiber.Map{"email": "a@b", "name": "Jo", "password": "secret1"}},
		{"email without at", fiber.Map{"email": "a.b.com", "name": "Jo", "password": "secret1"}},
		{"short name", fiber.Map{"email": "a@b.com", "name": "J", "password": "secret1"}},
		{"short password", fiber.Map{"email": "a@b.com", "name": "Jo", "password": "short"}},
	}

	for _, testCase := range cases {
		request := jsonRequest(t, http.MethodPost, "/api/auth/signup", testCase.payload)
		response, err := app.Test(request, -1)
		if err != nil {
			t.Fatalf("%s: signup request failed: %v", testCase.name, err)
		}
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", testCase.name, response.StatusCode)
		}
		if message := readAPIError(t, response); message == "" {
			t.Fatalf("%s: expected error message in response", testCase.name)
		}
		response.Body.Close()
	}
}

func TestSignupDuplicateEmailIsCaseInsensitiveConflict(t *testing.T) {
	app, _ := newStorefrontTestApp(t)
	signupTestUser(t, app, "buyer@example.com", "Jo", "secret1")

	request := jsonRequest(t, http.MethodPost, "/api/auth/signup", fiber.Map{
		"email":    "BUYER@example.COM",
		"name":     "Someone Else",
		"password": "another1",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("duplicate signup request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", response.StatusCode)
	}
}

func TestSignupSanitizesMarkupInName(t *testing.T) {
	app, _ := newStorefrontTestApp(t)

	request := jsonRequest(t, http.MethodPost, "/api/auth/signup", fiber.Map{
		"email":    "buyer@example.com",
		"name":     "<b>Ikrash</b> onclick=alert(1)",
		"password": "secret1",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("signup request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	payload := struct {
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	}{}
	decodeJSONBody(t, response, &payload)
	if payload.User.Name != "bIkrash/b alert(1)" {
		t.Fatalf("expected markup stripped from name, got %q", payload.User.Name)
	}
}
