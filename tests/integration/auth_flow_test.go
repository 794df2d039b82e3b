package integration

import (
	"net/http"
	"testing"
	"time"

	"carbontrack/internal/models"
)

func TestAuthFlow_RegisterLoginProfileLogout(t *testing.T) {
	app := setupApp(t)

	// Step 1: Register
	token, userID := app.registerUser(t, "auth@test.com")
	if len(token) != 64 {
		t.Fatalf("expected 64-character session token, got %d characters", len(token))
	}
	if userID == "" {
		t.Fatal("expected non-empty user ID")
	}

	// Step 2: Login with the same email issues a second token
	rec := app.request("POST", "/api/auth/login", `{"email":"auth@test.com"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	loginToken := parseJSON(t, rec)["sessionToken"].(string)
	if loginToken == "" || loginToken == token {
		t.Fatal("expected a fresh session token from login")
	}

	// Step 3: Fetch the profile with the login token
	rec = app.request("GET", "/api/auth/user", "", loginToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	if user["email"] != "auth@test.com" {
		t.Errorf("expected email auth@test.com, got %v", user["email"])
	}
	if user["monthlyTarget"] != models.DefaultMonthlyTarget {
		t.Errorf("expected default monthly target, got %v", user["monthlyTarget"])
	}
	if user["lastLogin"] == nil {
		t.Error("expected lastLogin stamped after login")
	}

	// Step 4: Update the profile
	rec = app.request("PUT", "/api/auth/profile",
		`{"monthlyTarget":3.5,"goals":{"carbonReduction":25,"transportReduction":40,"renewableEnergy":60}}`,
		loginToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile update failed: %d %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["user"].(map[string]interface{})
	if updated["monthlyTarget"] != 3.5 {
		t.Errorf("expected monthly target 3.5, got %v", updated["monthlyTarget"])
	}
	goals := updated["goals"].(map[string]interface{})
	if goals["renewableEnergy"] != 60.0 {
		t.Errorf("expected renewable energy goal 60, got %v", goals["renewableEnergy"])
	}

	// Step 5: Logout invalidates the presented token only
	rec = app.request("POST", "/api/auth/logout", "", loginToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/auth/user", "", loginToken)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
	rec = app.request("GET", "/api/auth/user", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("registration token should still work, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthFlow_RegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "dup@test.com")

	rec := app.request("POST", "/api/auth/register",
		`{"name":"Other","email":"dup@test.com"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg, ok := parseJSON(t, rec)["error"].(string); !ok || msg == "" {
		t.Error("expected flat error message for duplicate email")
	}
}

func TestAuthFlow_LoginUnknownEmail(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/auth/login", `{"email":"ghost@test.com"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthFlow_ExpiredSessionIsRemoved(t *testing.T) {
	app := setupApp(t)

	token, _ := app.registerUser(t, "expiry@test.com")

	// Force the session past its expiry.
	if err := app.DB.Model(&models.Session{}).
		Where("token = ?", token).
		Update("expires_at", time.Now().Add(-time.Minute)).Error; err != nil {
		t.Fatalf("failed to expire session: %v", err)
	}

	rec := app.request("GET", "/api/auth/user", "", token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired session, got %d", rec.Code)
	}

	// Presenting an expired token deletes its row.
	var count int64
	app.DB.Model(&models.Session{}).Where("token = ?", token).Count(&count)
	if count != 0 {
		t.Errorf("expected expired session row removed, found %d", count)
	}
}

func TestAuthFlow_ProtectedRoutesRequireAuth(t *testing.T) {
	app := setupApp(t)

	paths := []struct {
		method, path string
	}{
		{"GET", "/api/auth/user"},
		{"PUT", "/api/auth/profile"},
		{"POST", "/api/auth/logout"},
		{"GET", "/api/activities"},
		{"POST", "/api/activities"},
		{"GET", "/api/activities/recent"},
		{"GET", "/api/activities/analytics"},
	}
	for _, p := range paths {
		rec := app.request(p.method, p.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", p.method, p.path, rec.Code)
		}
	}

	rec := app.request("GET", "/api/auth/user", "", "not-a-real-token")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for invalid token, got %d", rec.Code)
	}
}
