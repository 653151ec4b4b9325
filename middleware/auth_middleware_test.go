package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, role string, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "6fa459ea-ee8a-3ca4-894e-db77e160355e",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/admin-only", Protected(), AdminRequired(), ok)
	app.Get("/coach-only", Protected(), CoachRequired(), ok)
	return app
}

func TestRoleGating(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
	}{
		{name: "missing token", path: "/admin-only", token: "", wantStatus: http.StatusBadRequest},
		{name: "garbage token", path: "/admin-only", token: "not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", path: "/admin-only", token: signToken(t, "admin", "other-secret"), wantStatus: http.StatusUnauthorized},
		{name: "coach blocked from admin route", path: "/admin-only", token: signToken(t, "coach", testSecret), wantStatus: http.StatusForbidden},
		{name: "admin allowed on admin route", path: "/admin-only", token: signToken(t, "admin", testSecret), wantStatus: http.StatusOK},
		{name: "coach allowed on coach route", path: "/coach-only", token: signToken(t, "coach", testSecret), wantStatus: http.StatusOK},
		{name: "admin allowed on coach route", path: "/coach-only", token: signToken(t, "admin", testSecret), wantStatus: http.StatusOK},
		{name: "student role blocked from coach route", path: "/coach-only", token: signToken(t, "student", testSecret), wantStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("GET %s with %s: status = %d, want %d", tt.path, tt.name, resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
