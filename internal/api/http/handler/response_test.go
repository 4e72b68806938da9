package handler

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestResponseHelpers(t *testing.T) {
	tests := []struct {
		name       string
		handler    fiber.Handler
		wantStatus int
		wantBody   string
	}{
		{
			name:       "ok wraps data",
			handler:    func(c fiber.Ctx) error { return ok(c, fiber.Map{"id": "abc"}) },
			wantStatus: fiber.StatusOK,
			wantBody:   `"data"`,
		},
		{
			name:       "conflict carries message",
			handler:    func(c fiber.Ctx) error { return conflict(c, "horário já ocupado") },
			wantStatus: fiber.StatusConflict,
			wantBody:   "horário já ocupado",
		},
		{
			name:       "forbidden",
			handler:    forbidden,
			wantStatus: fiber.StatusForbidden,
			wantBody:   `"error"`,
		},
		{
			name:       "not found carries message",
			handler:    func(c fiber.Ctx) error { return notFound(c, "sessão não encontrada") },
			wantStatus: fiber.StatusNotFound,
			wantBody:   "sessão não encontrada",
		},
		{
			name:       "internal error is generic",
			handler:    internalError,
			wantStatus: fiber.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", tt.handler)

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("Test() error: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), tt.wantBody) {
				t.Errorf("body = %s, want it to contain %q", body, tt.wantBody)
			}
		})
	}
}
