package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/amparasaude/ampara_backend/internal/api/http/handler"
	"github.com/amparasaude/ampara_backend/internal/api/http/middleware"
)

func (r *Router) registerAuthRoutes(api fiber.Router, h *handler.AuthHandler, authRequired fiber.Handler) {
	// Registration and OTP verification send an SMS; they sit behind a
	// tighter limiter than the rest of the API.
	otpLimiter := middleware.NewOTPLimiter(r.p.Redis)

	group := api.Group("/auth")
	group.Post("/register", h.Register, otpLimiter)
	group.Post("/verify-otp", h.VerifyOTP, otpLimiter)
	group.Post("/login", h.Login)
	group.Post("/refresh", h.Refresh)
	group.Post("/logout", authRequired, h.Logout)
	group.Post("/profile-setup", authRequired, h.ProfileSetup)
	group.Post("/change-password", authRequired, h.ChangePassword)
}
