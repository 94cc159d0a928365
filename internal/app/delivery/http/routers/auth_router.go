package routers

import (
	"time"

	"salon-service/internal/app/delivery/http/controllers"
	"salon-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	// Credential endpoints get a stricter per-IP limit than the global one.
	credentialLimiter := middlewares.NewCredentialRateLimiter(10, time.Minute, 15*time.Minute)

	router.With(credentialLimiter.Limit).Post("/register", authController.Register)
	router.With(credentialLimiter.Limit).Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Get("/profile", authController.GetProfile)
}
