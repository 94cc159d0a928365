package routers

import (
	"salon-service/internal/app/delivery/http/controllers"
	"salon-service/internal/app/delivery/http/middlewares"
	"salon-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachServiceRoutes(router chi.Router, middlewares *middlewares.Middlewares, serviceController *controllers.ServiceController) {
	router.Get("/", serviceController.FindAll)
	router.Get("/{serviceID}", serviceController.FindByID)

	adminOnly := middlewares.RequireRole(constvars.RoleAdmin)
	router.With(middlewares.Authenticate, adminOnly).Post("/", serviceController.Create)
	router.With(middlewares.Authenticate, adminOnly).Put("/{serviceID}", serviceController.Update)
	router.With(middlewares.Authenticate, adminOnly).Delete("/{serviceID}", serviceController.Deactivate)
}
