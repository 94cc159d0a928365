package routers

import (
	"salon-service/internal/app/delivery/http/controllers"
	"salon-service/internal/app/delivery/http/middlewares"
	"salon-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Get("/available-slots", appointmentController.GetAvailableSlots)

	router.With(middlewares.Authenticate).Post("/", appointmentController.CreateAppointment)
	router.With(middlewares.Authenticate).Get("/user/{userID}", appointmentController.FindUserAppointments)
	router.With(middlewares.Authenticate).Post("/{appointmentID}/cancel", appointmentController.Cancel)

	staffOrAdmin := middlewares.RequireRole(constvars.RoleStaff, constvars.RoleAdmin)
	router.With(middlewares.Authenticate, staffOrAdmin).Patch("/{appointmentID}/status", appointmentController.UpdateStatus)
}
