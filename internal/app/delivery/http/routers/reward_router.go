package routers

import (
	"salon-service/internal/app/delivery/http/controllers"
	"salon-service/internal/app/delivery/http/middlewares"
	"salon-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachRewardRoutes(router chi.Router, middlewares *middlewares.Middlewares, rewardController *controllers.RewardController) {
	router.Get("/tiers", rewardController.GetTiers)

	router.With(middlewares.Authenticate).Get("/customer/{customerID}", rewardController.GetCustomerRewards)
	router.With(middlewares.Authenticate).Get("/customer/{customerID}/history", rewardController.GetHistory)
	router.With(middlewares.Authenticate).Post("/redeem", rewardController.RedeemPoints)

	adminOnly := middlewares.RequireRole(constvars.RoleAdmin)
	router.With(middlewares.Authenticate, adminOnly).Post("/points", rewardController.AddPoints)
}
