package routers

import (
	"lifelink-service/internal/app/delivery/http/middlewares"
	"lifelink-service/internal/app/services/core/donors"
	"lifelink-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDonorRoutes(router chi.Router, middlewares *middlewares.Middlewares, donorController *donors.DonorController) {
	donorOnly := middlewares.RequireRole(constvars.RoleDonor)

	router.With(middlewares.Authenticate, donorOnly).Patch("/availability", donorController.UpdateAvailability)
	router.With(middlewares.Authenticate, donorOnly).Put("/profile-picture", donorController.UploadProfilePicture)
}
