package routers

import (
	"lifelink-service/internal/app/delivery/http/middlewares"
	"lifelink-service/internal/app/services/core/verifications"
	"lifelink-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachVerificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, verificationController *verifications.VerificationController) {
	facilityOnly := middlewares.RequireRole(constvars.RoleFacility)

	router.With(middlewares.Authenticate, facilityOnly).Post("/", verificationController.VerifyDonation)
}
