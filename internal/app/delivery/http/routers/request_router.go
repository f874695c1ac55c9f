package routers

import (
	"lifelink-service/internal/app/delivery/http/middlewares"
	"lifelink-service/internal/app/services/core/requests"
	"lifelink-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachRequestRoutes(router chi.Router, middlewares *middlewares.Middlewares, requestController *requests.RequestController) {
	facilityOnly := middlewares.RequireRole(constvars.RoleFacility)
	donorOnly := middlewares.RequireRole(constvars.RoleDonor)

	router.With(middlewares.Authenticate, facilityOnly).Post("/", requestController.CreateRequest)
	router.With(middlewares.Authenticate, donorOnly).Get("/", requestController.GetPendingBroadcast)
	router.With(middlewares.Authenticate, facilityOnly).Get("/mine", requestController.GetOwnRequests)
	router.With(middlewares.Authenticate).Get("/{requestID}", requestController.GetRequestByID)
	router.With(middlewares.Authenticate, donorOnly).Post("/{requestID}/accept", requestController.AcceptRequest)
	router.With(middlewares.Authenticate, donorOnly).Post("/{requestID}/reject", requestController.RejectRequest)
	router.With(middlewares.Authenticate, facilityOnly).Post("/{requestID}/cancel", requestController.CancelRequest)
}
