package routers

import (
	"fmt"
	"lifelink-service/internal/app/config"
	"lifelink-service/internal/app/delivery/http/middlewares"
	"lifelink-service/internal/app/services/core/donors"
	"lifelink-service/internal/app/services/core/notifications"
	"lifelink-service/internal/app/services/core/requests"
	"lifelink-service/internal/app/services/core/verifications"
	"lifelink-service/internal/app/services/shared/push"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	requestController *requests.RequestController,
	donorController *donors.DonorController,
	notificationController *notifications.NotificationController,
	verificationController *verifications.VerificationController,
	pushController *push.PushController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/requests", func(r chi.Router) {
				attachRequestRoutes(r, middlewares, requestController)
			})

			r.Route("/verifications", func(r chi.Router) {
				attachVerificationRoutes(r, middlewares, verificationController)
			})

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, middlewares, notificationController)
			})

			r.Route("/donors", func(r chi.Router) {
				attachDonorRoutes(r, middlewares, donorController)
			})

			// The websocket endpoint authenticates through the token
			// query parameter; browsers cannot set headers on upgrade.
			r.Get("/ws", pushController.ServeWS)
		})
	})
}
