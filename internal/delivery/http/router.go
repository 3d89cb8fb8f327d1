package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/frontandrew/cda/internal/delivery/http/middleware"
	"github.com/frontandrew/cda/internal/domain"
	"github.com/frontandrew/cda/internal/pkg/config"
	"github.com/frontandrew/cda/internal/pkg/jwt"
	"github.com/frontandrew/cda/internal/pkg/logger"
)

// Router содержит все зависимости для HTTP роутера
type Router struct {
	authHandler         *AuthHandler
	appointmentHandler  *AppointmentHandler
	availabilityHandler *AvailabilityHandler
	inspectionHandler   *InspectionHandler
	vehicleHandler      *VehicleHandler
	notificationHandler *NotificationHandler
	tokenService        *jwt.TokenService
	config              *config.Config
	logger              logger.Logger
}

// NewRouter создает новый HTTP router
func NewRouter(
	authHandler *AuthHandler,
	appointmentHandler *AppointmentHandler,
	availabilityHandler *AvailabilityHandler,
	inspectionHandler *InspectionHandler,
	vehicleHandler *VehicleHandler,
	notificationHandler *NotificationHandler,
	tokenService *jwt.TokenService,
	config *config.Config,
	logger logger.Logger,
) *Router {
	return &Router{
		authHandler:         authHandler,
		appointmentHandler:  appointmentHandler,
		availabilityHandler: availabilityHandler,
		inspectionHandler:   inspectionHandler,
		vehicleHandler:      vehicleHandler,
		notificationHandler: notificationHandler,
		tokenService:        tokenService,
		config:              config,
		logger:              logger,
	}
}

// Setup настраивает все маршруты
// По одному пространству маршрутов на роль; каждое закрыто allow-list'ом
// ролей, несоответствие роли дает 403 (аналог редиректа на главную)
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Глобальные middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RecoveryMiddleware(rt.logger))
	r.Use(middleware.LoggingMiddleware(rt.logger))
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: rt.config.CORS.AllowedOrigins,
		AllowedMethods: rt.config.CORS.AllowedMethods,
		AllowedHeaders: rt.config.CORS.AllowedHeaders,
	}))

	// Health check endpoint (публичный)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes (без аутентификации)
		r.Post("/auth/login", rt.authHandler.Login)

		// Protected routes (требуют аутентификации)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(rt.tokenService))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/me", rt.authHandler.GetMe)
				r.Post("/logout", rt.authHandler.Logout)
			})

			// Уведомления доступны любой аутентифицированной роли
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", rt.notificationHandler.List)
				r.Delete("/{id}", rt.notificationHandler.Dismiss)
			})

			// Техник: своя доступность и регистрация осмотров
			r.Route("/technician", func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleTechnician))
				r.Put("/availability", rt.availabilityHandler.Set)
				r.Get("/availability/{technicianId}", rt.availabilityHandler.Get)
				r.Get("/appointments", rt.appointmentHandler.List)
				r.Patch("/appointments/{id}", rt.appointmentHandler.Update)
				r.Post("/inspections", rt.inspectionHandler.Create)
				r.Get("/inspections/plate/{plate}", rt.inspectionHandler.GetByPlate)
			})

			// Рецепционист: записи, автомобили, свободные слоты
			r.Route("/receptionist", func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleReceptionist))
				r.Post("/appointments", rt.appointmentHandler.Create)
				r.Get("/appointments", rt.appointmentHandler.List)
				r.Patch("/appointments/{id}", rt.appointmentHandler.Update)
				r.Delete("/appointments/{id}", rt.appointmentHandler.Delete)
				r.Post("/vehicles", rt.vehicleHandler.Create)
				r.Get("/vehicles", rt.vehicleHandler.List)
				r.Get("/vehicles/plate/{plate}", rt.vehicleHandler.GetByPlate)
				r.Get("/availability/{technicianId}/free", rt.availabilityHandler.Free)
			})

			// Административный персонал: управление записями и отчеты
			r.Route("/administrative", func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleAdministrative))
				r.Get("/appointments", rt.appointmentHandler.List)
				r.Patch("/appointments/{id}", rt.appointmentHandler.Update)
				r.Delete("/appointments/{id}", rt.appointmentHandler.Delete)
				r.Get("/inspections", rt.inspectionHandler.ByDateRange)
			})

			// Регулятор: история осмотров
			r.Route("/regulatory", func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleRegulatory))
				r.Get("/inspections", rt.inspectionHandler.ByDateRange)
				r.Get("/inspections/plate/{plate}", rt.inspectionHandler.GetByPlate)
				r.Get("/inspections/plate/{plate}/history", rt.inspectionHandler.History)
			})

			// Владелец: свои автомобили и записи
			r.Route("/owner", func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleOwner))
				r.Get("/vehicles", rt.vehicleHandler.ListMine)
				r.Post("/vehicles", rt.vehicleHandler.Create)
				r.Get("/appointments", rt.appointmentHandler.ListMine)
				r.Post("/appointments", rt.appointmentHandler.Create)
				r.Get("/availability/{technicianId}/free", rt.availabilityHandler.Free)
			})
		})
	})

	return r
}
