// Package memora предоставляет маршруты для основного приложения.
package memora

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	addresspkg "github.com/memora/intake/internal/address"
	addresscomplete "github.com/memora/intake/internal/http/handlers/address/complete"
	addressresolve "github.com/memora/intake/internal/http/handlers/address/resolve"
	addresssearch "github.com/memora/intake/internal/http/handlers/address/search"
	auditlist "github.com/memora/intake/internal/http/handlers/audit/list"
	"github.com/memora/intake/internal/http/handlers/auth/login"
	"github.com/memora/intake/internal/http/handlers/auth/logout"
	"github.com/memora/intake/internal/http/handlers/auth/session"
	dictcreate "github.com/memora/intake/internal/http/handlers/dictionary/create"
	dictlist "github.com/memora/intake/internal/http/handlers/dictionary/list"
	dictlistall "github.com/memora/intake/internal/http/handlers/dictionary/listall"
	dictremove "github.com/memora/intake/internal/http/handlers/dictionary/remove"
	dictupdate "github.com/memora/intake/internal/http/handlers/dictionary/update"
	"github.com/memora/intake/internal/http/handlers/health"
	usercreate "github.com/memora/intake/internal/http/handlers/user/create"
	userlist "github.com/memora/intake/internal/http/handlers/user/list"
	userremove "github.com/memora/intake/internal/http/handlers/user/remove"
	usertoggle "github.com/memora/intake/internal/http/handlers/user/toggle"
	userupdate "github.com/memora/intake/internal/http/handlers/user/update"
	wiredcreate "github.com/memora/intake/internal/http/handlers/wired/create"
	wiredlist "github.com/memora/intake/internal/http/handlers/wired/list"
	wirelesscreate "github.com/memora/intake/internal/http/handlers/wireless/create"
	wirelesslist "github.com/memora/intake/internal/http/handlers/wireless/list"
	"github.com/memora/intake/internal/http/middlewarectx"
	auditservice "github.com/memora/intake/internal/services/audit"
	authservice "github.com/memora/intake/internal/services/auth"
	dictservice "github.com/memora/intake/internal/services/dictionary"
	formsservice "github.com/memora/intake/internal/services/forms"
	userservice "github.com/memora/intake/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	authService *authservice.Service,
	dictionaryService *dictservice.Service,
	userService *userservice.Service,
	formsService *formsservice.Service,
	auditService *auditservice.Service,
	picker addresspkg.Picker,
	widget *addresspkg.WidgetPicker,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/session", session.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/logout", logout.New(logger, authService).ServeHTTP)

			r.Get("/dictionaries", dictlist.New(logger, dictionaryService).ServeHTTP)

			r.Post("/forms/wired", wiredcreate.New(logger, formsService).ServeHTTP)
			r.Get("/forms/wired", wiredlist.New(logger, formsService).ServeHTTP)
			r.Post("/forms/wireless", wirelesscreate.New(logger, formsService).ServeHTTP)
			r.Get("/forms/wireless", wirelesslist.New(logger, formsService).ServeHTTP)

			r.Get("/address/search", addresssearch.New(logger, picker).ServeHTTP)
			r.Post("/address/resolve", addressresolve.New(logger, picker).ServeHTTP)
			r.Post("/address/complete", addresscomplete.New(logger, widget).ServeHTTP)

			// Административные конечные точки
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))

				r.Get("/admin/dictionaries", dictlistall.New(logger, dictionaryService).ServeHTTP)
				r.Post("/admin/dictionaries", dictcreate.New(logger, dictionaryService).ServeHTTP)
				r.Put("/admin/dictionaries/{id}", dictupdate.New(logger, dictionaryService).ServeHTTP)
				r.Delete("/admin/dictionaries/{id}", dictremove.New(logger, dictionaryService).ServeHTTP)

				r.Get("/admin/users", userlist.New(logger, userService).ServeHTTP)
				r.Post("/admin/users", usercreate.New(logger, userService).ServeHTTP)
				r.Put("/admin/users/{uid}", userupdate.New(logger, userService).ServeHTTP)
				r.Post("/admin/users/{uid}/toggle", usertoggle.New(logger, userService).ServeHTTP)
				r.Delete("/admin/users/{uid}", userremove.New(logger, userService).ServeHTTP)

				r.Get("/admin/audit", auditlist.New(logger, auditService).ServeHTTP)
			})
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
