package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all routes.
func SetupRoutes(h *Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		// Announcements. The front end has historically POSTed to the
		// list endpoint, so both verbs serve it.
		r.Get("/announcements", h.ListAnnouncements)
		r.Post("/announcements", h.ListAnnouncements)
		r.Post("/new-announcement", h.CreateAnnouncement)
		r.Delete("/delete-announcement/{id}", h.DeleteAnnouncement)

		// Subscriber list.
		r.Get("/emails", h.ListEmails)
		r.Post("/emails", h.SubscribeEmail)
		r.Delete("/emails", h.UnsubscribeEmail)

		// Resource library.
		r.Get("/resources", h.ListResources)
		r.Post("/new-resource", h.CreateResource)
		r.Delete("/delete-resource/{id}", h.DeleteResource)

		// Leadership roster.
		r.Get("/members", h.ListMembers)
		r.Post("/new-member", h.CreateMember)
		r.Put("/members/{id}", h.UpdateMember)
		r.Delete("/members/{id}", h.DeleteMember)

		// Home tab.
		r.Get("/home-content", h.GetHomeContent)
		r.Post("/update-home-content", h.UpdateHomeContent)

		// Syndication tab.
		r.Route("/syndication", func(r chi.Router) {
			r.Get("/overview", h.GetSyndicationOverview)
			r.Post("/overview", h.SetSyndicationOverview)
			r.Get("/documents", h.ListSyndicationDocuments)
			r.Post("/documents", h.CreateSyndicationDocument)
			r.Delete("/documents/{id}", h.DeleteSyndicationDocument)
			r.Get("/watch-throughs", h.ListWatchThroughs)
			r.Post("/watch-throughs", h.CreateWatchThrough)
			r.Delete("/watch-throughs/{id}", h.DeleteWatchThrough)
			r.Get("/read-throughs", h.ListReadThroughs)
			r.Post("/read-throughs", h.CreateReadThrough)
			r.Delete("/read-throughs/{id}", h.DeleteReadThrough)
			r.Get("/news", h.GetSyndicationNews)
		})

		r.Post("/login", h.Login)
	})

	return r
}
