package router

import (
	"github.com/go-chi/chi/v5"

	"facultyhub/internal/auth"
	"facultyhub/internal/handler"
	mw "facultyhub/internal/middleware"
)

func New(
	jwtSecret string,
	authH *handler.AuthHandler,
	formH *handler.FormHandler,
	dashH *handler.DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/register", authH.Register)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(jwtSecret))

			// Auth
			r.Get("/auth/me", authH.Me)
			r.Post("/auth/logout", authH.Logout)
			r.Put("/auth/profile", authH.UpdateProfile)
			r.Post("/auth/password", authH.ChangePassword)

			// Submission form
			r.Get("/form", formH.State)
			r.Post("/form/category", formH.SelectCategory)
			r.Put("/form/fields/{key}", formH.SetField)
			r.Post("/form/authors", formH.AddAuthor)
			r.Put("/form/authors/{index}", formH.UpdateAuthor)
			r.Delete("/form/authors/{index}", formH.RemoveAuthor)
			r.Post("/form/next", formH.NextStep)
			r.Post("/form/prev", formH.PrevStep)
			r.Post("/form/submit", formH.Submit)
			r.Get("/form/registry/{category}", formH.Registry)
			r.Get("/form/last-submission", formH.LastSubmission)

			// Dashboard
			r.Get("/dashboard", dashH.Dashboard)
			r.Get("/conferences", dashH.ListConferences)
			r.Post("/conferences", dashH.CreateConference)
		})
	})

	return r
}
