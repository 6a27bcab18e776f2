package internal

import (
	"net/http"
	"pitwall/internal/controllers"
	"pitwall/internal/providers"
)

func InitRoutes(public *controllers.PublicController, authController *controllers.AuthController, dashboard *controllers.DashboardController, profile *controllers.ProfileController, settings *controllers.SettingsController, guard *controllers.SessionGuard) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()
	protect := func(h http.HandlerFunc) http.Handler {
		return guard.Protect(h)
	}

	routers.Get("/{$}", http.HandlerFunc(public.Landing))
	routers.Get("/catalog", http.HandlerFunc(public.Catalog))

	routers.Post("/auth/signup", http.HandlerFunc(authController.SignUp))
	routers.Post("/auth/signin", http.HandlerFunc(authController.SignIn))
	routers.Post("/auth/signout", http.HandlerFunc(authController.SignOut))
	routers.Get("/auth/me", http.HandlerFunc(authController.Me))

	routers.Get("/dashboard/feed", protect(dashboard.Feed))
	routers.Post("/dashboard/prompt", protect(dashboard.Prompt))
	routers.Get("/dashboard/filters", protect(dashboard.GetFilters))
	routers.Put("/dashboard/filters", protect(dashboard.PutFilters))
	routers.Delete("/dashboard/filters", protect(dashboard.ClearFilters))
	routers.Post("/dashboard/filters/toggle", protect(dashboard.ToggleFilter))
	routers.Post("/dashboard/close", protect(dashboard.Close))

	routers.Get("/profile", protect(profile.Get))
	routers.Put("/profile", protect(profile.Update))
	routers.Get("/settings", protect(settings.Get))
	routers.Patch("/settings", protect(settings.Patch))
	return routers
}
