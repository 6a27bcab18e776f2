package internal

import (
	"net/http"
	"net/http/httptest"
	"pitwall/internal/auth"
	"pitwall/internal/controllers"
	"pitwall/internal/feed"
	"pitwall/internal/providers"
	"pitwall/internal/services"
	"pitwall/internal/structures"
	"pitwall/internal/testutil"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routeTestConfig() *structures.Config {
	return &structures.Config{
		AppName: "PitWall",
		Feed:    structures.FeedConfig{Interval: time.Hour, SeedCount: 3},
		Session: structures.SessionConfig{Header: "X-Session-Token", IdleTTL: time.Hour, SweepInterval: time.Minute},
		Auth:    structures.AuthConfig{Provider: "mock", GuardRoutes: true},
	}
}

func buildRouter(t *testing.T) providers.RouterProviderInterface {
	t.Helper()
	conf := routeTestConfig()
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}
	catalog := feed.DefaultCatalog()
	sessions := services.NewSessionService(conf, logger, auth.NewMockProvider(), catalog, metrics, &testutil.MockBroker{})
	t.Cleanup(sessions.Shutdown)

	guard := controllers.NewSessionGuard(conf, logger, sessions)
	return InitRoutes(
		controllers.NewPublicController(conf, catalog),
		controllers.NewAuthController(logger, sessions, guard, metrics),
		controllers.NewDashboardController(logger, sessions, testutil.NewMockCache()),
		controllers.NewProfileController(logger),
		controllers.NewSettingsController(),
		guard,
	)
}

func mount(router providers.RouterProviderInterface) *http.ServeMux {
	mux := http.NewServeMux()
	for _, r := range router.GetRoutes() {
		mux.Handle(r.Url, r.Handler)
	}
	return mux
}

func TestInitRoutes_RegistersEveryPath(t *testing.T) {
	routes := buildRouter(t).GetRoutes()

	methods := map[string][]string{}
	for _, r := range routes {
		methods[r.Url] = r.Methods
	}

	require.Len(t, routes, 13)
	assert.Equal(t, []string{http.MethodGet}, methods["/{$}"])
	assert.Equal(t, []string{http.MethodGet, http.MethodPut, http.MethodDelete}, methods["/dashboard/filters"])
	assert.Equal(t, []string{http.MethodGet, http.MethodPut}, methods["/profile"])
	assert.Equal(t, []string{http.MethodGet, http.MethodPatch}, methods["/settings"])
	assert.Contains(t, methods, "/auth/signin")
	assert.Contains(t, methods, "/dashboard/close")
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	mux := mount(buildRouter(t))

	req := httptest.NewRequest(http.MethodPost, "/catalog", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/auth/signin", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodPost, rr.Header().Get("Allow"))
}

func TestInitRoutes_LandingIsExactRoot(t *testing.T) {
	mux := mount(buildRouter(t))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInitRoutes_GuardedFlow(t *testing.T) {
	mux := mount(buildRouter(t))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard/feed", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/auth/signin",
		strings.NewReader(`{"email":"fan@f1.com","password":"pw"}`)))
	require.Equal(t, http.StatusOK, rr.Code)
	token := rr.Header().Get("X-Session-Token")
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/feed", nil)
	req.Header.Set("X-Session-Token", token)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"total":3`)
}
