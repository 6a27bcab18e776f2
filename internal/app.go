package internal

import (
	"context"
	"fmt"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"os"
	"os/signal"
	"pitwall/internal/controllers"
	"pitwall/internal/providers"
	"pitwall/internal/scheduler/interfaces"
	"pitwall/internal/services"
	"pitwall/internal/structures"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
)

const gzipMinSize = 512

type App struct {
	WebServer *http.Server
}

// NewHandler mounts the API routes behind metrics and compression and adds
// the infrastructure endpoints.
func NewHandler(healthController *controllers.HealthController, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) http.Handler {
	// Inner mux: API routes
	apiMux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		apiMux.Handle(route.Url, route.Handler)
	}

	var compressed http.Handler
	if gz, err := gzhttp.NewWrapper(gzhttp.MinSize(gzipMinSize)); err == nil {
		compressed = gz(apiMux)
	} else {
		logger.Warnf(providers.TypeApp, "gzip wrapper: %s", err)
		compressed = gzhttp.GzipHandler(apiMux)
	}
	instrumentedAPI := providers.MetricsMiddleware(metrics, logger, compressed)

	// Outer mux: infrastructure + instrumented API
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)

	return middleware.RequestID(middleware.RealIP(middleware.Recoverer(mux)))
}

func NewApp(handler http.Handler, scheduler interfaces.SchedulerInterface, sessions services.SessionServiceInterface, broker providers.BrokerProviderInterface, conf *structures.Config, logger providers.Logger) (*App, error) {
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	app := &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      handler,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	scheduler.Init()

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof(providers.TypeApp, "Listening HTTP clients on %s:%d", conf.WebServer.Host, conf.WebServer.Port)
		if err := app.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		scheduler.Stop()
		sessions.Shutdown()
		broker.Close()
		return nil, fmt.Errorf("server error: %w", err)
	}

	scheduler.Stop()
	sessions.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.WebServer.Shutdown(ctx); err != nil {
		return nil, err
	}
	broker.Close()
	logger.Infof(providers.TypeApp, "gracefully stopped")
	return app, nil
}
