package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net"
	"net/http"
	"time"

	"haven/docs" //this is required to generate swagger docs
	"haven/internal/detail"
	"haven/internal/ratelimiter"
	"haven/internal/render"
	"haven/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	logger        *zap.SugaredLogger
	loader        detail.SnapshotLoader
	submitter     *detail.Submitter
	renderer      *render.Renderer
	authenticator session.Authenticator
	rateLimiter   ratelimiter.Limiter
}

type config struct {
	addr        string
	env         string
	apiURL      string
	spotsAPI    spotsAPIConfig
	auth        authConfig
	rateLimiter ratelimiter.Config
}

type spotsAPIConfig struct {
	baseURL string
	timeout time.Duration
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	secret string
	exp    time.Duration
	iss    string
}

type basicConfig struct {
	user string
	pass string
}

const shutdownTimeout = 5 * time.Second

var (
	spotLoads   = expvar.NewMap("spot_loads")
	reviewPosts = expvar.NewMap("review_submissions")
)

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(app.SessionMiddleware)

	r.Route("/spots/{spotID}", func(r chi.Router) {
		r.Get("/", app.spotDetailPageHandler)
		r.With(app.SameOriginMiddleware, app.RateLimiterMiddleware).Post("/reviews", app.submitReviewFormHandler)
	})

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		docsURL := fmt.Sprintf("%s/v1/swagger/doc.json", app.config.apiURL)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.Route("/spots/{spotID}", func(r chi.Router) {
			r.Get("/", app.getSpotDetailHandler)
			r.With(
				app.RequireUser,
				app.SameOriginMiddleware,
				middleware.AllowContentType("application/json"),
				app.RateLimiterMiddleware,
			).Post("/reviews", app.createReviewHandler)
		})
	})

	return r
}

// run serves mux until ctx is cancelled, then drains in-flight requests.
func (app *application) run(ctx context.Context, mux http.Handler) error {
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:              app.config.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// Covers a page load plus an upstream round trip for each of spot and reviews.
		WriteTimeout: 2*app.config.spotsAPI.timeout + 10*time.Second,
		IdleTimeout:  time.Minute,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Infow("server has started",
			"addr", app.config.addr,
			"env", app.config.env,
			"spots_api", app.config.spotsAPI.baseURL,
		)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen on %s: %w", app.config.addr, err)
	case <-ctx.Done():
	}

	app.logger.Infow("shutting down", "reason", context.Cause(ctx).Error())

	// ctx is already done; draining gets its own deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr)
	return nil
}
