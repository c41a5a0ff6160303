// Package server assembles the chi router and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/atinyakov/catfeed/internal/app/handler"
	"github.com/atinyakov/catfeed/internal/app/service"
	"github.com/atinyakov/catfeed/internal/config"
	"github.com/atinyakov/catfeed/internal/middleware"
	"github.com/atinyakov/catfeed/internal/models"
)

// Init builds the router: the JSON API under /api, the dashboard on /,
// /ping and /metrics.
func Init(opts *config.Options, svc service.RecordServiceIface, logger *zap.Logger, loc *time.Location, gatherer prometheus.Gatherer) (*chi.Mux, error) {
	trusted, err := middleware.WithSubnet(opts.TrustedSubnet)
	if err != nil {
		return nil, err
	}

	get := handler.NewGet(svc, logger, loc)
	post := handler.NewPost(svc, logger, opts.MaxBodyBytes)
	put := handler.NewPut(svc, logger, opts.MaxBodyBytes)
	dashboard := handler.NewDashboard(svc, logger, loc)
	limiter := middleware.NewRateLimiter(opts.RateLimit, opts.RateBurst)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithMetrics)
	r.Use(middleware.WithCORS())

	r.Get("/ping", get.Ping)
	r.With(trusted).Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(middleware.WithGZIPRequest)
		r.Use(middleware.WithGZIPResponse)
		r.Use(limiter.Handler)

		r.Get("/", dashboard.Index)

		r.Route("/api", func(r chi.Router) {
			r.Route("/"+models.ResourceFeedings, func(r chi.Router) {
				r.Get("/", get.Feedings)
				r.Post("/", post.Feeding)
				r.Put("/{id}", put.Feeding)
			})

			r.Route("/"+models.ResourceMessages, func(r chi.Router) {
				r.Get("/", get.Messages)
				r.Post("/", post.Message)
				r.Put("/{id}", put.Message)
				r.Post("/{id}/like", post.LikeMessage)
			})

			r.Route("/"+models.ResourceImages, func(r chi.Router) {
				r.Get("/", get.Images)
				r.Post("/", post.UploadImage)
				r.Post("/upload", post.UploadImage)
			})

			r.Get("/stats/feedings", get.FeedingChart)
		})
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r, nil
}

// Server wraps the HTTP server and its TLS setup.
type Server struct {
	httpServer *http.Server
	tls        bool
	logger     *zap.Logger
}

// New creates the server. With HTTPS enabled it listens on :443 and obtains
// certificates for opts.TLSHosts through autocert.
func New(opts *config.Options, h http.Handler, logger *zap.Logger) *Server {
	srv := &http.Server{
		Addr:              opts.Port,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if opts.EnableHTTPS {
		manager := &autocert.Manager{
			// certificate cache directory
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(opts.TLSHosts...),
		}
		srv.Addr = ":443"
		srv.TLSConfig = manager.TLSConfig()
	}

	return &Server{
		httpServer: srv,
		tls:        opts.EnableHTTPS,
		logger:     logger,
	}
}

// Start blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Start() error {
	var err error
	if s.tls {
		s.logger.Info("Server is running with TLS", zap.String("addr", s.httpServer.Addr))
		err = s.httpServer.ListenAndServeTLS("", "")
	} else {
		s.logger.Info("Server is running", zap.String("addr", s.httpServer.Addr))
		err = s.httpServer.ListenAndServe()
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown waits for in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
