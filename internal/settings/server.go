package settings

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/underthebar/internal/middleware"
	"github.com/2beens/underthebar/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer *http.Server
	handler    *Handler

	host         string
	port         int
	passwordHash string

	metricsManager *metrics.Manager
	promGatherer   prometheus.Gatherer
}

type NewServerParams struct {
	Handler      *Handler
	Host         string
	Port         int
	PasswordHash string

	MetricsManager *metrics.Manager
	PromGatherer   prometheus.Gatherer
}

func NewServer(params NewServerParams) *Server {
	return &Server{
		handler:        params.Handler,
		host:           params.Host,
		port:           params.Port,
		passwordHash:   params.PasswordHash,
		metricsManager: params.MetricsManager,
		promGatherer:   params.PromGatherer,
	}
}

func (s *Server) Addr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("settings-router"))

	s.handler.SetupRoutes(r)

	if s.promGatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.promGatherer, promhttp.HandlerOpts{})).Methods("GET").Name("metrics")
	}

	portStr := strconv.Itoa(s.port)
	authMiddleware := middleware.NewAuthMiddlewareHandler(s.passwordHash, "/api/status", "/metrics")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors("http://127.0.0.1:"+portStr, "http://localhost:"+portStr))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

// Serve starts listening in the background. Listen errors are returned right away.
func (s *Server) Serve() error {
	listener, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.Addr(), err)
	}

	s.httpServer = &http.Server{
		Handler:     s.Router(),
		ReadTimeout: time.Minute,
		// no write timeout, the task events websocket stays open
	}

	go func() {
		log.Infof(" > settings server listening on: [%s]", listener.Addr())
		err := s.httpServer.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("settings server, serve: %s", err)
		}
	}()

	return nil
}

func (s *Server) GracefulShutdown(ctx context.Context) {
	if s.httpServer == nil {
		return
	}

	log.Debug("settings server graceful shutdown initiated ...")
	ctx, timeoutCancel := context.WithTimeout(ctx, 15*time.Second)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Errorf(" >>> failed to gracefully shutdown settings server: %s", err)
	}
	log.Warnln("settings server shut down")
}
