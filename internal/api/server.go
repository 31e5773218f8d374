package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/somework/landing-api/internal/api/handler"
	"github.com/somework/landing-api/internal/api/handler/router"
	"github.com/somework/landing-api/internal/config"
	"github.com/somework/landing-api/internal/usecases/authenticating"
	"github.com/somework/landing-api/internal/usecases/configuring"
	"github.com/somework/landing-api/internal/usecases/insighting"
	"github.com/somework/landing-api/internal/usecases/resourcing"
	"github.com/somework/landing-api/internal/usecases/tracking"
	"github.com/somework/landing-api/pkg/metrics"
	"github.com/somework/landing-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	tracker    tracking.Tracker
}

func New(
	config *config.Config,
	registry *prometheus.Registry,
	appMetrics *metrics.Metrics,
	authenticator authenticating.Authenticator,
	resourceService resourcing.Resourcer,
	settingsService configuring.Configurer,
	trackingService tracking.Tracker,
	insightService insighting.Insighter,
	dashboards handler.DashboardProvider,
	cronServices handler.CronJobServices,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(metrics.Handler(registry))...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Resources(resourceService)...),
		router.WithRoutes(handler.Settings(settingsService)...),
		router.WithRoutes(handler.Tracking(trackingService)...),
		router.WithRoutes(handler.Analytics(insightService)...),
		router.WithRoutes(handler.Dashboards(dashboards)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		appMetrics.Middleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		tracker: trackingService,
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown para de aceitar requisições e aguarda as gravações de tracking pendentes
func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	if s.tracker == nil {
		return nil
	}

	flushed := make(chan struct{})
	go func() {
		s.tracker.Wait()
		close(flushed)
	}()

	select {
	case <-flushed:
		logrus.Info("Eventos de tracking pendentes gravados")
	case <-ctx.Done():
		logrus.Warn("Timeout aguardando eventos de tracking pendentes")
		return ctx.Err()
	}

	return nil
}
