package main

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/somework/landing-api/infrastructure/database/postgres"
	"github.com/somework/landing-api/infrastructure/integrator/threads"
	"github.com/somework/landing-api/infrastructure/integrator/threads/threadsclient"
	"github.com/somework/landing-api/infrastructure/repository"
	"github.com/somework/landing-api/internal/api"
	"github.com/somework/landing-api/internal/api/handler"
	"github.com/somework/landing-api/internal/config"
	"github.com/somework/landing-api/internal/domain"
	"github.com/somework/landing-api/internal/scheduler"
	"github.com/somework/landing-api/internal/usecases/aggregating"
	"github.com/somework/landing-api/internal/usecases/authenticating"
	"github.com/somework/landing-api/internal/usecases/configuring"
	"github.com/somework/landing-api/internal/usecases/dashboard"
	"github.com/somework/landing-api/internal/usecases/insighting"
	"github.com/somework/landing-api/internal/usecases/resourcing"
	"github.com/somework/landing-api/internal/usecases/tracking"
	"github.com/somework/landing-api/pkg/log"
	"github.com/somework/landing-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(registry)

	userRepo := repository.NewUserRepository(pgConn)
	resourceRepo := repository.NewResourceRepository(pgConn)
	siteConfigRepo := repository.NewSiteConfigRepository(pgConn)
	pageViewRepo := repository.NewPageViewRepository(pgConn)
	clickRepo := repository.NewResourceClickRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	settingsService := configuring.NewService(siteConfigRepo)
	resourceService := resourcing.NewService(resourceRepo, settingsService)
	trackingService := tracking.NewService(pageViewRepo, clickRepo, appMetrics, cfg.Tracking.WriteTimeout)

	// Threads
	httpClient := &http.Client{Timeout: cfg.Threads.HTTPTimeout}
	tokenManager := threadsclient.NewTokenManager(cfg.Threads, httpClient)
	threadsClient := threadsclient.NewClient(cfg.Threads, tokenManager, httpClient)
	threadsIntegrator := threads.New(cfg.Threads, threadsClient, appMetrics)
	insightService := insighting.NewService(threadsIntegrator)

	// Dashboards
	loc := cfg.App.Location()
	agg := aggregating.New(loc)
	controllerOpts := []dashboard.Option{
		dashboard.WithTimeout(cfg.Dashboard.LoadTimeout),
		dashboard.WithRecorder(appMetrics),
	}

	threadsDashboard := dashboard.NewController[*domain.AnalyticsReport](
		dashboard.ThreadsDashboard,
		dashboard.NewThreadsSource(insightService),
		dashboard.BuildThreadsSnapshot(agg, time.Now),
		append(controllerOpts, dashboard.WithDefaultRange(domain.TimeRange30d))...,
	)
	webDashboard := dashboard.NewController[*dashboard.WebData](
		dashboard.WebDashboard,
		dashboard.NewWebSource(pageViewRepo, clickRepo, loc, time.Now),
		dashboard.BuildWebSnapshot(agg, time.Now),
		append(controllerOpts, dashboard.WithDefaultRange(domain.TimeRange7d))...,
	)
	dashboards := dashboard.NewRegistry(threadsDashboard, webDashboard)

	// Agendadores
	dashboardRefreshService := scheduler.NewDashboardRefreshService(dashboards, insightService, cfg)
	tokenRefreshService := scheduler.NewTokenRefreshService(tokenManager, cfg)

	if err := dashboardRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização dos dashboards")
	}

	if err := tokenRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de renovação do token do Threads")
	}

	server, err := api.New(
		cfg,
		registry,
		appMetrics,
		authenticator,
		resourceService,
		settingsService,
		trackingService,
		insightService,
		dashboards,
		handler.CronJobServices{
			DashboardRefreshService: dashboardRefreshService,
			TokenRefreshService:     tokenRefreshService,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
