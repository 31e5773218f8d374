package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/somework/landing-api/internal/config"
	"github.com/somework/landing-api/internal/usecases/dashboard"
	"github.com/somework/landing-api/pkg/utils"
)

// DashboardLister fornece os dashboards registrados (implementado por dashboard.Registry)
type DashboardLister interface {
	All() []dashboard.Dashboard
}

// Invalidator limpa caches antes de uma atualização (implementado por insighting.Insighter)
type Invalidator interface {
	Invalidate()
}

// DashboardRefreshConfig representa a configuração do agendador de atualização dos dashboards
type DashboardRefreshConfig struct {
	CronSchedule string
	Timeout      time.Duration
	SyncEnabled  bool
}

// DashboardRefreshService recarrega periodicamente todos os dashboards registrados
type DashboardRefreshService struct {
	scheduler   *gocron.Scheduler
	config      DashboardRefreshConfig
	dashboards  DashboardLister
	invalidator Invalidator

	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResults         map[string]string
}

func NewDashboardRefreshService(
	dashboards DashboardLister,
	invalidator Invalidator,
	appConfig *config.Config,
) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule: appConfig.Dashboard.RefreshCron,
		Timeout:      appConfig.Dashboard.LoadTimeout,
		SyncEnabled:  appConfig.Dashboard.RefreshEnabled,
	}
	if refreshConfig.Timeout <= 0 {
		refreshConfig.Timeout = dashboard.DefaultLoadTimeout
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"timeout":       refreshConfig.Timeout.String(),
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de dashboards carregada")

	return &DashboardRefreshService{
		scheduler:   gocron.NewScheduler(appConfig.App.Location()),
		config:      refreshConfig,
		dashboards:  dashboards,
		invalidator: invalidator,
		lastResults: map[string]string{},
	}
}

// Start inicia o agendador
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização automática dos dashboards desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização dos dashboards")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if runID, ok := s.begin(); ok {
			s.refreshAll(runID)
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização dos dashboards: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização dos dashboards")
		s.scheduler.Stop()
	}()

	return nil
}

// begin marca o início de uma execução. Retorna false se outra já estiver em andamento.
func (s *DashboardRefreshService) begin() (string, bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Info("Atualização dos dashboards já em andamento, ignorando")
		return "", false
	}

	runID := utils.GenerateRunID()

	s.syncRunning = true
	s.lastRunID = runID
	s.lastSyncStartedAt = time.Now()

	return runID, true
}

// refreshAll limpa o cache do Threads e recarrega cada dashboard no range selecionado
func (s *DashboardRefreshService) refreshAll(runID string) {
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando atualização dos dashboards")

	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	dashboards := s.dashboards.All()
	pending := make([]*dashboard.Pending, len(dashboards))
	for i, d := range dashboards {
		pending[i] = d.Refresh()
	}

	results := make(map[string]string, len(dashboards))
	for i, d := range dashboards {
		state := pending[i].Wait(ctx)

		result := string(state.Status)
		if state.Status == dashboard.StatusError {
			result = string(state.ErrorKind)
			logger.WithFields(logrus.Fields{
				"dashboard":  d.Name(),
				"error_kind": state.ErrorKind,
				"error":      state.Error,
			}).Warn("Falha ao atualizar dashboard")
		}
		results[d.Name()] = result
	}

	s.syncMutex.Lock()
	s.lastResults = results
	s.syncMutex.Unlock()

	logger.WithField("dashboards", len(dashboards)).Info("Atualização dos dashboards concluída")
}

// TriggerManualSync inicia manualmente uma atualização e retorna o identificador da execução
func (s *DashboardRefreshService) TriggerManualSync() (string, bool) {
	runID, ok := s.begin()
	if !ok {
		return "", false
	}

	logrus.WithField("run_id", runID).Info("Iniciando atualização manual dos dashboards")
	go s.refreshAll(runID)

	return runID, true
}

// GetStatus retorna o status atual do agendador
func (s *DashboardRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	results := make(map[string]string, len(s.lastResults))
	for k, v := range s.lastResults {
		results[k] = v
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_results":           results,
	}
}
